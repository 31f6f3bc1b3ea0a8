// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// factory.go — build any family from a Params record.

package diffusion

import "fmt"

// New constructs the family named by p.Kind from the matching fields of p.
//
// Errors:
//   - ErrUnknownKind (also matching ErrInvalidParameter) for KindUnknown or an
//     out-of-range Kind.
//   - the family constructor's *ParamError otherwise.
//
// Options a family does not use are ignored.
func New(p Params, opts ...Option) (Model, error) {
	switch p.Kind {
	case KindGBM:
		return asModel(NewGBM(p.Mu, p.Sigma))
	case KindCEV:
		return asModel(NewCEV(p.Mu, p.Sigma, p.Beta))
	case KindOU:
		return asModel(NewOU(p.Mu, p.Sigma, p.Kappa, p.Theta))
	case KindLipton:
		return asModel(NewLipton(p.Mu, p.Sigma0, p.Sigma1, p.Sigma2, opts...))
	case KindCIR:
		return asModel(NewCIR(p.Mu, p.Sigma, p.Kappa, p.Theta))
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidParameter, ErrUnknownKind, p.Kind)
	}
}

// asModel drops the typed-nil pointer a failed constructor returns, so a
// failed New yields a nil Model rather than a non-nil interface around nil.
func asModel(m Model, err error) (Model, error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Compile-time checks.
var (
	_ Model = (*GBM)(nil)
	_ Model = (*CEV)(nil)
	_ Model = (*OU)(nil)
	_ Model = (*Lipton)(nil)
	_ Model = (*CIR)(nil)
)
