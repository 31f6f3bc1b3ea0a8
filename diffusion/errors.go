// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// errors.go — sentinel errors and their typed carriers.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never on message text.
//   • Construction failures are *ParamError (unwraps to ErrInvalidParameter).
//   • Evaluation failures are *DomainError (unwraps to ErrDomain).
//   • Nothing in this package panics on user input. Option constructors
//     (WithX) panic on programmer error only.

package diffusion

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned by every constructor when a parameter
	// violates its family's constraint or is not finite.
	ErrInvalidParameter = errors.New("diffusion: invalid parameter")

	// ErrDomain is returned by Volatility when the state lies outside the
	// domain of the formula (e.g. √S for S < 0).
	ErrDomain = errors.New("diffusion: state out of domain")

	// ErrUnknownKind indicates an unrecognised family tag.
	ErrUnknownKind = errors.New("diffusion: unknown model kind")

	// ErrUnknownPolicy indicates an unrecognised negative-volatility policy.
	ErrUnknownPolicy = errors.New("diffusion: unknown negative volatility policy")
)

// ParamError describes a rejected constructor argument.
type ParamError struct {
	Model Kind    // family being constructed
	Param string  // parameter name, e.g. "sigma"
	Value float64 // offending value
	Rule  string  // violated constraint, e.g. "must be > 0"
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("diffusion: %s: invalid parameter %s=%g (%s)", e.Model, e.Param, e.Value, e.Rule)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// DomainError describes a state for which a family's volatility is undefined.
type DomainError struct {
	Model Kind    // family evaluated
	State float64 // offending S
	Rule  string  // domain requirement, e.g. "S must be >= 0"
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("diffusion: %s: state S=%g out of domain (%s)", e.Model, e.State, e.Rule)
}

// Unwrap returns ErrDomain.
func (e *DomainError) Unwrap() error { return ErrDomain }
