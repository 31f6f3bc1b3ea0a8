// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// types.go — the Model capability, variant tags and the flat Params record.

package diffusion

import (
	"fmt"
	"strings"
)

// Model is the capability shared by every diffusion family.
//
// Drift is total. Volatility returns an error matching ErrDomain when the
// state lies outside the domain of the family's formula.
// Implementations are immutable and safe for concurrent use.
type Model interface {
	// Kind reports the family tag.
	Kind() Kind
	// Params returns the parameter record the model was built from.
	Params() Params
	// Drift evaluates μ(S, t).
	Drift(s float64, t int) float64
	// Volatility evaluates σ(S, t).
	Volatility(s float64, t int) (float64, error)
}

// Kind tags a diffusion family. The zero value is KindUnknown.
type Kind int

const (
	// KindUnknown is the zero Kind; New rejects it.
	KindUnknown Kind = iota
	// KindGBM is Geometric Brownian Motion.
	KindGBM
	// KindCEV is Constant Elasticity of Variance.
	KindCEV
	// KindOU is Ornstein-Uhlenbeck.
	KindOU
	// KindLipton is the quadratic local-volatility family.
	KindLipton
	// KindCIR is Cox-Ingersoll-Ross.
	KindCIR
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindGBM:     "gbm",
	KindCEV:     "cev",
	KindOU:      "ou",
	KindLipton:  "lipton",
	KindCIR:     "cir",
}

// String returns the lower-case token of k ("gbm", "cev", ...).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a token back to its Kind. Matching ignores case and
// surrounding spaces. Unknown tokens (including "unknown") fail with
// ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for k := KindGBM; int(k) < len(kindNames); k++ {
		if kindNames[k] == token {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Params is the flat parameter record of every family.
//
// Fields that do not belong to Kind are ignored by New:
//   - GBM:    Mu, Sigma
//   - CEV:    Mu, Sigma, Beta
//   - OU:     Mu, Sigma, Kappa, Theta
//   - Lipton: Mu, Sigma0, Sigma1, Sigma2
//   - CIR:    Mu, Sigma, Kappa, Theta
type Params struct {
	Kind   Kind
	Mu     float64 // drift rate μ̄
	Sigma  float64 // volatility scale σ̄
	Beta   float64 // CEV elasticity β
	Kappa  float64 // mean-reversion speed κ
	Theta  float64 // mean-reversion level θ
	Sigma0 float64 // Lipton constant term
	Sigma1 float64 // Lipton linear term
	Sigma2 float64 // Lipton quadratic term
}

// NegativeVolPolicy decides what Lipton.Volatility does when the quadratic
// evaluates below zero.
type NegativeVolPolicy int

const (
	// RejectNegative reports ErrDomain. Default.
	RejectNegative NegativeVolPolicy = iota
	// ClampNegative returns 0.
	ClampNegative
	// PassNegative returns the raw negative value.
	PassNegative
)

var policyNames = [...]string{
	RejectNegative: "reject",
	ClampNegative:  "clamp",
	PassNegative:   "pass",
}

// String returns "reject", "clamp" or "pass".
func (p NegativeVolPolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("policy(%d)", int(p))
	}
	return policyNames[p]
}

func (p NegativeVolPolicy) valid() bool {
	return p >= 0 && int(p) < len(policyNames)
}

// ParseNegativeVolPolicy maps "reject", "clamp" or "pass" (any case) to a
// policy. Anything else fails with ErrUnknownPolicy.
func ParseNegativeVolPolicy(s string) (NegativeVolPolicy, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range policyNames {
		if name == token {
			return NegativeVolPolicy(i), nil
		}
	}
	return RejectNegative, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
