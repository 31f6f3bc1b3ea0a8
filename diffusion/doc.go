// SPDX-License-Identifier: MIT

// Package diffusion describes one-dimensional diffusion processes by their
// coefficient functions.
//
// 🚀 What is a diffusion model here?
//
//	A process dS = μ(S,t)·dt + σ(S,t)·dW is fully described by its drift μ
//	and its volatility σ. This package provides five closed-form families
//	behind one capability, Model:
//	  • GBM    — μ = μ̄·S,           σ = σ̄·S
//	  • CEV    — μ = μ̄·S,           σ = σ̄·S^β
//	  • OU     — μ = κ·(θ − S),     σ = σ̄
//	  • Lipton — μ = μ̄·S,           σ = σ₀ + σ₁·S + σ₂·S²
//	  • CIR    — μ = κ·(θ − S),     σ = σ̄·√S
//
// ✨ Key properties:
//   - validated construction: NewGBM/NewCEV/NewOU/NewLipton/NewCIR (or New with
//     a Params record) either return a ready model or an error matching
//     ErrInvalidParameter; a half-built model is never observable.
//   - immutable values: every evaluation is pure, so one model may be shared by
//     any number of goroutines without locking.
//   - explicit domains: Volatility reports ErrDomain for states where the formula
//     has no real value (CIR with S < 0, CEV with S < 0 and fractional β,
//     Lipton below zero under the default policy).
//
// ⚙️ Usage:
//
//	m, err := diffusion.NewCIR(0, 0.1, 1.0, 0.03)
//	if err != nil {
//	  // errors.Is(err, diffusion.ErrInvalidParameter)
//	}
//	mu := m.Drift(0.05, 0)
//	sigma, err := m.Volatility(0.05, 0)
//
// Mean-reverting families (OU, CIR) accept μ̄ for a uniform parameter record
// but their drift is κ·(θ − S); μ̄ is kept in Params and otherwise ignored.
//
// Time t is a discrete step index. All five families are time-homogeneous, the
// argument exists so drivers can treat models uniformly.
package diffusion
