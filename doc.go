// Package lvsde is a small library of one-dimensional diffusion models:
// closed-form drift and volatility functions for dS = μ(S,t)·dt + σ(S,t)·dW,
// ready to be called from a path simulator or a PDE coefficient evaluator.
//
// 🚀 What is in lvsde?
//
//   - GBM, CEV, Ornstein-Uhlenbeck, Lipton quadratic local vol, Cox-Ingersoll-Ross
//   - one Model capability: Drift(S,t), Volatility(S,t)
//   - validated, immutable construction; explicit domain errors at evaluation
//   - YAML parameter documents mapped to ready models
//
// ✨ Why lvsde?
//
//   - Exact formulas, documented boundaries – every strict/non-strict constraint is tested
//   - Share freely – models are immutable, evaluate from any goroutine
//   - Pure Go – no cgo
//
// Subpackages:
//
//	diffusion/ — Model, the five families, Params record, New factory, errors & options
//	modelset/  — named models loaded from a YAML parameter document
//
// Simulation schemes, random numbers and calibration are left to the caller.
//
//	go get github.com/katalvlaran/lvsde/diffusion
package lvsde
