// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// validators.go — parameter and state guards shared by the families.
//
// Each guard returns nil or a *ParamError; constructors run them in a fixed
// order (finiteness first, then range rules in argument order) so that the
// reported parameter is deterministic when several are wrong.

package diffusion

import "math"

// param is a named constructor argument.
type param struct {
	name  string
	value float64
}

// validateFinite rejects NaN and ±Inf in any of ps.
func validateFinite(kind Kind, ps ...param) error {
	for _, p := range ps {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &ParamError{Model: kind, Param: p.name, Value: p.value, Rule: "must be finite"}
		}
	}

	return nil
}

// validatePositive enforces p > 0.
func validatePositive(kind Kind, p param) error {
	if p.value <= 0 {
		return &ParamError{Model: kind, Param: p.name, Value: p.value, Rule: "must be > 0"}
	}

	return nil
}

// validateNonNegative enforces p >= 0.
func validateNonNegative(kind Kind, p param) error {
	if p.value < 0 {
		return &ParamError{Model: kind, Param: p.name, Value: p.value, Rule: "must be >= 0"}
	}

	return nil
}

// validateState rejects a NaN or ±Inf state for families whose volatility
// has a restricted domain.
func validateState(kind Kind, s float64) error {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return &DomainError{Model: kind, State: s, Rule: "S must be finite"}
	}

	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
