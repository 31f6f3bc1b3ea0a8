// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// config.go — resolved construction knobs and their defaults.
//
// Defaults:
//   • negativeVol = RejectNegative

package diffusion

// config aggregates all construction knobs. Passed by value.
type config struct {
	negativeVol NegativeVolPolicy
}

const defaultNegativeVol = RejectNegative

// newConfig starts from the defaults and applies opts in order; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		negativeVol: defaultNegativeVol,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
