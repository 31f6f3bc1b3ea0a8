// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// options.go — functional options for constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     constructors and evaluation never panic.
//   • Options a family does not use are ignored, so one option list can be
//     passed to New for any Kind.

package diffusion

import "fmt"

// Option customizes model construction.
type Option func(*config)

// WithNegativeVolPolicy selects how Lipton handles a negative quadratic.
// Panics on a value outside RejectNegative, ClampNegative, PassNegative.
func WithNegativeVolPolicy(p NegativeVolPolicy) Option {
	if !p.valid() {
		panic(fmt.Sprintf("diffusion: WithNegativeVolPolicy(%d)", int(p)))
	}
	return func(c *config) {
		c.negativeVol = p
	}
}
