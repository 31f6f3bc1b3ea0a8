// SPDX-License-Identifier: MIT
// Package diffusion contains unit tests for option resolution.
package diffusion

import "testing"

// TestNewConfig_Defaults verifies the documented defaults and ordering.
func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	if got := newConfig().negativeVol; got != RejectNegative {
		t.Errorf("default negativeVol: expected %v, got %v", RejectNegative, got)
	}

	cfg := newConfig(WithNegativeVolPolicy(PassNegative), nil, WithNegativeVolPolicy(ClampNegative))
	if cfg.negativeVol != ClampNegative {
		t.Errorf("last option should win: expected %v, got %v", ClampNegative, cfg.negativeVol)
	}
}
