// SPDX-License-Identifier: MIT
package diffusion_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvsde/diffusion"
	"github.com/stretchr/testify/assert"
)

// TestParamError_Format pins the message layout and unwrap target.
func TestParamError_Format(t *testing.T) {
	t.Parallel()

	err := &diffusion.ParamError{Model: diffusion.KindCIR, Param: "kappa", Value: -1, Rule: "must be > 0"}
	assert.Equal(t, "diffusion: cir: invalid parameter kappa=-1 (must be > 0)", err.Error())
	assert.True(t, errors.Is(err, diffusion.ErrInvalidParameter))
	assert.False(t, errors.Is(err, diffusion.ErrDomain))
}

// TestDomainError_Format pins the message layout and unwrap target.
func TestDomainError_Format(t *testing.T) {
	t.Parallel()

	err := &diffusion.DomainError{Model: diffusion.KindCIR, State: -1, Rule: "S must be >= 0"}
	assert.Equal(t, "diffusion: cir: state S=-1 out of domain (S must be >= 0)", err.Error())
	assert.True(t, errors.Is(err, diffusion.ErrDomain))
	assert.False(t, errors.Is(err, diffusion.ErrInvalidParameter))
}

// TestErrors_FirstViolationReported: with several bad values the first in
// argument order (after finiteness) is reported.
func TestErrors_FirstViolationReported(t *testing.T) {
	t.Parallel()

	_, err := diffusion.NewCIR(0, -0.1, -1, -1)
	var pe *diffusion.ParamError
	if assert.True(t, errors.As(err, &pe)) {
		assert.Equal(t, "sigma", pe.Param)
	}
}
