// SPDX-License-Identifier: MIT
// Package: lvsde/modelset
//
// set.go — read-only name → model lookup.

package modelset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsde/diffusion"
)

// Set is an immutable collection of named models.
type Set struct {
	models map[string]diffusion.Model
	names  []string // document order
}

// Get returns the model registered under name, or ErrNotFound.
func (s *Set) Get(name string) (diffusion.Model, error) {
	m, ok := s.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return m, nil
}

// Names returns the model names in sorted order. The slice is a copy.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	sort.Strings(out)

	return out
}

// Len reports the number of models.
func (s *Set) Len() int { return len(s.models) }
