// SPDX-License-Identifier: MIT
// Package: lvsde/modelset
//
// mapper.go — record → diffusion.Model.
//
// Per record: kind, then the kind's key set, then the negative-vol policy,
// then diffusion.New. Kind and policy failures are wrapped so they also match
// diffusion.ErrInvalidParameter, the same as diffusion.New reports them.

package modelset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsde/diffusion"
)

// requiredFields lists the parameter keys each family must supply.
// mu is optional for every family and defaults to 0.
var requiredFields = map[diffusion.Kind][]string{
	diffusion.KindGBM:    {"sigma"},
	diffusion.KindCEV:    {"sigma", "beta"},
	diffusion.KindOU:     {"sigma", "kappa", "theta"},
	diffusion.KindLipton: {"sigma0", "sigma1", "sigma2"},
	diffusion.KindCIR:    {"sigma", "kappa", "theta"},
}

// field is a parameter key and whether the record set it.
type field struct {
	key string
	set bool
}

// mapDocument validates every record and builds its model.
// The first failing record aborts the mapping.
func mapDocument(path string, doc yamlDocument) (*Set, error) {
	set := &Set{models: make(map[string]diffusion.Model, len(doc.Models))}

	for i, rec := range doc.Models {
		name := strings.TrimSpace(rec.Name)
		fail := func(err error) error {
			return &RecordError{Path: path, Index: i, Name: name, Err: err}
		}

		if name == "" {
			return nil, fail(ErrEmptyName)
		}
		if _, dup := set.models[name]; dup {
			return nil, fail(ErrDuplicateName)
		}

		m, err := mapModel(rec)
		if err != nil {
			return nil, fail(err)
		}
		set.models[name] = m
		set.names = append(set.names, name)
	}

	return set, nil
}

// mapModel turns one record into a validated diffusion.Model.
func mapModel(rec yamlModel) (diffusion.Model, error) {
	kind, err := diffusion.ParseKind(rec.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", diffusion.ErrInvalidParameter, err)
	}
	if err = checkFields(kind, rec); err != nil {
		return nil, err
	}

	var opts []diffusion.Option
	if rec.NegativeVol != nil && strings.TrimSpace(*rec.NegativeVol) != "" {
		policy, err := diffusion.ParseNegativeVolPolicy(*rec.NegativeVol)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", diffusion.ErrInvalidParameter, err)
		}
		opts = append(opts, diffusion.WithNegativeVolPolicy(policy))
	}

	return diffusion.New(diffusion.Params{
		Kind:   kind,
		Mu:     value(rec.Mu),
		Sigma:  value(rec.Sigma),
		Beta:   value(rec.Beta),
		Kappa:  value(rec.Kappa),
		Theta:  value(rec.Theta),
		Sigma0: value(rec.Sigma0),
		Sigma1: value(rec.Sigma1),
		Sigma2: value(rec.Sigma2),
	}, opts...)
}

// checkFields rejects a record that omits a key its kind requires or sets a
// key its kind does not use. negative_vol is accepted on lipton records only.
func checkFields(kind diffusion.Kind, rec yamlModel) error {
	fields := []field{
		{"mu", rec.Mu != nil},
		{"sigma", rec.Sigma != nil},
		{"beta", rec.Beta != nil},
		{"kappa", rec.Kappa != nil},
		{"theta", rec.Theta != nil},
		{"sigma0", rec.Sigma0 != nil},
		{"sigma1", rec.Sigma1 != nil},
		{"sigma2", rec.Sigma2 != nil},
		{"negative_vol", rec.NegativeVol != nil},
	}
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f.key] = f.set
	}

	allowed := map[string]bool{"mu": true}
	if kind == diffusion.KindLipton {
		allowed["negative_vol"] = true
	}
	for _, key := range requiredFields[kind] {
		if !present[key] {
			return fmt.Errorf("%w: %s requires %q", ErrMissingField, kind, key)
		}
		allowed[key] = true
	}

	for _, f := range fields {
		if f.set && !allowed[f.key] {
			return fmt.Errorf("%w: %s does not use %q", ErrUnexpectedField, kind, f.key)
		}
	}

	return nil
}

// value dereferences an optional parameter; absent means 0.
func value(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
