// SPDX-License-Identifier: MIT
// Package: lvsde/modelset
//
// loader.go — YAML entry points.
//
// Decoding is strict: unknown keys and trailing YAML documents fail with
// ErrDecode before any record is mapped.

package modelset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a parameter document from r and builds every model in it.
// Unknown keys are rejected. An empty document yields an empty Set.
func Load(r io.Reader) (*Set, error) {
	return load("", r)
}

// LoadFile reads and loads the document at path. Errors carry the path;
// a missing file matches fs.ErrNotExist.
func LoadFile(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelset: %s: %w", path, err)
	}

	return load(path, bytes.NewReader(b))
}

func load(path string, r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return mapDocument(path, doc)
		}
		return nil, decodeErr(path, err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, decodeErr(path, err)
	default:
		return nil, decodeErr(path, errors.New("more than one YAML document"))
	}

	return mapDocument(path, doc)
}

// decodeErr wraps a decoder failure in ErrDecode, prefixed with path if set.
func decodeErr(path string, err error) error {
	if path != "" {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return fmt.Errorf("%w: %v", ErrDecode, err)
}
