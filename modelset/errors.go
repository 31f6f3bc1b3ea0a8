// SPDX-License-Identifier: MIT
// Package: lvsde/modelset
//
// errors.go — sentinel errors and the per-record error wrapper.
//
// Every document failure matches exactly one modelset sentinel or a
// diffusion sentinel; RecordError adds where it happened.

package modelset

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode indicates malformed YAML, an unknown field or a stream with
	// more than one YAML document.
	ErrDecode = errors.New("modelset: cannot decode document")
	// ErrEmptyName indicates a record without a name.
	ErrEmptyName = errors.New("modelset: model name is required")
	// ErrDuplicateName indicates two records with the same name.
	ErrDuplicateName = errors.New("modelset: duplicate model name")
	// ErrMissingField indicates a record without a key its kind requires.
	ErrMissingField = errors.New("modelset: missing required field")
	// ErrUnexpectedField indicates a key the record's kind does not use.
	ErrUnexpectedField = errors.New("modelset: field not used by kind")
	// ErrNotFound is returned by Set.Get for an unknown name.
	ErrNotFound = errors.New("modelset: model not found")
)

// RecordError locates a failure inside a document.
//
// Err is a modelset sentinel or the diffusion error that rejected the
// record (ErrInvalidParameter, alone or together with ErrUnknownKind or
// ErrUnknownPolicy), so errors.Is works through it.
type RecordError struct {
	Path  string // source file, empty for Load
	Index int    // position in models[]
	Name  string // record name, possibly empty
	Err   error
}

func (e *RecordError) Error() string {
	loc := fmt.Sprintf("models[%d]", e.Index)
	if e.Name != "" {
		loc += fmt.Sprintf(" (%s)", e.Name)
	}
	if e.Path != "" {
		loc = e.Path + ": " + loc
	}

	return fmt.Sprintf("modelset: %s: %v", loc, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
