package types

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by a property store accessed after Close.
var ErrClosed = errors.New("property store is closed")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// CorruptedFileError is returned when a container's box structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// OpenError is returned when a property store or container reader cannot
// open a matched file.
type OpenError struct {
	Path string
	Op   string // "stat", "open", "read"
	Err  error
}

func (e *OpenError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// PathResolutionError is returned when a path pattern matches nothing or
// its directory cannot be enumerated.
type PathResolutionError struct {
	Pattern string
	Reason  string
	Err     error
}

func (e *PathResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Pattern, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Pattern, e.Reason)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered while reading a file.
//
// Warnings are collected by the property sources and the container reader
// and logged; they never stop a file from being listed.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "ftyp", "mvhd", "ilst", "stsd", "xattr", "mime"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
