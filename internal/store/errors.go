package store

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrupt matches any *CorruptError.
	ErrCorrupt = errors.New("ledger file is corrupt")
	// ErrWrite matches any *WriteError.
	ErrWrite = errors.New("ledger file could not be written")
	// ErrRead matches any *ReadError.
	ErrRead = errors.New("ledger file could not be read")
	// ErrUnsupportedFormat is returned by New for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported ledger format")
)

// CorruptError reports a ledger file that exists but does not match the schema.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("ledger %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

// WriteError reports a failed save. The file is in an unknown state
// from the caller's point of view.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("saving ledger %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// ReadError reports an I/O failure opening an existing ledger file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("opening ledger %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }
