package hw

import "errors"

var (
	// ErrInvalidWidth reports a register width outside 8/16/32/64 bits.
	ErrInvalidWidth = errors.New("invalid register width")

	// ErrConflict reports a register or interrupt key re-observed with
	// different fields.
	ErrConflict = errors.New("conflicting definition")

	// ErrAddressSets reports a memory region exposing more than one
	// address set, which generation does not support.
	ErrAddressSets = errors.New("unsupported address configuration")
)
