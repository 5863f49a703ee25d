package conv

import (
	"errors"

	"numkit/seqs"
)

var (
	// ErrInvalidConversion reports text that is not a character, binary, decimal or hex numeral.
	ErrInvalidConversion = errors.New("invalid conversion")

	// ErrUnsupportedOperation reports a conversion the value has no representation for,
	// such as a character for an arbitrary-precision number.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument is shared with package seqs so one errors.Is check covers both.
	ErrInvalidArgument = seqs.ErrInvalidArgument
)
