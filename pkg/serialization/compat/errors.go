package compat

import (
	"errors"
)

var (
	// ErrLengthMismatch reports input whose length does not fit the
	// fixed-width type being decoded.
	ErrLengthMismatch = errors.New("input length mismatch")
	// ErrLimbParse reports a 64-bit limb that could not be read.
	ErrLimbParse = errors.New("error parsing integer limb")
	// ErrInvalidRecoveryMarker reports a signature recovery marker outside
	// the legacy convention.
	ErrInvalidRecoveryMarker = errors.New("wrong v, only 27 or 28")
)
