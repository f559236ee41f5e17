package shape

import (
	"errors"
	"fmt"
)

// Sentinel error kinds (spec §7). Callers match them with errors.Is against
// the error returned by Decode/DecodeMorph.
var (
	// ErrMalformedInput covers spec §7's MalformedInput class. The decoder
	// returns it only through ErrStyleIndexOutOfRange, which wraps it. No
	// check is made for an edge record arriving before a pen position is
	// set: the pen starts at (0,0), so every edge has a valid start.
	ErrMalformedInput = errors.New("swfshape: malformed input")

	// ErrUnsupportedFillKind is raised by the style normalizer when a raw
	// fill descriptor names a kind outside FillKind's enumeration.
	ErrUnsupportedFillKind = errors.New("swfshape: unsupported fill kind")

	// ErrStyleIndexOutOfRange is raised when a StyleChange record names a
	// fill or line style index outside the active layer's tables. Spec §7
	// classes this as a MalformedInput instance, so it wraps ErrMalformedInput
	// and errors.Is(err, ErrMalformedInput) matches it.
	ErrStyleIndexOutOfRange = fmt.Errorf("swfshape: style index out of range: %w", ErrMalformedInput)

	// ErrUnknownRecordKind is raised for a ShapeRecord.Kind the decoder does
	// not recognize. Spec §7: unknown record types are a hard decode error,
	// since silently skipping one would misalign the morph pairing cursor.
	ErrUnknownRecordKind = errors.New("swfshape: unknown record kind")

	// ErrBitmapNotFound is raised by an external BitmapProvider (spec §6),
	// never by the decoder itself; it is defined here so callers can match
	// it uniformly with errors.Is regardless of which provider raised it.
	ErrBitmapNotFound = errors.New("swfshape: bitmap not found")
)

// DecodeError wraps a sentinel error with the record index and style slot
// that triggered it, so a caller can report exactly where decoding failed.
type DecodeError struct {
	Err         error
	RecordIndex int
	Slot        string // "leftFill", "rightFill", "line", or "" if not applicable
}

func (e *DecodeError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("swfshape: record %d (%s): %v", e.RecordIndex, e.Slot, e.Err)
	}
	return fmt.Sprintf("swfshape: record %d: %v", e.RecordIndex, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
