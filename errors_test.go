package shape

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

// spec §7: unknown record types are a hard decode error, unconditionally.
func TestDecodeUnknownRecordKind(t *testing.T) {
	tag := &DefineShape{
		Records: []ShapeRecord{
			{Kind: RecordStyleChange, Move: true},
			{Kind: RecordKind(99)},
		},
	}
	_, err := Decode(tag, NewDependencySet(), Config{})
	if err == nil {
		t.Fatal("expected an error for an unrecognized record kind")
	}
	if !errors.Is(err, ErrUnknownRecordKind) {
		t.Fatalf("expected errors.Is(err, ErrUnknownRecordKind), got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	test.T(t, de.RecordIndex, 1)
}

func TestDecodeMorphUnknownRecordKind(t *testing.T) {
	tag := &DefineMorphShape{
		Records:      []ShapeRecord{{Kind: RecordKind(99)}},
		RecordsMorph: []ShapeRecord{{Kind: RecordKind(99)}},
	}
	_, err := DecodeMorph(tag, NewDependencySet(), Config{})
	if !errors.Is(err, ErrUnknownRecordKind) {
		t.Fatalf("expected errors.Is(err, ErrUnknownRecordKind), got %v", err)
	}
}

// spec §7: an out-of-range style index is a MalformedInput instance.
func TestDecodeStyleIndexOutOfRangeIsMalformedInput(t *testing.T) {
	tag := &DefineShape{
		Styles: StyleTable{Fills: []RawFillStyle{solidFill(1, 2, 3, 255)}},
		Records: []ShapeRecord{
			{Kind: RecordStyleChange, HasFillStyle1: true, FillStyle1: 5, Move: true},
		},
	}
	_, err := Decode(tag, NewDependencySet(), Config{})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected errors.Is(err, ErrMalformedInput), got %v", err)
	}
	if !errors.Is(err, ErrStyleIndexOutOfRange) {
		t.Fatalf("expected errors.Is(err, ErrStyleIndexOutOfRange), got %v", err)
	}
	var de *DecodeError
	if errors.As(err, &de) {
		test.T(t, de.Slot, "rightFill")
	} else {
		t.Fatal("expected a *DecodeError")
	}
}

func TestDecodeMorphStyleIndexOutOfRangeIsMalformedInput(t *testing.T) {
	tag := &DefineMorphShape{
		Styles: StyleTable{Lines: []RawLineStyle{{Width: 10}}},
		Records: []ShapeRecord{
			{Kind: RecordStyleChange, HasLineStyle: true, LineStyleIdx: 7, Move: true},
		},
		RecordsMorph: []ShapeRecord{
			{Kind: RecordStyleChange, Move: true},
		},
	}
	_, err := DecodeMorph(tag, NewDependencySet(), Config{})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected errors.Is(err, ErrMalformedInput), got %v", err)
	}
}

func TestDecodeErrorMessageFormatting(t *testing.T) {
	de := &DecodeError{Err: ErrUnknownRecordKind, RecordIndex: 3}
	test.T(t, de.Error(), "swfshape: record 3: swfshape: unknown record kind")

	deSlot := &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: 2, Slot: "line"}
	test.T(t, deSlot.Error(), "swfshape: record 2 (line): "+ErrStyleIndexOutOfRange.Error())
	test.T(t, deSlot.Unwrap(), ErrStyleIndexOutOfRange)
}
