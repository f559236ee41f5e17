package shape

// This file models the raw, wire-level tag contents the decoder consumes
// (spec §6). Nothing here is normalized yet; normalizer.go converts these
// into the FillStyle/LineStyle forms of style.go.

// RawColor is an 8-bit-per-channel straight RGBA color as read off the tag.
type RawColor struct {
	R, G, B, A uint8
}

// RawGradientStop is one gradient stop before normalization; Ratio is
// already scaled into [0,1] by the tag reader (spec §4.1: "each stop
// preserves its input ratio").
type RawGradientStop struct {
	Ratio float64
	Color RawColor
}

// BitmapFillType enumerates the four SWF bitmap-fill record kinds; the
// normalizer derives Repeat/Smooth from this (spec §4.1).
type BitmapFillType int

const (
	BitmapNonsmoothedClipped BitmapFillType = iota
	BitmapRepeating
	BitmapClipped
	BitmapNonsmoothedRepeating
)

// RawFillStyle is an undecoded fill-style descriptor. Which fields are
// meaningful depends on Kind. The End* fields are populated only when this
// descriptor comes from a DefineMorphShape's paired style table.
type RawFillStyle struct {
	Kind FillKind

	Color  RawColor
	Matrix Matrix

	Stops      []RawGradientStop
	FocalPoint float64

	BitmapID   uint16
	BitmapType BitmapFillType

	EndColor      RawColor
	EndMatrix     Matrix
	EndStops      []RawGradientStop
	EndFocalPoint float64
}

// RawLineStyle is an undecoded line-style descriptor.
type RawLineStyle struct {
	Width uint16
	Color RawColor

	StartCap, EndCap Cap
	Join             Join
	MiterLimitFactor float64

	NoHScale     bool
	NoVScale     bool
	PixelHinting bool

	HasFill bool
	Fill    RawFillStyle

	EndWidth uint16
	EndColor RawColor
}

// StyleTable is the fill/line style arrays active within one layer (either
// a DefineShape's top-level tables, or a StyleChange record's NewStyles).
type StyleTable struct {
	Fills []RawFillStyle
	Lines []RawLineStyle
}

// RecordKind enumerates the three shape-record variants (spec §6).
type RecordKind int

const (
	RecordStyleChange RecordKind = iota
	RecordStraightEdge
	RecordCurvedEdge
)

// ShapeRecord is one edge-record-stream entry. Which fields apply depends
// on Kind; unused fields are zero.
type ShapeRecord struct {
	Kind RecordKind

	// RecordStyleChange
	HasNewStyles                bool
	HasFillStyle0, HasFillStyle1 bool
	FillStyle0, FillStyle1       uint32 // 1-based; 0 means "no style"
	HasLineStyle                bool
	LineStyleIdx                uint32 // 1-based; 0 means "no style"
	Move                         bool
	MoveX, MoveY                 int32 // absolute, per spec §9
	NewStyles                    StyleTable

	// RecordStraightEdge
	DeltaX, DeltaY int32

	// RecordCurvedEdge
	ControlDeltaX, ControlDeltaY int32
	AnchorDeltaX, AnchorDeltaY   int32
}

// DefineShape is the flat-shape input tag (spec §6).
type DefineShape struct {
	ID      uint16
	Bounds  Rect
	Styles  StyleTable
	Records []ShapeRecord
}

// DefineMorphShape is the morph-shape input tag (spec §6). Records is the
// start-frame stream (the tag's own "records[]"); RecordsMorph is the
// end-frame stream ("recordsMorph[]"). Styles' RawFillStyle/RawLineStyle
// entries carry their End* pairing fields inline.
type DefineMorphShape struct {
	ID           uint16
	StartBounds  Rect
	EndBounds    Rect
	Styles       StyleTable
	Records      []ShapeRecord
	RecordsMorph []ShapeRecord
}
