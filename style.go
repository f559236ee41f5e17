package shape

// FillKind enumerates the decoded fill-style variants (spec §3).
type FillKind int

const (
	FillSolid FillKind = iota
	FillLinearGradient
	FillRadialGradient
	FillFocalGradient
	FillBitmap
)

// GradientStop is a color at a ratio along a gradient ramp, in record order.
type GradientStop struct {
	Ratio float64
	Color Color
}

// FillStyleMorph carries the paired end-of-tween fields for a FillStyle
// decoded from a DefineMorphShape (spec §4.1, last paragraph).
type FillStyleMorph struct {
	EndColor      Color
	EndMatrix     Matrix
	EndStops      []GradientStop
	EndFocalPoint float64
}

// FillStyle is the normalized form of a raw fill descriptor (spec §3/§4.1).
// Exactly the fields relevant to Kind are meaningful; Morph is non-nil only
// when this style was decoded as part of a morph shape.
type FillStyle struct {
	Kind FillKind

	// FillSolid
	Color Color

	// FillLinearGradient, FillRadialGradient, FillFocalGradient, FillBitmap
	Matrix Matrix

	// gradients
	Stops      []GradientStop
	FocalPoint float64 // FillFocalGradient only

	// FillBitmap
	BitmapIndex int // index into the shape's DependencySet, not the raw bitmap id
	Repeat      bool
	Smooth      bool

	Morph *FillStyleMorph
}

// Cap enumerates stroke end-cap styles.
type Cap int

const (
	ButtCap Cap = iota
	RoundCap
	SquareCap
)

// Join enumerates stroke join styles.
type Join int

const (
	MiterJoin Join = iota
	RoundJoin
	BevelJoin
)

// miterLimit converts a raw miter-limit factor into the stored form used by
// LineStyle, per spec §3: max(1.5, factor) * 2.
func miterLimit(factor float64) float64 {
	if factor < 1.5 {
		factor = 1.5
	}
	return factor * 2.0
}

// LineStyleMorph carries the paired end-of-tween fields for a LineStyle
// decoded from a DefineMorphShape.
type LineStyleMorph struct {
	EndWidth int32
	EndColor Color
}

// LineStyle is the normalized form of a raw line descriptor (spec §3/§4.1).
type LineStyle struct {
	Width int32 // twips
	Color Color

	StartCap, EndCap Cap
	Join             Join
	MiterLimit       float64

	NoHScale     bool
	NoVScale     bool
	PixelHinting bool

	// FillOverride is set when the raw line declared hasFill; the nested
	// fill is normalized but never interpreted further here (spec §9,
	// "Open question — line-style nested fill").
	FillOverride *FillStyle

	Morph *LineStyleMorph
}

// defaultLineStyle is the lazily-created fallback path's style (spec §4.2):
// a fully transparent hairline.
func defaultLineStyle() LineStyle {
	return LineStyle{
		Width: 20,
		Color: Color{0, 0, 0, 0},
	}
}
