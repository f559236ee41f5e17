package shape

import "math"

// Point is a coordinate in twips (1/20 of a pixel), SWF's native integer
// geometric unit. Equality is exact integer equality; the contour
// reconstructor (reconstruct.go) relies on this to match segment endpoints.
type Point struct {
	X, Y int32
}

// Vec is a pair of real numbers used for matrix and color-space math, where
// SWF's twip grid no longer applies (gradient/bitmap paint space, pixel
// output).
type Vec struct {
	X, Y float64
}

// Color is a straight (non-premultiplied) sRGBA color, each component
// normalized to [0,1].
type Color struct {
	R, G, B, A float64
}

// ColorFromBytes normalizes an 8-bit-per-channel color by dividing by 255,
// per the style normalizer's solid-fill rule (spec §4.1).
func ColorFromBytes(r, g, b, a uint8) Color {
	const s = 1.0 / 255.0
	return Color{float64(r) * s, float64(g) * s, float64(b) * s, float64(a) * s}
}

// Lerp linearly interpolates between two colors component-wise, as used by
// the morph render-time interpolator (spec §4.4). r is the morph ratio in
// [0,1].
func (c Color) Lerp(d Color, r float64) Color {
	return Color{
		lerp(c.R, d.R, r),
		lerp(c.G, d.G, r),
		lerp(c.B, d.B, r),
		lerp(c.A, d.A, r),
	}
}

func lerp(a, b, r float64) float64 {
	return a*(1-r) + b*r
}

// Rect is an axis-aligned rectangle in twips, as carried by DefineShape's
// Bounds and DefineMorphShape's StartBounds/EndBounds fields.
type Rect struct {
	XMin, YMin, XMax, YMax int32
}

// Empty returns true for the zero-value rect (no bounds were declared).
func (r Rect) Empty() bool {
	return r.XMin == 0 && r.YMin == 0 && r.XMax == 0 && r.YMax == 0
}

// Matrix is a 2x3 affine transform: [[A,B,Tx],[C,D,Ty]], applied as
//
//	x' = A*x + B*y + Tx
//	y' = C*x + D*y + Ty
//
// Fill and line styles carry one of these per paint (spec §3); gradient and
// bitmap matrices additionally bake in the twip-to-pixel scale factor
// described by the style normalizer (spec §4.1), which is why the ABCD
// scale and the translate-by-twips-over-20 rule are applied separately
// below rather than folded into a single generic Scale method.
type Matrix struct {
	A, B, C, D, Tx, Ty float64
}

// IdentityMatrix leaves points unchanged.
var IdentityMatrix = Matrix{A: 1, D: 1}

// Apply transforms v by m.
func (m Matrix) Apply(v Vec) Vec {
	return Vec{
		X: m.A*v.X + m.B*v.Y + m.Tx,
		Y: m.C*v.X + m.D*v.Y + m.Ty,
	}
}

// bakeScale pre-scales the ABCD components by scale and converts the
// translate components from twips to pixels by dividing by 20, matching
// the gradient (scale=819.2) and bitmap (scale=0.05) rules of spec §4.1.
func bakeScale(raw Matrix, scale float64) Matrix {
	return Matrix{
		A:  raw.A * scale,
		B:  raw.B * scale,
		C:  raw.C * scale,
		D:  raw.D * scale,
		Tx: raw.Tx / 20.0,
		Ty: raw.Ty / 20.0,
	}
}

const (
	gradientMatrixScale = 819.2 // ~2^15/40, see spec §4.1
	bitmapMatrixScale   = 0.05
)

func equalFloat(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
