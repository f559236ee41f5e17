package shape

// MorphCommand is one drawing instruction carrying both start-frame and
// end-frame coordinates (spec §3). Kind matches CmdKind's meaning; the
// start and end sides always share the same Kind, since the segment
// emitter promotes any mismatched straight/curve pair into a curve on both
// sides before a MorphCommand is ever built (spec §4.2, §4.4).
type MorphCommand struct {
	Kind CmdKind

	StartControl Point
	EndControl   Point

	StartPoint Point
	EndPoint   Point
}

// MorphPath is the morph analogue of Path: one style slot, one command
// sequence, each command carrying paired geometry.
type MorphPath struct {
	Commands []MorphCommand
	Fill     *FillStyle // Morph field populated
	Line     *LineStyle // Morph field populated
}

// MorphShape is the render-ready output of decoding a DefineMorphShape tag.
type MorphShape struct {
	Paths []MorphPath

	DeclaredStartBounds Rect
	DeclaredEndBounds   Rect

	layerCount int
}

// Layers returns the number of style layers produced while decoding.
func (s *MorphShape) Layers() int { return s.layerCount }

// setLayerCount is set by the decoder; see Shape.setLayerCount.
func (s *MorphShape) setLayerCount(n int) { s.layerCount = n }

// Empty reports whether p has no drawing commands.
func (p MorphPath) Empty() bool {
	return len(p.Commands) == 0
}

// LerpPoint linearly interpolates a twip coordinate pair at morph ratio r in
// [0,1] (spec §4.4's render-time interpolation, lifted to Point/Vec so a
// renderer need not reimplement it).
func LerpPoint(a, b Point, r float64) Vec {
	return Vec{
		X: lerp(float64(a.X), float64(b.X), r),
		Y: lerp(float64(a.Y), float64(b.Y), r),
	}
}

// LerpWidth linearly interpolates a stroke width at morph ratio r.
func LerpWidth(a, b int32, r float64) float64 {
	return lerp(float64(a), float64(b), r)
}
