package shape

// CmdKind enumerates the three command variants a decoded Path can contain
// (spec §3). There is deliberately no "Close" variant: a contour that
// returns to its starting point does so because the reconstructor emitted a
// command whose end point equals the path's most recent MoveTo, not because
// of an explicit close marker.
type CmdKind int

const (
	MoveTo CmdKind = iota
	LineTo
	CurveTo
)

// Command is one drawing instruction. Control is only meaningful for
// CurveTo; Point is the command's end point (or, for MoveTo, its target).
type Command struct {
	Kind    CmdKind
	Control Point
	Point   Point
}

// Path is a self-contained sequence of commands sharing a single fill or
// stroke style (spec §3). Exactly one of Fill/Line is set.
type Path struct {
	Commands []Command
	Fill     *FillStyle
	Line     *LineStyle
}

// Shape is the render-ready output of decoding a DefineShape tag. Path order
// is significant: earlier paths are drawn first (spec §3).
type Shape struct {
	Paths []Path

	// DeclaredBounds carries DefineShape.bounds through unchanged; it is not
	// used by decoding itself (the reconstructor derives geometry purely
	// from the record stream) but lets a caller cross-check the declared
	// bounds against Bounds() (spec SPEC_FULL.md §3).
	DeclaredBounds Rect

	layerCount int
}

// Layers returns the number of style layers the shape's record stream
// produced (spec §4.2's HasNewStyles events plus the initial layer).
func (s *Shape) Layers() int {
	return s.layerCount
}

// layerCount is set by the decoder; kept unexported since it is derived
// data, not part of the documented data model of spec §3.
func (s *Shape) setLayerCount(n int) { s.layerCount = n }

// Empty reports whether p has no drawing commands.
func (p Path) Empty() bool {
	return len(p.Commands) == 0
}
