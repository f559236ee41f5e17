// Package shapeio holds in-memory tag-construction helpers for building
// shape.DefineShape/shape.DefineMorphShape fixtures without hand-writing
// every field, the way the teacher's own tests build Path values through
// fluent builder methods (MoveTo, LineTo, ...) rather than literal structs.
package shapeio

import swfshape "github.com/gofla/swfshape"

// ShapeBuilder accumulates style tables and records for a DefineShape.
type ShapeBuilder struct {
	id      uint16
	bounds  swfshape.Rect
	styles  swfshape.StyleTable
	records []swfshape.ShapeRecord
}

// NewShape starts a ShapeBuilder for the given tag id and declared bounds.
func NewShape(id uint16, bounds swfshape.Rect) *ShapeBuilder {
	return &ShapeBuilder{id: id, bounds: bounds}
}

// AddFillStyle appends a fill style to the shape's top-level style table
// and returns its 1-based index, ready to pass to FillStyle0/FillStyle1.
func (b *ShapeBuilder) AddFillStyle(f swfshape.RawFillStyle) uint32 {
	b.styles.Fills = append(b.styles.Fills, f)
	return uint32(len(b.styles.Fills))
}

// AddLineStyle appends a line style and returns its 1-based index.
func (b *ShapeBuilder) AddLineStyle(l swfshape.RawLineStyle) uint32 {
	b.styles.Lines = append(b.styles.Lines, l)
	return uint32(len(b.styles.Lines))
}

// MoveTo starts a new subpath at an absolute position.
func (b *ShapeBuilder) MoveTo(x, y int32) *ShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordStyleChange, Move: true, MoveX: x, MoveY: y,
	})
	return b
}

// SetStyles sets the left-fill (0 for none), right-fill, and line style
// slots, by 1-based index into the shape's (or current layer's) tables.
func (b *ShapeBuilder) SetStyles(leftFill, rightFill, line uint32) *ShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind:          swfshape.RecordStyleChange,
		HasFillStyle0: true, FillStyle0: leftFill,
		HasFillStyle1: true, FillStyle1: rightFill,
		HasLineStyle: true, LineStyleIdx: line,
	})
	return b
}

// NewLayer starts a new style layer with a fresh style table, resetting
// all three style slots (spec §4.2).
func (b *ShapeBuilder) NewLayer(styles swfshape.StyleTable) *ShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordStyleChange, HasNewStyles: true, NewStyles: styles,
	})
	return b
}

// LineTo emits a straight edge by delta from the current pen position.
func (b *ShapeBuilder) LineTo(dx, dy int32) *ShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordStraightEdge, DeltaX: dx, DeltaY: dy,
	})
	return b
}

// CurveTo emits a curved edge by control/anchor delta from the current pen
// position.
func (b *ShapeBuilder) CurveTo(cdx, cdy, adx, ady int32) *ShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind:           swfshape.RecordCurvedEdge,
		ControlDeltaX:  cdx, ControlDeltaY: cdy,
		AnchorDeltaX: adx, AnchorDeltaY: ady,
	})
	return b
}

// Build returns the finished DefineShape.
func (b *ShapeBuilder) Build() *swfshape.DefineShape {
	return &swfshape.DefineShape{
		ID:      b.id,
		Bounds:  b.bounds,
		Styles:  b.styles,
		Records: b.records,
	}
}

// MorphShapeBuilder is ShapeBuilder's analogue for DefineMorphShape: start-
// and end-frame records are appended in parallel by each method call.
type MorphShapeBuilder struct {
	id                      uint16
	startBounds, endBounds  swfshape.Rect
	styles                  swfshape.StyleTable
	records, recordsMorph   []swfshape.ShapeRecord
}

// NewMorphShape starts a MorphShapeBuilder.
func NewMorphShape(id uint16, startBounds, endBounds swfshape.Rect) *MorphShapeBuilder {
	return &MorphShapeBuilder{id: id, startBounds: startBounds, endBounds: endBounds}
}

// AddFillStyle appends a paired fill style (its End* fields already set)
// and returns its 1-based index.
func (b *MorphShapeBuilder) AddFillStyle(f swfshape.RawFillStyle) uint32 {
	b.styles.Fills = append(b.styles.Fills, f)
	return uint32(len(b.styles.Fills))
}

// AddLineStyle appends a paired line style and returns its 1-based index.
func (b *MorphShapeBuilder) AddLineStyle(l swfshape.RawLineStyle) uint32 {
	b.styles.Lines = append(b.styles.Lines, l)
	return uint32(len(b.styles.Lines))
}

// MoveTo appends a start-frame move; MoveToEnd appends the paired end-frame
// move. Call both, in either order, for a style change mirrored on both
// sides; call MoveTo alone for a start-frame change the end frame does not
// mirror (spec §4.4). An end-frame style change with no start-frame
// counterpart is not skipped by the decoder: it is paired with the next
// start-frame edge.
func (b *MorphShapeBuilder) MoveTo(x, y int32) *MorphShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordStyleChange, Move: true, MoveX: x, MoveY: y,
	})
	return b
}

func (b *MorphShapeBuilder) MoveToEnd(x, y int32) *MorphShapeBuilder {
	b.recordsMorph = append(b.recordsMorph, swfshape.ShapeRecord{
		Kind: swfshape.RecordStyleChange, Move: true, MoveX: x, MoveY: y,
	})
	return b
}

// SetStyles sets the style slots on the start-frame stream only; morph
// style changes carry no paired fields of their own beyond the move.
func (b *MorphShapeBuilder) SetStyles(leftFill, rightFill, line uint32) *MorphShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind:          swfshape.RecordStyleChange,
		HasFillStyle0: true, FillStyle0: leftFill,
		HasFillStyle1: true, FillStyle1: rightFill,
		HasLineStyle: true, LineStyleIdx: line,
	})
	return b
}

// LineTo appends a paired straight edge to both the start and end streams.
func (b *MorphShapeBuilder) LineTo(startDx, startDy, endDx, endDy int32) *MorphShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordStraightEdge, DeltaX: startDx, DeltaY: startDy,
	})
	b.recordsMorph = append(b.recordsMorph, swfshape.ShapeRecord{
		Kind: swfshape.RecordStraightEdge, DeltaX: endDx, DeltaY: endDy,
	})
	return b
}

// CurveTo appends a paired curved edge to both streams.
func (b *MorphShapeBuilder) CurveTo(startCdx, startCdy, startAdx, startAdy, endCdx, endCdy, endAdx, endAdy int32) *MorphShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordCurvedEdge, ControlDeltaX: startCdx, ControlDeltaY: startCdy,
		AnchorDeltaX: startAdx, AnchorDeltaY: startAdy,
	})
	b.recordsMorph = append(b.recordsMorph, swfshape.ShapeRecord{
		Kind: swfshape.RecordCurvedEdge, ControlDeltaX: endCdx, ControlDeltaY: endCdy,
		AnchorDeltaX: endAdx, AnchorDeltaY: endAdy,
	})
	return b
}

// StraightThenCurvedEnd appends a straight start edge paired with a curved
// end edge (spec §4.2's promotion scenario).
func (b *MorphShapeBuilder) StraightThenCurvedEnd(startDx, startDy, endCdx, endCdy, endAdx, endAdy int32) *MorphShapeBuilder {
	b.records = append(b.records, swfshape.ShapeRecord{
		Kind: swfshape.RecordStraightEdge, DeltaX: startDx, DeltaY: startDy,
	})
	b.recordsMorph = append(b.recordsMorph, swfshape.ShapeRecord{
		Kind: swfshape.RecordCurvedEdge, ControlDeltaX: endCdx, ControlDeltaY: endCdy,
		AnchorDeltaX: endAdx, AnchorDeltaY: endAdy,
	})
	return b
}

// Build returns the finished DefineMorphShape.
func (b *MorphShapeBuilder) Build() *swfshape.DefineMorphShape {
	return &swfshape.DefineMorphShape{
		ID:           b.id,
		StartBounds:  b.startBounds,
		EndBounds:    b.endBounds,
		Styles:       b.styles,
		Records:      b.records,
		RecordsMorph: b.recordsMorph,
	}
}
