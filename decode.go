package shape

// This file implements the decoder's entry points (spec §5): Decode walks a
// DefineShape's record stream, emitting segments into style-layer buckets
// and reconstructing each bucket into a Path; DecodeMorph does the same for
// a paired DefineMorphShape, additionally pairing the end-frame stream.

// Config holds the decoder's handful of tunables (SPEC_FULL.md §1). The
// zero value is ready to use: DefaultLineStyle defaults to the spec's
// 20-twip transparent hairline.
type Config struct {
	// DefaultLineStyle overrides the hairline style applied to a shape's
	// default path (spec §4.2, §9), when the zero value isn't desired.
	DefaultLineStyle *LineStyle
}

func (c Config) defaultLineStyle() LineStyle {
	if c.DefaultLineStyle != nil {
		return *c.DefaultLineStyle
	}
	return defaultLineStyle()
}

// Decode converts a DefineShape tag into a render-ready Shape (spec §5).
// deps accumulates the bitmap ids any fill style in the shape references;
// callers resolve them against a BitmapProvider before or after decoding.
func Decode(tag *DefineShape, deps *DependencySet, cfg Config) (*Shape, error) {
	fills, lines, err := normalizeStyleTable(tag.Styles, deps, false)
	if err != nil {
		return nil, err
	}

	var (
		layers        []*styleLayer
		current       = newStyleLayer(fills, lines)
		defaultBucket = &bucket{}
		x, y          int32
		leftFill      int
		rightFill     int
		line          int
	)

	for i, rec := range tag.Records {
		switch rec.Kind {
		case RecordStyleChange:
			if rec.HasNewStyles {
				layers = append(layers, current)
				newFills, newLines, err := normalizeStyleTable(rec.NewStyles, deps, false)
				if err != nil {
					return nil, &DecodeError{Err: err, RecordIndex: i}
				}
				current = newStyleLayer(newFills, newLines)
				leftFill, rightFill, line = 0, 0, 0
			}
			if rec.HasFillStyle0 {
				idx := int(rec.FillStyle0)
				if !validStyleIndex(idx, len(current.fills)) {
					return nil, &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: i, Slot: "leftFill"}
				}
				leftFill = idx
			}
			if rec.HasFillStyle1 {
				idx := int(rec.FillStyle1)
				if !validStyleIndex(idx, len(current.fills)) {
					return nil, &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: i, Slot: "rightFill"}
				}
				rightFill = idx
			}
			if rec.HasLineStyle {
				idx := int(rec.LineStyleIdx)
				if !validStyleIndex(idx, len(current.lines)) {
					return nil, &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: i, Slot: "line"}
				}
				line = idx
			}
			if rec.Move {
				x, y = rec.MoveX, rec.MoveY
			}

		case RecordStraightEdge:
			x2, y2 := x+rec.DeltaX, y+rec.DeltaY
			s := segment{start: Point{X: x, Y: y}, end: Point{X: x2, Y: y2}}
			routeSegment(current, defaultBucket, leftFill, rightFill, line, s)
			x, y = x2, y2

		case RecordCurvedEdge:
			cx, cy := x+rec.ControlDeltaX, y+rec.ControlDeltaY
			ex, ey := cx+rec.AnchorDeltaX, cy+rec.AnchorDeltaY
			s := segment{start: Point{X: x, Y: y}, ctrl: Point{X: cx, Y: cy}, end: Point{X: ex, Y: ey}, curved: true}
			routeSegment(current, defaultBucket, leftFill, rightFill, line, s)
			x, y = ex, ey

		default:
			return nil, &DecodeError{Err: ErrUnknownRecordKind, RecordIndex: i}
		}
	}
	layers = append(layers, current)

	var paths []Path
	for _, layer := range layers {
		paths = append(paths, collectLayerPaths(layer)...)
	}
	if defCmds := reconstructBucket(defaultBucket); len(defCmds) > 0 {
		ls := cfg.defaultLineStyle()
		paths = append(paths, Path{Commands: defCmds, Line: &ls})
	}

	sh := &Shape{Paths: paths, DeclaredBounds: tag.Bounds}
	sh.setLayerCount(len(layers))
	return sh, nil
}

// morphCursor walks the end-frame record stream, letting style-change
// records be peeked without being consumed (spec §4.4: "a style change on
// the start side need not be mirrored on the end side").
type morphCursor struct {
	recs []ShapeRecord
	pos  int
}

func (c *morphCursor) peek() (ShapeRecord, bool) {
	if c.pos >= len(c.recs) {
		return ShapeRecord{}, false
	}
	return c.recs[c.pos], true
}

func (c *morphCursor) advance() { c.pos++ }

// edgeGeometry resolves one straight/curved edge record against a pen
// position, independent of which frame it belongs to.
func edgeGeometry(rec ShapeRecord, x, y int32) (start, ctrl, end Point, curved bool) {
	start = Point{X: x, Y: y}
	if rec.Kind == RecordCurvedEdge {
		cx, cy := x+rec.ControlDeltaX, y+rec.ControlDeltaY
		ex, ey := cx+rec.AnchorDeltaX, cy+rec.AnchorDeltaY
		return start, Point{X: cx, Y: cy}, Point{X: ex, Y: ey}, true
	}
	ex, ey := x+rec.DeltaX, y+rec.DeltaY
	return start, Point{}, Point{X: ex, Y: ey}, false
}

// DecodeMorph converts a DefineMorphShape tag into a render-ready
// MorphShape (spec §4.4, §5).
func DecodeMorph(tag *DefineMorphShape, deps *DependencySet, cfg Config) (*MorphShape, error) {
	fills, lines, err := normalizeStyleTable(tag.Styles, deps, true)
	if err != nil {
		return nil, err
	}

	var (
		layers        []*morphStyleLayer
		current       = newMorphStyleLayer(fills, lines)
		defaultBucket = &morphBucket{}
		x, y          int32
		mx, my        int32
		leftFill      int
		rightFill     int
		line          int
	)
	end := &morphCursor{recs: tag.RecordsMorph}

	for i, rec := range tag.Records {
		switch rec.Kind {
		case RecordStyleChange:
			if rec.HasNewStyles {
				layers = append(layers, current)
				// NewStyles is already the morph-paired table (spec §6):
				// its RawFillStyle/RawLineStyle entries carry their own
				// End* fields, so no separate end-side style table exists.
				newFills, newLines, err := normalizeStyleTable(rec.NewStyles, deps, true)
				if err != nil {
					return nil, &DecodeError{Err: err, RecordIndex: i}
				}
				current = newMorphStyleLayer(newFills, newLines)
				leftFill, rightFill, line = 0, 0, 0
			}
			if rec.HasFillStyle0 {
				idx := int(rec.FillStyle0)
				if !validStyleIndex(idx, len(current.fills)) {
					return nil, &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: i, Slot: "leftFill"}
				}
				leftFill = idx
			}
			if rec.HasFillStyle1 {
				idx := int(rec.FillStyle1)
				if !validStyleIndex(idx, len(current.fills)) {
					return nil, &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: i, Slot: "rightFill"}
				}
				rightFill = idx
			}
			if rec.HasLineStyle {
				idx := int(rec.LineStyleIdx)
				if !validStyleIndex(idx, len(current.lines)) {
					return nil, &DecodeError{Err: ErrStyleIndexOutOfRange, RecordIndex: i, Slot: "line"}
				}
				line = idx
			}
			if rec.Move {
				x, y = rec.MoveX, rec.MoveY
			}

			if endRec, ok := end.peek(); ok && endRec.Kind == RecordStyleChange {
				if endRec.Move {
					mx, my = endRec.MoveX, endRec.MoveY
				}
				end.advance()
			}
			// else: the paired stream has no mirrored style change here;
			// leave (mx, my) and the cursor alone so the next edge record
			// pairs against this same end record.

		case RecordStraightEdge, RecordCurvedEdge:
			startStart, startCtrl, startEnd, startCurved := edgeGeometry(rec, x, y)

			endRec, ok := end.peek()
			if !ok {
				// End-stream exhausted first: reuse the current start
				// record as its own end (spec §4.4).
				endRec = rec
			} else {
				end.advance()
			}
			endStart, endCtrl, endEnd, endCurved := edgeGeometry(endRec, mx, my)

			var curved bool
			var sCtrl, eCtrl Point
			switch {
			case startCurved && endCurved:
				curved, sCtrl, eCtrl = true, startCtrl, endCtrl
			case !startCurved && !endCurved:
				curved = false
			case endCurved:
				// Straight start paired with a curved end: promote the
				// start side, synthesizing its control at the midpoint of
				// its own endpoints (spec §4.2).
				curved, sCtrl, eCtrl = true, midpoint(startStart, startEnd), endCtrl
			default:
				// Curved start paired with a straight end: mirror, inverted.
				curved, sCtrl, eCtrl = true, startCtrl, midpoint(endStart, endEnd)
			}

			s := morphSegment{
				startStart: startStart, startCtrl: sCtrl, startEnd: startEnd,
				endStart: endStart, endCtrl: eCtrl, endEnd: endEnd,
				curved: curved,
			}
			routeMorphSegment(current, defaultBucket, leftFill, rightFill, line, s)

			x, y = startEnd.X, startEnd.Y
			mx, my = endEnd.X, endEnd.Y

		default:
			return nil, &DecodeError{Err: ErrUnknownRecordKind, RecordIndex: i}
		}
	}
	layers = append(layers, current)

	var paths []MorphPath
	for _, layer := range layers {
		paths = append(paths, collectMorphLayerPaths(layer)...)
	}
	if defCmds := reconstructMorphBucket(defaultBucket); len(defCmds) > 0 {
		ls := cfg.defaultLineStyle()
		paths = append(paths, MorphPath{Commands: defCmds, Line: &ls})
	}

	ms := &MorphShape{
		Paths:               paths,
		DeclaredStartBounds: tag.StartBounds,
		DeclaredEndBounds:   tag.EndBounds,
	}
	ms.setLayerCount(len(layers))
	return ms, nil
}
