package shape

// morphSegment is the morph analogue of segment: every coordinate carries
// both a start-frame and an end-frame value (spec §4.4). Connectivity for
// the contour reconstructor is driven entirely by the start-frame points.
type morphSegment struct {
	startStart, startCtrl, startEnd Point
	endStart, endCtrl, endEnd       Point
	curved                          bool
	reversed                        bool
}

func (s morphSegment) startPoint() Point {
	if s.reversed {
		return s.startEnd
	}
	return s.startStart
}

func (s morphSegment) endPoint() Point {
	if s.reversed {
		return s.startStart
	}
	return s.startEnd
}

// morphBucket is the morph analogue of bucket.
type morphBucket struct {
	styleIndex int
	segments   []morphSegment
}

// morphStyleLayer is the morph analogue of styleLayer.
type morphStyleLayer struct {
	fills []FillStyle
	lines []LineStyle

	fillBuckets map[int]*morphBucket
	lineBuckets map[int]*morphBucket
}

func newMorphStyleLayer(fills []FillStyle, lines []LineStyle) *morphStyleLayer {
	return &morphStyleLayer{
		fills:       fills,
		lines:       lines,
		fillBuckets: map[int]*morphBucket{},
		lineBuckets: map[int]*morphBucket{},
	}
}

func (l *morphStyleLayer) fillBucket(index int) *morphBucket {
	b, ok := l.fillBuckets[index]
	if !ok {
		b = &morphBucket{styleIndex: index}
		l.fillBuckets[index] = b
	}
	return b
}

func (l *morphStyleLayer) lineBucket(index int) *morphBucket {
	b, ok := l.lineBuckets[index]
	if !ok {
		b = &morphBucket{styleIndex: index}
		l.lineBuckets[index] = b
	}
	return b
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// reconstructMorphBucket is the morph analogue of reconstructBucket.
func reconstructMorphBucket(b *morphBucket) []MorphCommand {
	segs := b.segments
	steps := planWalk(len(segs),
		func(i int) Point { return segs[i].startPoint() },
		func(i int) Point { return segs[i].endPoint() },
	)

	cmds := make([]MorphCommand, 0, len(steps)+1)
	for _, st := range steps {
		s := segs[st.index]
		ss, sc, se := s.startStart, s.startCtrl, s.startEnd
		es, ec, ee := s.endStart, s.endCtrl, s.endEnd
		if st.flip != s.reversed {
			ss, se = se, ss
			es, ee = ee, es
		}
		if st.newContour {
			cmds = append(cmds, MorphCommand{Kind: MoveTo, StartPoint: ss, EndPoint: es})
		}
		if s.curved {
			cmds = append(cmds, MorphCommand{Kind: CurveTo, StartControl: sc, EndControl: ec, StartPoint: se, EndPoint: ee})
		} else {
			cmds = append(cmds, MorphCommand{Kind: LineTo, StartPoint: se, EndPoint: ee})
		}
	}
	return cmds
}
