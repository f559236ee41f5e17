package shape

// segment is one edge record's geometric content tagged with an
// orientation (spec GLOSSARY "Segment"). Rather than physically reversing
// a reversed segment's coordinates on emission, it carries the reversed
// flag and is honoured at walk time (spec §9 "Reversed segments").
type segment struct {
	start, ctrl, end Point
	curved           bool
	reversed         bool
}

// startPoint and endPoint return the segment's effective endpoints,
// accounting for reversed (spec §4.3).
func (s segment) startPoint() Point {
	if s.reversed {
		return s.end
	}
	return s.start
}

func (s segment) endPoint() Point {
	if s.reversed {
		return s.start
	}
	return s.end
}

// bucket is the list of segments belonging to a single style slot within
// one layer (spec GLOSSARY "Bucket"). styleIndex is the bucket's 1-based
// position in its layer's fill/line table, used for path-ordering output
// (spec §4.3).
type bucket struct {
	styleIndex int
	segments   []segment
}

// styleLayer is a snapshot of the fill/line tables active between two
// HasNewStyles events (spec GLOSSARY "Style layer"), together with the
// buckets accumulated for that layer's styles.
type styleLayer struct {
	fills []FillStyle
	lines []LineStyle

	fillBuckets map[int]*bucket
	lineBuckets map[int]*bucket
}

func newStyleLayer(fills []FillStyle, lines []LineStyle) *styleLayer {
	return &styleLayer{
		fills:       fills,
		lines:       lines,
		fillBuckets: map[int]*bucket{},
		lineBuckets: map[int]*bucket{},
	}
}

func (l *styleLayer) fillBucket(index int) *bucket {
	b, ok := l.fillBuckets[index]
	if !ok {
		b = &bucket{styleIndex: index}
		l.fillBuckets[index] = b
	}
	return b
}

func (l *styleLayer) lineBucket(index int) *bucket {
	b, ok := l.lineBuckets[index]
	if !ok {
		b = &bucket{styleIndex: index}
		l.lineBuckets[index] = b
	}
	return b
}
