package shape

import "sort"

// This file holds the segment emitter's routing and path-collection helpers
// (spec §4.2, §4.3). The record walk itself, with the pen position and the
// three active style slots, lives in decode.go; it hands each edge's
// geometry to routeSegment, which places it in the fill/line buckets of the
// current style layer, or in the shape's default bucket if no slot is active.

// pendingLayer is another name for styleLayer: the segments of one style
// layer between HasNewStyles events. The default bucket is not part of it;
// the decoder keeps one default bucket per shape, shared by every layer.
type pendingLayer = styleLayer

// routeSegment applies the emission table of spec §4.2/§4.3 for one edge
// record's geometry against the three active style slots:
//   - rightFill pushes the segment as drawn;
//   - leftFill pushes a reversed clone;
//   - line pushes the segment as drawn;
//   - if none of the three slots are active, the segment is pushed to the
//     shared default bucket instead.
func routeSegment(layer *styleLayer, defaultBucket *bucket, leftFill, rightFill, line int, s segment) {
	active := false
	if rightFill != 0 {
		b := layer.fillBucket(rightFill)
		b.segments = append(b.segments, s)
		active = true
	}
	if leftFill != 0 {
		b := layer.fillBucket(leftFill)
		rev := s
		rev.reversed = true
		b.segments = append(b.segments, rev)
		active = true
	}
	if line != 0 {
		b := layer.lineBucket(line)
		b.segments = append(b.segments, s)
		active = true
	}
	if !active {
		defaultBucket.segments = append(defaultBucket.segments, s)
	}
}

// routeMorphSegment is routeSegment's morph analogue.
func routeMorphSegment(layer *morphStyleLayer, defaultBucket *morphBucket, leftFill, rightFill, line int, s morphSegment) {
	active := false
	if rightFill != 0 {
		b := layer.fillBucket(rightFill)
		b.segments = append(b.segments, s)
		active = true
	}
	if leftFill != 0 {
		b := layer.fillBucket(leftFill)
		rev := s
		rev.reversed = true
		b.segments = append(b.segments, rev)
		active = true
	}
	if line != 0 {
		b := layer.lineBucket(line)
		b.segments = append(b.segments, s)
		active = true
	}
	if !active {
		defaultBucket.segments = append(defaultBucket.segments, s)
	}
}

// validStyleIndex reports whether idx (a 1-based style index, 0 meaning
// "none") names a valid slot in a table of the given length.
func validStyleIndex(idx, tableLen int) bool {
	return idx >= 0 && idx <= tableLen
}

// collectLayerPaths flattens one style layer's buckets into Paths, in
// fill-index order followed by line-index order (spec §4.3). Empty
// reconstructions are dropped.
func collectLayerPaths(layer *styleLayer) []Path {
	var paths []Path
	for _, idx := range sortedBucketIndices(layer.fillBuckets) {
		b := layer.fillBuckets[idx]
		cmds := reconstructBucket(b)
		if len(cmds) == 0 {
			continue
		}
		fs := layer.fills[idx-1]
		paths = append(paths, Path{Commands: cmds, Fill: &fs})
	}
	for _, idx := range sortedBucketIndices(layer.lineBuckets) {
		b := layer.lineBuckets[idx]
		cmds := reconstructBucket(b)
		if len(cmds) == 0 {
			continue
		}
		ls := layer.lines[idx-1]
		paths = append(paths, Path{Commands: cmds, Line: &ls})
	}
	return paths
}

// collectMorphLayerPaths is collectLayerPaths' morph analogue.
func collectMorphLayerPaths(layer *morphStyleLayer) []MorphPath {
	var paths []MorphPath
	for _, idx := range sortedMorphBucketIndices(layer.fillBuckets) {
		b := layer.fillBuckets[idx]
		cmds := reconstructMorphBucket(b)
		if len(cmds) == 0 {
			continue
		}
		fs := layer.fills[idx-1]
		paths = append(paths, MorphPath{Commands: cmds, Fill: &fs})
	}
	for _, idx := range sortedMorphBucketIndices(layer.lineBuckets) {
		b := layer.lineBuckets[idx]
		cmds := reconstructMorphBucket(b)
		if len(cmds) == 0 {
			continue
		}
		ls := layer.lines[idx-1]
		paths = append(paths, MorphPath{Commands: cmds, Line: &ls})
	}
	return paths
}

func sortedBucketIndices(m map[int]*bucket) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func sortedMorphBucketIndices(m map[int]*morphBucket) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
