package shape

// This file implements the contour reconstructor (spec §4.3): given an
// unordered multiset of oriented segments, join them into one or more
// continuous runs by matching endpoints, flipping direction where
// necessary, and emitting move/line/curve commands.

const unsetRef = -1

// walkStep is one segment visited during the reconstruction walk, in
// emission order. flip reports whether the segment must be traversed from
// its endPoint to its startPoint to connect to the running pen position.
// newContour marks the first step of a new MoveTo-delimited run.
type walkStep struct {
	index      int
	flip       bool
	newContour bool
}

// planWalk builds the endpoint-match graph for n segments (given by the
// startPt/endPt accessors) and returns the order in which to visit them to
// reconstruct every contour, per the algorithm of spec §4.3.
//
// Each segment has two sides: side 0 is its startPoint, side 1 its
// endPoint. Sides are linked pairwise by shared point value (the first free
// side claims the point; the second side to reach the same point links to
// it), giving every segment up to two neighbours, each identified by
// (segment, side) rather than by an unordered slot - this is what lets the
// walk know, for the very first segment of an open chain, which of its two
// points is the free (dead-end) one to start from.
func planWalk(n int, startPt, endPt func(i int) Point) []walkStep {
	neighborSeg := make([][2]int, n)
	neighborSide := make([][2]int, n)
	for i := range neighborSeg {
		neighborSeg[i] = [2]int{unsetRef, unsetRef}
	}

	type ref struct{ seg, side int }
	link := func(i, si, j, sj int) {
		neighborSeg[i][si], neighborSide[i][si] = j, sj
		neighborSeg[j][sj], neighborSide[j][sj] = i, si
	}

	endpointMatch := map[Point]ref{}
	for i := 0; i < n; i++ {
		for side := 0; side < 2; side++ {
			var p Point
			if side == 0 {
				p = startPt(i)
			} else {
				p = endPt(i)
			}
			if r, ok := endpointMatch[p]; ok {
				delete(endpointMatch, p)
				link(i, side, r.seg, r.side)
			} else {
				endpointMatch[p] = ref{seg: i, side: side}
			}
		}
	}

	// findHead walks "backwards" from i through side 0's chain of
	// neighbours until it reaches a side with no neighbour (the chain's
	// true dead end) or loops back to i (a closed contour, in which case i
	// itself, entered via side 0, is as good a start as any).
	findHead := func(i int) (seg, side int) {
		cur, side := i, 0
		for {
			nSeg, nSide := neighborSeg[cur][side], neighborSide[cur][side]
			if nSeg == unsetRef {
				return cur, side
			}
			if nSeg == i {
				return i, 0
			}
			cur, side = nSeg, 1-nSide
		}
	}

	visited := make([]bool, n)
	var steps []walkStep
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cur, curSide := findHead(i)
		first := true
		for {
			if visited[cur] {
				break
			}
			visited[cur] = true
			steps = append(steps, walkStep{index: cur, flip: curSide == 1, newContour: first})
			first = false

			exitSide := 1 - curSide
			nextSeg, nextSide := neighborSeg[cur][exitSide], neighborSide[cur][exitSide]
			if nextSeg == unsetRef || visited[nextSeg] {
				break
			}
			cur, curSide = nextSeg, nextSide
		}
	}
	return steps
}

// reconstructBucket turns a flat-shape bucket's segments into a command
// sequence, per spec §4.3.
func reconstructBucket(b *bucket) []Command {
	segs := b.segments
	steps := planWalk(len(segs), func(i int) Point { return segs[i].startPoint() }, func(i int) Point { return segs[i].endPoint() })

	cmds := make([]Command, 0, len(steps)+1)
	for _, st := range steps {
		s := segs[st.index]
		start, ctrl, end := s.startPoint(), s.ctrl, s.endPoint()
		if st.flip {
			start, end = end, start
		}
		if st.newContour {
			cmds = append(cmds, Command{Kind: MoveTo, Point: start})
		}
		if s.curved {
			cmds = append(cmds, Command{Kind: CurveTo, Control: ctrl, Point: end})
		} else {
			cmds = append(cmds, Command{Kind: LineTo, Point: end})
		}
	}
	return cmds
}
