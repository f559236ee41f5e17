package shape

import (
	"github.com/paulmach/orb"
)

// This file implements Bounds (spec GLOSSARY "bounds", SPEC_FULL.md §2
// domain stack), mirroring the teacher's Path.Bounds in shape: a pure
// traversal over commands tracking a running min/max. It additionally
// builds an orb.Ring per fill contour so a caller can cross-check winding
// orientation against the reversed-left-fill invariant (spec §4.3,
// "segments pushed to a shape's left-fill bucket are reversed so that every
// fill contour winds consistently").

// Bounds returns the tight bounding box of every command point and control
// point across all paths in s. It is independent of DeclaredBounds, which
// is whatever the source tag happened to declare.
func (s *Shape) Bounds() Rect {
	r := Rect{}
	empty := true
	for _, p := range s.Paths {
		for _, c := range p.Commands {
			extend(&r, &empty, c.Point)
			if c.Kind == CurveTo {
				extend(&r, &empty, c.Control)
			}
		}
	}
	return r
}

// Bounds is MorphShape's analogue, covering both frames' geometry.
func (s *MorphShape) Bounds() Rect {
	r := Rect{}
	empty := true
	for _, p := range s.Paths {
		for _, c := range p.Commands {
			extend(&r, &empty, c.StartPoint)
			extend(&r, &empty, c.EndPoint)
			if c.Kind == CurveTo {
				extend(&r, &empty, c.StartControl)
				extend(&r, &empty, c.EndControl)
			}
		}
	}
	return r
}

func extend(r *Rect, empty *bool, p Point) {
	if *empty {
		r.XMin, r.XMax = p.X, p.X
		r.YMin, r.YMax = p.Y, p.Y
		*empty = false
		return
	}
	if p.X < r.XMin {
		r.XMin = p.X
	}
	if p.X > r.XMax {
		r.XMax = p.X
	}
	if p.Y < r.YMin {
		r.YMin = p.Y
	}
	if p.Y > r.YMax {
		r.YMax = p.Y
	}
}

// ring converts a fill Path's commands into an orb.Ring (closing it back to
// its first point if the contour's own last point doesn't already coincide
// with it), for winding/area queries via orb's planar helpers.
func ring(p Path) orb.Ring {
	if len(p.Commands) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(p.Commands)+1)
	for _, c := range p.Commands {
		r = append(r, orb.Point{float64(c.Point.X), float64(c.Point.Y)})
	}
	if first, last := r[0], r[len(r)-1]; first != last {
		r = append(r, first)
	}
	return r
}

// Orientation reports the winding direction of a fill path, taking the end
// points of all its commands as one ring; a path with several contours is
// not split into them, and curve control points are ignored. (Spec §4.3's
// reversed-left-fill invariant implies every right-fill contour and every
// reversed left-fill contour wind the same way; a caller comparing two
// single-contour fill paths' Orientation can detect a broken reversal.)
func (p Path) Orientation() orb.Orientation {
	r := ring(p)
	if len(r) < 4 {
		return 0
	}
	return r.Orientation()
}
