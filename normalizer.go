package shape

// This file implements the style normalizer (spec §4.1): a pure function
// from raw fill/line descriptors to the decoded FillStyle/LineStyle form,
// resolving bitmap ids through a per-shape DependencySet along the way.

// DependencySet is the mutable ordered set of bitmap ids a shape
// references, threaded through normalization as an in/out parameter (spec
// §4.1, §5). The zero value is ready to use.
type DependencySet struct {
	ids   []uint16
	index map[uint16]int
}

// NewDependencySet returns an empty dependency set.
func NewDependencySet() *DependencySet {
	return &DependencySet{index: map[uint16]int{}}
}

// resolve looks up bitmapID, appending and assigning a new index if it is
// not yet present, and returns that index (spec §4.1: "store the index, not
// the id").
func (d *DependencySet) resolve(bitmapID uint16) int {
	if d.index == nil {
		d.index = map[uint16]int{}
	}
	if i, ok := d.index[bitmapID]; ok {
		return i
	}
	i := len(d.ids)
	d.ids = append(d.ids, bitmapID)
	d.index[bitmapID] = i
	return i
}

// BitmapIDs returns the raw bitmap ids referenced by this shape, in the
// order they were first encountered. This supplements spec §4.1's
// dependency set with a read-only query a caller can use to prefetch
// bitmaps before resolving indices (SPEC_FULL.md §3).
func (d *DependencySet) BitmapIDs() []uint16 {
	out := make([]uint16, len(d.ids))
	copy(out, d.ids)
	return out
}

// normalizeFillStyle converts one raw fill descriptor. morph additionally
// normalizes the End* pairing fields into a FillStyleMorph.
func normalizeFillStyle(raw RawFillStyle, deps *DependencySet, morph bool) (FillStyle, error) {
	fs := FillStyle{Kind: raw.Kind}
	switch raw.Kind {
	case FillSolid:
		fs.Color = ColorFromBytes(raw.Color.R, raw.Color.G, raw.Color.B, raw.Color.A)
	case FillLinearGradient, FillRadialGradient, FillFocalGradient:
		fs.Matrix = bakeScale(raw.Matrix, gradientMatrixScale)
		fs.Stops = normalizeStops(raw.Stops)
		if raw.Kind == FillFocalGradient {
			fs.FocalPoint = raw.FocalPoint
		}
	case FillBitmap:
		fs.BitmapIndex = deps.resolve(raw.BitmapID)
		fs.Matrix = bakeScale(raw.Matrix, bitmapMatrixScale)
		fs.Smooth = raw.BitmapType == BitmapRepeating || raw.BitmapType == BitmapClipped
		fs.Repeat = raw.BitmapType == BitmapRepeating || raw.BitmapType == BitmapNonsmoothedRepeating
	default:
		return FillStyle{}, ErrUnsupportedFillKind
	}

	if morph {
		m := &FillStyleMorph{
			EndColor: ColorFromBytes(raw.EndColor.R, raw.EndColor.G, raw.EndColor.B, raw.EndColor.A),
		}
		switch raw.Kind {
		case FillLinearGradient, FillRadialGradient, FillFocalGradient:
			m.EndMatrix = bakeScale(raw.EndMatrix, gradientMatrixScale)
			m.EndStops = normalizeStops(raw.EndStops)
			if raw.Kind == FillFocalGradient {
				m.EndFocalPoint = raw.EndFocalPoint
			}
		case FillBitmap:
			m.EndMatrix = bakeScale(raw.EndMatrix, bitmapMatrixScale)
		}
		fs.Morph = m
	}
	return fs, nil
}

func normalizeStops(raw []RawGradientStop) []GradientStop {
	stops := make([]GradientStop, len(raw))
	for i, s := range raw {
		stops[i] = GradientStop{
			Ratio: s.Ratio,
			Color: ColorFromBytes(s.Color.R, s.Color.G, s.Color.B, s.Color.A),
		}
	}
	return stops
}

// normalizeLineStyle converts one raw line descriptor, recursively
// normalizing its nested fill when hasFill is set (spec §4.1).
func normalizeLineStyle(raw RawLineStyle, deps *DependencySet, morph bool) (LineStyle, error) {
	ls := LineStyle{
		Width:        int32(raw.Width),
		StartCap:     raw.StartCap,
		EndCap:       raw.EndCap,
		Join:         raw.Join,
		MiterLimit:   miterLimit(raw.MiterLimitFactor),
		NoHScale:     raw.NoHScale,
		NoVScale:     raw.NoVScale,
		PixelHinting: raw.PixelHinting,
	}
	if raw.HasFill {
		fill, err := normalizeFillStyle(raw.Fill, deps, morph)
		if err != nil {
			return LineStyle{}, err
		}
		ls.FillOverride = &fill
	} else {
		ls.Color = ColorFromBytes(raw.Color.R, raw.Color.G, raw.Color.B, raw.Color.A)
	}
	if morph {
		ls.Morph = &LineStyleMorph{
			EndWidth: int32(raw.EndWidth),
			EndColor: ColorFromBytes(raw.EndColor.R, raw.EndColor.G, raw.EndColor.B, raw.EndColor.A),
		}
	}
	return ls, nil
}

// normalizeStyleTable normalizes every fill and line style in raw, in
// record order.
func normalizeStyleTable(raw StyleTable, deps *DependencySet, morph bool) ([]FillStyle, []LineStyle, error) {
	fills := make([]FillStyle, len(raw.Fills))
	for i, f := range raw.Fills {
		fs, err := normalizeFillStyle(f, deps, morph)
		if err != nil {
			return nil, nil, err
		}
		fills[i] = fs
	}
	lines := make([]LineStyle, len(raw.Lines))
	for i, l := range raw.Lines {
		ls, err := normalizeLineStyle(l, deps, morph)
		if err != nil {
			return nil, nil, err
		}
		lines[i] = ls
	}
	return fills, lines, nil
}
