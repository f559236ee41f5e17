package shape

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestDependencySetResolve(t *testing.T) {
	d := NewDependencySet()
	i1 := d.resolve(42)
	i2 := d.resolve(7)
	i3 := d.resolve(42) // repeat
	test.T(t, i1, 0)
	test.T(t, i2, 1)
	test.T(t, i3, 0)
	test.T(t, d.BitmapIDs(), []uint16{42, 7})
}

func TestNormalizeFillStyleSolid(t *testing.T) {
	raw := RawFillStyle{Kind: FillSolid, Color: RawColor{R: 255, G: 0, B: 0, A: 255}}
	fs, err := normalizeFillStyle(raw, NewDependencySet(), false)
	test.Error(t, err)
	test.T(t, fs.Kind, FillSolid)
	test.T(t, fs.Color, ColorFromBytes(255, 0, 0, 255))
	test.T(t, fs.Morph == nil, true)
}

func TestNormalizeFillStyleBitmap(t *testing.T) {
	deps := NewDependencySet()
	raw := RawFillStyle{
		Kind:       FillBitmap,
		BitmapID:   9,
		BitmapType: BitmapRepeating,
		Matrix:     Matrix{A: 1, D: 1},
	}
	fs, err := normalizeFillStyle(raw, deps, false)
	test.Error(t, err)
	test.T(t, fs.BitmapIndex, 0)
	test.T(t, fs.Repeat, true)
	test.T(t, fs.Smooth, true)
	test.T(t, fs.Matrix.A, bitmapMatrixScale)
	test.T(t, deps.BitmapIDs(), []uint16{9})
}

func TestNormalizeFillStyleMorph(t *testing.T) {
	raw := RawFillStyle{
		Kind:     FillSolid,
		Color:    RawColor{R: 255},
		EndColor: RawColor{G: 255},
	}
	fs, err := normalizeFillStyle(raw, NewDependencySet(), true)
	test.Error(t, err)
	if fs.Morph == nil {
		t.Fatal("expected a non-nil Morph field")
	}
	test.T(t, fs.Morph.EndColor, ColorFromBytes(0, 255, 0, 0))
}

func TestNormalizeFillStyleUnsupported(t *testing.T) {
	_, err := normalizeFillStyle(RawFillStyle{Kind: FillKind(99)}, NewDependencySet(), false)
	if err != ErrUnsupportedFillKind {
		t.Fatalf("expected ErrUnsupportedFillKind, got %v", err)
	}
}

func TestNormalizeLineStyleNestedFill(t *testing.T) {
	raw := RawLineStyle{
		Width:   20,
		HasFill: true,
		Fill:    RawFillStyle{Kind: FillSolid, Color: RawColor{B: 255, A: 255}},
	}
	ls, err := normalizeLineStyle(raw, NewDependencySet(), false)
	test.Error(t, err)
	if ls.FillOverride == nil {
		t.Fatal("expected FillOverride to be set")
	}
	test.T(t, ls.FillOverride.Color, ColorFromBytes(0, 0, 255, 255))
}
