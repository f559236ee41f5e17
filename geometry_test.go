package shape

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestColorFromBytes(t *testing.T) {
	c := ColorFromBytes(255, 128, 0, 255)
	test.T(t, c.R, 1.0)
	test.Float(t, c.G, 128.0/255.0)
	test.T(t, c.B, 0.0)
	test.T(t, c.A, 1.0)
}

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0, A: 0}
	b := Color{R: 1, G: 1, B: 1, A: 1}
	test.T(t, a.Lerp(b, 0), a)
	test.T(t, a.Lerp(b, 1), b)
	test.T(t, a.Lerp(b, 0.5), Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5})
}

func TestBakeScaleGradient(t *testing.T) {
	raw := Matrix{A: 1, B: 0, C: 0, D: 1, Tx: 20, Ty: 40}
	m := bakeScale(raw, gradientMatrixScale)
	test.T(t, m.A, gradientMatrixScale)
	test.T(t, m.D, gradientMatrixScale)
	test.T(t, m.Tx, 1.0)
	test.T(t, m.Ty, 2.0)
}

func TestBakeScaleBitmap(t *testing.T) {
	raw := Matrix{A: 2, D: 2, Tx: 20}
	m := bakeScale(raw, bitmapMatrixScale)
	test.T(t, m.A, 0.1)
	test.T(t, m.Tx, 1.0)
}

func TestMatrixApplyIdentity(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	test.T(t, IdentityMatrix.Apply(v), v)
}

func TestRectEmpty(t *testing.T) {
	test.T(t, Rect{}.Empty(), true)
	test.T(t, Rect{XMax: 1}.Empty(), false)
}
