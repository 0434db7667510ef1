package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVectors() map[string]*Vector3D {
	return map[string]*Vector3D{
		"Unit":     NewVector3D(1, 0, 0),
		"Integer":  NewVector3D(1, 2, 3),
		"Negative": NewVector3D(-4, 0.5, -2.25),
		"Small":    NewVector3D(1e-3, -2e-3, 5e-4),
		"Large":    NewVector3D(1200, -3400, 560),
	}
}

func TestVector3DClone(t *testing.T) {
	v := NewVector3D(1, 2, 3)
	v2 := v.Clone()
	assert.Equal(t, *v, *v2)

	v.X = 3
	v2.Y = 4
	assert.Equal(t, Vector3D{3, 2, 3}, *v)
	assert.Equal(t, Vector3D{1, 4, 3}, *v2)

	dst := &Vector3D{}
	assert.Same(t, dst, v.CloneTo(dst))
	assert.Equal(t, Vector3D{3, 2, 3}, *dst)
}

func TestVector3DArithmetic(t *testing.T) {
	testCases := map[string]struct {
		op       func(v, a, dst *Vector3D) *Vector3D
		inPlace  func(v, a *Vector3D) *Vector3D
		expected Vector3D
	}{
		"Add": {
			op:       (*Vector3D).AddTo,
			inPlace:  (*Vector3D).Add,
			expected: Vector3D{4, 4, 4},
		},
		"Sub": {
			op:       (*Vector3D).SubTo,
			inPlace:  (*Vector3D).Sub,
			expected: Vector3D{-2, 0, 2},
		},
		"ComponentProduct": {
			op:       (*Vector3D).ComponentProductTo,
			inPlace:  (*Vector3D).ComponentProduct,
			expected: Vector3D{3, 4, 3},
		},
		"Cross": {
			op:       (*Vector3D).CrossTo,
			inPlace:  (*Vector3D).Cross,
			expected: Vector3D{-4, 8, -4},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := NewVector3D(1, 2, 3)
			a := NewVector3D(3, 2, 1)
			dst := &Vector3D{}
			assert.Same(t, dst, tt.op(v, a, dst))
			assert.Equal(t, tt.expected, *dst)
			assert.Equal(t, Vector3D{1, 2, 3}, *v, "receiver must not change")
			assert.Equal(t, Vector3D{3, 2, 1}, *a, "operand must not change")

			assert.Same(t, v, tt.inPlace(v, a))
			assert.Equal(t, tt.expected, *v)

			v.Set(1, 2, 3)
			assert.Same(t, a, tt.op(v, a, a))
			assert.Equal(t, tt.expected, *a, "destination aliasing the operand")
		})
	}
}

func TestVector3DScale(t *testing.T) {
	v := NewVector3D(1, -2, 3)
	dst := v.ScaleTo(2, &Vector3D{})
	assert.Equal(t, Vector3D{2, -4, 6}, *dst)
	assert.Equal(t, Vector3D{1, -2, 3}, *v)

	v.Scale(-0.5)
	assert.Equal(t, Vector3D{-0.5, 1, -1.5}, *v)
}

func TestVector3DMagnitude(t *testing.T) {
	v := NewVector3D(1, 2, 3)
	assert.Equal(t, 14.0, v.SquaredMagnitude())
	assert.InDelta(t, 3.7416573867739413, v.Magnitude(), 1e-15)
	assert.Equal(t, v.Magnitude(), v.Length())
}

func TestVector3DProperties(t *testing.T) {
	vectors := testVectors()
	for name, v := range vectors {
		v := v
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, v.SquaredMagnitude(), v.Clone().Dot(v))
			assert.InDelta(t, 1, v.Clone().Normalize().Magnitude(), 1e-12)

			for _, w := range vectors {
				vw := v.CrossTo(w, &Vector3D{})
				wv := w.CrossTo(v, &Vector3D{})
				assert.Equal(t, vw.X, -wv.X)
				assert.Equal(t, vw.Y, -wv.Y)
				assert.Equal(t, vw.Z, -wv.Z)
			}
		})
	}
}

func TestVector3DNormalize(t *testing.T) {
	testCases := map[string]struct {
		in       Vector3D
		expected Vector3D
	}{
		"Zero":     {Vector3D{}, Vector3D{}},
		"Unit":     {Vector3D{0, 0, 1}, Vector3D{0, 0, 1}},
		"Diagonal": {Vector3D{0, 3, 4}, Vector3D{0, 0.6, 0.8}},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := tt.in
			dst := &Vector3D{X: 9, Y: 9, Z: 9}
			v.NormalizeTo(dst)
			assert.InDelta(t, tt.expected.X, dst.X, 1e-15)
			assert.InDelta(t, tt.expected.Y, dst.Y, 1e-15)
			assert.InDelta(t, tt.expected.Z, dst.Z, 1e-15)
			assert.Equal(t, tt.in, v)

			v.Normalize()
			assert.Equal(t, *dst, v)
		})
	}
}

func TestVector3DZeroNormalizeIsExact(t *testing.T) {
	v := &Vector3D{}
	v.Normalize()
	assert.Equal(t, Vector3D{0, 0, 0}, *v)
}

func TestVector3DZero(t *testing.T) {
	v := NewVector3D(1, 2, 3)
	assert.Same(t, v, v.Zero())
	assert.Equal(t, Vector3D{}, *v)
}

func TestAxisVectors(t *testing.T) {
	testCases := map[string]struct {
		axis     func() *Vector3D
		expected Vector3D
	}{
		"Right": {Right, Vector3D{1, 0, 0}},
		"Up":    {Up, Vector3D{0, 1, 0}},
		"Left":  {Left, Vector3D{-1, 0, 0}},
		"Down":  {Down, Vector3D{0, -1, 0}},
		"ZAxis": {ZAxis, Vector3D{0, 0, 1}},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			a := tt.axis()
			assert.Equal(t, tt.expected, *a)
			a.Scale(5)
			assert.Equal(t, tt.expected, *tt.axis(), "axis must not be shared")
		})
	}
}

func TestVector3DString(t *testing.T) {
	assert.Equal(t, "(1, -2.5, 3)", NewVector3D(1, -2.5, 3).String())
}
