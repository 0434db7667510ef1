package mat

import (
	"fmt"
	"math"
)

type Vector3D struct {
	X, Y, Z float64
}

func NewVector3D(x, y, z float64) *Vector3D {
	return &Vector3D{X: x, Y: y, Z: z}
}

// Right, Up, Left, Down and ZAxis return a fresh axis vector on every call,
// so callers may mutate the result freely.
func Right() *Vector3D { return &Vector3D{X: 1} }
func Up() *Vector3D    { return &Vector3D{Y: 1} }
func Left() *Vector3D  { return &Vector3D{X: -1} }
func Down() *Vector3D  { return &Vector3D{Y: -1} }
func ZAxis() *Vector3D { return &Vector3D{Z: 1} }

func (v *Vector3D) Set(x, y, z float64) *Vector3D {
	v.X, v.Y, v.Z = x, y, z
	return v
}

func (v *Vector3D) Clone() *Vector3D {
	return v.CloneTo(&Vector3D{})
}

func (v *Vector3D) CloneTo(dst *Vector3D) *Vector3D {
	dst.X, dst.Y, dst.Z = v.X, v.Y, v.Z
	return dst
}

func (v *Vector3D) Add(a *Vector3D) *Vector3D {
	return v.AddTo(a, v)
}

func (v *Vector3D) AddTo(a, dst *Vector3D) *Vector3D {
	dst.X = v.X + a.X
	dst.Y = v.Y + a.Y
	dst.Z = v.Z + a.Z
	return dst
}

func (v *Vector3D) Sub(a *Vector3D) *Vector3D {
	return v.SubTo(a, v)
}

func (v *Vector3D) SubTo(a, dst *Vector3D) *Vector3D {
	dst.X = v.X - a.X
	dst.Y = v.Y - a.Y
	dst.Z = v.Z - a.Z
	return dst
}

func (v *Vector3D) Scale(s float64) *Vector3D {
	return v.ScaleTo(s, v)
}

func (v *Vector3D) ScaleTo(s float64, dst *Vector3D) *Vector3D {
	dst.X = v.X * s
	dst.Y = v.Y * s
	dst.Z = v.Z * s
	return dst
}

func (v *Vector3D) ComponentProduct(a *Vector3D) *Vector3D {
	return v.ComponentProductTo(a, v)
}

func (v *Vector3D) ComponentProductTo(a, dst *Vector3D) *Vector3D {
	dst.X = v.X * a.X
	dst.Y = v.Y * a.Y
	dst.Z = v.Z * a.Z
	return dst
}

func (v *Vector3D) Cross(a *Vector3D) *Vector3D {
	return v.CrossTo(a, v)
}

func (v *Vector3D) CrossTo(a, dst *Vector3D) *Vector3D {
	x := v.Y*a.Z - v.Z*a.Y
	y := v.Z*a.X - v.X*a.Z
	dst.Z = v.X*a.Y - v.Y*a.X
	dst.X = x
	dst.Y = y
	return dst
}

func (v *Vector3D) Dot(a *Vector3D) float64 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z
}

func (v *Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v *Vector3D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v *Vector3D) SquaredMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v *Vector3D) Normalize() *Vector3D {
	return v.NormalizeTo(v)
}

// NormalizeTo stores the unit vector of v into dst.
// A zero vector yields (0, 0, 0) and a vector whose magnitude is exactly 1
// is copied as is.
func (v *Vector3D) NormalizeTo(dst *Vector3D) *Vector3D {
	mag := v.Magnitude()
	switch mag {
	case 0:
		return dst.Set(0, 0, 0)
	case 1:
		return dst.Set(v.X, v.Y, v.Z)
	}
	inv := 1 / mag
	dst.X = v.X * inv
	dst.Y = v.Y * inv
	dst.Z = v.Z * inv
	return dst
}

func (v *Vector3D) Zero() *Vector3D {
	v.X, v.Y, v.Z = 0, 0, 0
	return v
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
