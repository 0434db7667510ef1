package mat

import (
	"fmt"
	"math"
)

// Matrix3D is a 3x3 matrix stored column-major: column c, row r is
// Data[c*3+r].
type Matrix3D struct {
	Data    [9]float64
	backing Backing
}

func NewMatrix3D() *Matrix3D {
	return DefaultConfig().NewMatrix3D()
}

func (m *Matrix3D) Backing() Backing {
	return m.backing
}

func (m *Matrix3D) commit() *Matrix3D {
	if m.backing == F32Array {
		for i, v := range m.Data {
			m.Data[i] = m.backing.fit(v)
		}
	}
	return m
}

func (m *Matrix3D) Clone() *Matrix3D {
	return m.CloneTo(&Matrix3D{backing: m.backing})
}

func (m *Matrix3D) CloneTo(dst *Matrix3D) *Matrix3D {
	dst.Data = m.Data
	return dst.commit()
}

func (m *Matrix3D) Set(data [9]float64) *Matrix3D {
	m.Data = data
	return m.commit()
}

func (m *Matrix3D) SetDiagonal(a00, a11, a22 float64) *Matrix3D {
	m.Data[0] = a00
	m.Data[4] = a11
	m.Data[8] = a22
	return m.commit()
}

// MakeFromVectors uses v1, v2 and v3 as columns.
func (m *Matrix3D) MakeFromVectors(v1, v2, v3 *Vector3D) *Matrix3D {
	m.Data = [9]float64{
		v1.X, v1.Y, v1.Z,
		v2.X, v2.Y, v2.Z,
		v3.X, v3.Y, v3.Z,
	}
	return m.commit()
}

// MakeSkewSymmetric makes m the matrix of x -> v × x.
func (m *Matrix3D) MakeSkewSymmetric(v *Vector3D) *Matrix3D {
	m.Data = [9]float64{
		0, v.Z, -v.Y,
		-v.Z, 0, v.X,
		v.Y, -v.X, 0,
	}
	return m.commit()
}

func (m *Matrix3D) MakeIdentity() *Matrix3D {
	m.Data = [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	return m
}

func (m *Matrix3D) Transpose() *Matrix3D {
	return m.TransposeTo(m)
}

func (m *Matrix3D) TransposeTo(dst *Matrix3D) *Matrix3D {
	d := m.Data
	dst.Data = [9]float64{
		d[0], d[3], d[6],
		d[1], d[4], d[7],
		d[2], d[5], d[8],
	}
	return dst.commit()
}

func (m *Matrix3D) Determinant() float64 {
	d := &m.Data
	t1 := d[0] * d[4]
	t2 := d[0] * d[7]
	t3 := d[3] * d[1]
	t4 := d[6] * d[1]
	t5 := d[3] * d[2]
	t6 := d[6] * d[2]
	return t1*d[8] - t2*d[5] - t3*d[8] + t4*d[5] + t5*d[7] - t6*d[4]
}

func (m *Matrix3D) Inverse() *Matrix3D {
	return m.InverseTo(m)
}

// InverseTo stores the inverse of m into dst.
// A singular matrix (determinant exactly 0) is copied to dst unchanged;
// callers that care must check Determinant themselves.
func (m *Matrix3D) InverseTo(dst *Matrix3D) *Matrix3D {
	det := m.Determinant()
	if det == 0 {
		return m.CloneTo(dst)
	}

	d := m.Data
	inv := 1 / det
	dst.Data = [9]float64{
		(d[4]*d[8] - d[7]*d[5]) * inv,
		-(d[1]*d[8] - d[7]*d[2]) * inv,
		(d[1]*d[5] - d[4]*d[2]) * inv,
		-(d[3]*d[8] - d[6]*d[5]) * inv,
		(d[0]*d[8] - d[6]*d[2]) * inv,
		-(d[0]*d[5] - d[3]*d[2]) * inv,
		(d[3]*d[7] - d[6]*d[4]) * inv,
		-(d[0]*d[7] - d[6]*d[1]) * inv,
		(d[0]*d[4] - d[3]*d[1]) * inv,
	}
	return dst.commit()
}

func (m *Matrix3D) Add(a *Matrix3D) *Matrix3D {
	return m.AddTo(a, m)
}

func (m *Matrix3D) AddTo(a, dst *Matrix3D) *Matrix3D {
	for i := range m.Data {
		dst.Data[i] = m.Data[i] + a.Data[i]
	}
	return dst.commit()
}

func (m *Matrix3D) Scale(s float64) *Matrix3D {
	return m.ScaleTo(s, m)
}

func (m *Matrix3D) ScaleTo(s float64, dst *Matrix3D) *Matrix3D {
	for i := range m.Data {
		dst.Data[i] = s * m.Data[i]
	}
	return dst.commit()
}

func (m *Matrix3D) Multiply(a *Matrix3D) *Matrix3D {
	return m.MultiplyTo(a, m)
}

func (m *Matrix3D) MultiplyTo(a, dst *Matrix3D) *Matrix3D {
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m.Data[3*k+i] * a.Data[3*j+k]
			}
			out[3*j+i] = sum
		}
	}
	dst.Data = out
	return dst.commit()
}

func (m *Matrix3D) TransformVector(v *Vector3D) *Vector3D {
	return m.TransformVectorTo(v, v)
}

func (m *Matrix3D) TransformVectorTo(v, dst *Vector3D) *Vector3D {
	d := &m.Data
	x := v.X*d[0] + v.Y*d[3] + v.Z*d[6]
	y := v.X*d[1] + v.Y*d[4] + v.Z*d[7]
	dst.Z = v.X*d[2] + v.Y*d[5] + v.Z*d[8]
	dst.X = x
	dst.Y = y
	return dst
}

func (m *Matrix3D) TransformTransposeVector(v *Vector3D) *Vector3D {
	return m.TransformTransposeVectorTo(v, v)
}

func (m *Matrix3D) TransformTransposeVectorTo(v, dst *Vector3D) *Vector3D {
	d := &m.Data
	x := v.X*d[0] + v.Y*d[1] + v.Z*d[2]
	y := v.X*d[3] + v.Y*d[4] + v.Z*d[5]
	dst.Z = v.X*d[6] + v.Y*d[7] + v.Z*d[8]
	dst.X = x
	dst.Y = y
	return dst
}

// Row returns Data[index], Data[index+1] and Data[index+2] as a new vector.
// Storage is column-major, so index 0, 3 and 6 address columns.
// Valid indices are 0 to 6; slots outside Data read as NaN.
func (m *Matrix3D) Row(index int) *Vector3D {
	return m.RowTo(index, &Vector3D{})
}

func (m *Matrix3D) RowTo(index int, dst *Vector3D) *Vector3D {
	return dst.Set(m.at(index), m.at(index+1), m.at(index+2))
}

func (m *Matrix3D) at(i int) float64 {
	if i < 0 || i >= len(m.Data) {
		return math.NaN()
	}
	return m.Data[i]
}

func (m Matrix3D) String() string {
	d := m.Data
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		d[0], d[3], d[6],
		d[1], d[4], d[7],
		d[2], d[5], d[8],
	)
}
