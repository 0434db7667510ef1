package mat

import (
	"fmt"
	"math"
)

// Matrix4D is a 4x4 homogeneous transform stored column-major: column c,
// row r is Data[c*4+r]. The translation lives in Data[12:15].
type Matrix4D struct {
	Data    [16]float64
	backing Backing
}

func NewMatrix4D() *Matrix4D {
	return DefaultConfig().NewMatrix4D()
}

func (m *Matrix4D) Backing() Backing {
	return m.backing
}

func (m *Matrix4D) commit() *Matrix4D {
	if m.backing == F32Array {
		for i, v := range m.Data {
			m.Data[i] = m.backing.fit(v)
		}
	}
	return m
}

func (m *Matrix4D) Clone() *Matrix4D {
	return m.CloneTo(&Matrix4D{backing: m.backing})
}

func (m *Matrix4D) CloneTo(dst *Matrix4D) *Matrix4D {
	dst.Data = m.Data
	return dst.commit()
}

func (m *Matrix4D) Set(data [16]float64) *Matrix4D {
	m.Data = data
	return m.commit()
}

func (m *Matrix4D) SetDiagonal(a00, a11, a22, a33 float64) *Matrix4D {
	m.Data[0] = a00
	m.Data[5] = a11
	m.Data[10] = a22
	m.Data[15] = a33
	return m.commit()
}

func (m *Matrix4D) MakeIdentity() *Matrix4D {
	m.Data = [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return m
}

func (m *Matrix4D) Transpose() *Matrix4D {
	return m.TransposeTo(m)
}

func (m *Matrix4D) TransposeTo(dst *Matrix4D) *Matrix4D {
	d := m.Data
	dst.Data = [16]float64{
		d[0], d[4], d[8], d[12],
		d[1], d[5], d[9], d[13],
		d[2], d[6], d[10], d[14],
		d[3], d[7], d[11], d[15],
	}
	return dst.commit()
}

func (m *Matrix4D) Add(a *Matrix4D) *Matrix4D {
	return m.AddTo(a, m)
}

func (m *Matrix4D) AddTo(a, dst *Matrix4D) *Matrix4D {
	for i := range m.Data {
		dst.Data[i] = m.Data[i] + a.Data[i]
	}
	return dst.commit()
}

func (m *Matrix4D) MultiplyScalar(s float64) *Matrix4D {
	return m.MultiplyScalarTo(s, m)
}

func (m *Matrix4D) MultiplyScalarTo(s float64, dst *Matrix4D) *Matrix4D {
	for i := range m.Data {
		dst.Data[i] = s * m.Data[i]
	}
	return dst.commit()
}

func (m *Matrix4D) Multiply(a *Matrix4D) *Matrix4D {
	return m.MultiplyTo(a, m)
}

func (m *Matrix4D) MultiplyTo(a, dst *Matrix4D) *Matrix4D {
	var out [16]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.Data[4*k+i] * a.Data[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	dst.Data = out
	return dst.commit()
}

// AxisVector returns the upper three elements of column index.
// Index 3 gives the translation. Valid indices are 0 to 3; slots outside
// Data read as NaN.
func (m *Matrix4D) AxisVector(index int) *Vector3D {
	return m.AxisVectorTo(index, &Vector3D{})
}

func (m *Matrix4D) AxisVectorTo(index int, dst *Vector3D) *Vector3D {
	return dst.Set(m.at(index*4), m.at(index*4+1), m.at(index*4+2))
}

func (m *Matrix4D) at(i int) float64 {
	if i < 0 || i >= len(m.Data) {
		return math.NaN()
	}
	return m.Data[i]
}

func (m *Matrix4D) TransformVector(v *Vector3D) *Vector3D {
	return m.TransformVectorTo(v, v)
}

func (m *Matrix4D) TransformVectorTo(v, dst *Vector3D) *Vector3D {
	d := &m.Data
	x := v.X*d[0] + v.Y*d[4] + v.Z*d[8] + d[12]
	y := v.X*d[1] + v.Y*d[5] + v.Z*d[9] + d[13]
	dst.Z = v.X*d[2] + v.Y*d[6] + v.Z*d[10] + d[14]
	dst.X = x
	dst.Y = y
	return dst
}

// TransformInverseVector stores m⁻¹ · (v, 1) into v.
// m must be a rigid transform: the rotation block is inverted by
// transposing it, so any scale or shear gives wrong results.
func (m *Matrix4D) TransformInverseVector(v *Vector3D) *Vector3D {
	return m.TransformInverseVectorTo(v, v)
}

func (m *Matrix4D) TransformInverseVectorTo(v, dst *Vector3D) *Vector3D {
	d := &m.Data
	x := v.X - d[12]
	y := v.Y - d[13]
	z := v.Z - d[14]
	dst.X = x*d[0] + y*d[1] + z*d[2]
	dst.Y = x*d[4] + y*d[5] + z*d[6]
	dst.Z = x*d[8] + y*d[9] + z*d[10]
	return dst
}

// TransformInertiaTensor stores R · t · Rᵗ into t, R being the upper-left
// 3x3 block of m. This moves an inertia tensor between frames.
func (m *Matrix4D) TransformInertiaTensor(t *Matrix3D) *Matrix3D {
	return m.TransformInertiaTensorTo(t, t)
}

func (m *Matrix4D) TransformInertiaTensorTo(t, dst *Matrix3D) *Matrix3D {
	var r [9]float64
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			r[3*c+row] = m.Data[4*c+row]
		}
	}

	// rt = R · t
	var rt [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += r[3*k+i] * t.Data[3*j+k]
			}
			rt[3*j+i] = sum
		}
	}

	// out = rt · Rᵗ, where Rᵗ[k][j] = R[j][k] = r[3*k+j]
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += rt[3*k+i] * r[3*k+j]
			}
			out[3*j+i] = sum
		}
	}
	dst.Data = out
	return dst.commit()
}

func (m Matrix4D) String() string {
	d := m.Data
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		d[0], d[4], d[8], d[12],
		d[1], d[5], d[9], d[13],
		d[2], d[6], d[10], d[14],
		d[3], d[7], d[11], d[15],
	)
}
