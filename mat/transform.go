package mat

import (
	"math"
)

func (m *Matrix4D) MakeTranslation(x, y, z float64) *Matrix4D {
	m.MakeIdentity()
	m.Data[12] = x
	m.Data[13] = y
	m.Data[14] = z
	return m.commit()
}

// Translate applies a translation by (x, y, z) in the local frame of m:
// the 3x4 block is kept and the last column becomes m · (x, y, z, 1).
func (m *Matrix4D) Translate(x, y, z float64) *Matrix4D {
	return m.TranslateTo(x, y, z, m)
}

func (m *Matrix4D) TranslateTo(x, y, z float64, dst *Matrix4D) *Matrix4D {
	d := m.Data
	copy(dst.Data[:12], d[:12])
	dst.Data[12] = d[0]*x + d[4]*y + d[8]*z + d[12]
	dst.Data[13] = d[1]*x + d[5]*y + d[9]*z + d[13]
	dst.Data[14] = d[2]*x + d[6]*y + d[10]*z + d[14]
	dst.Data[15] = d[3]*x + d[7]*y + d[11]*z + d[15]
	return dst.commit()
}

func (m *Matrix4D) MakeScale(x, y, z float64) *Matrix4D {
	m.MakeIdentity()
	m.Data[0] = x
	m.Data[5] = y
	m.Data[10] = z
	return m.commit()
}

// Scale multiplies columns 0, 1 and 2 by x, y and z.
func (m *Matrix4D) Scale(x, y, z float64) *Matrix4D {
	return m.ScaleTo(x, y, z, m)
}

func (m *Matrix4D) ScaleTo(x, y, z float64, dst *Matrix4D) *Matrix4D {
	s := [4]float64{x, y, z, 1}
	for i := range m.Data {
		dst.Data[i] = m.Data[i] * s[i/4]
	}
	return dst.commit()
}

// MakeRotation makes m a rotation of radians around axis.
// Note that axis is normalized in place. A zero axis leaves m the identity.
func (m *Matrix4D) MakeRotation(axis *Vector3D, radians float64) *Matrix4D {
	m.MakeIdentity()
	if !(axis.Magnitude() > 0) {
		return m
	}
	axis.Normalize()

	c := math.Cos(radians)
	s := math.Sin(radians)
	k := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	m.Data[0] = k*(x*x) + c
	m.Data[1] = k*(x*y) + z*s
	m.Data[2] = k*(z*x) - y*s
	m.Data[4] = k*(x*y) - z*s
	m.Data[5] = k*(y*y) + c
	m.Data[6] = k*(z*y) + x*s
	m.Data[8] = k*(z*x) + y*s
	m.Data[9] = k*(y*z) - x*s
	m.Data[10] = k*(z*z) + c
	return m.commit()
}

func (m *Matrix4D) setOrientation(q *Quaternion) {
	m.Data[0] = 1 - (2*q.J*q.J + 2*q.K*q.K)
	m.Data[1] = 2*q.I*q.J - 2*q.K*q.R
	m.Data[2] = 2*q.I*q.K + 2*q.J*q.R
	m.Data[3] = 0
	m.Data[4] = 2*q.I*q.J + 2*q.K*q.R
	m.Data[5] = 1 - (2*q.I*q.I + 2*q.K*q.K)
	m.Data[6] = 2*q.J*q.K - 2*q.I*q.R
	m.Data[7] = 0
	m.Data[8] = 2*q.I*q.K - 2*q.J*q.R
	m.Data[9] = 2*q.J*q.K + 2*q.I*q.R
	m.Data[10] = 1 - (2*q.I*q.I + 2*q.J*q.J)
	m.Data[11] = 0
}

// MakeFromQuaternion writes the rotation of q, which must already be unit
// length.
func (m *Matrix4D) MakeFromQuaternion(q *Quaternion) *Matrix4D {
	m.setOrientation(q)
	m.Data[12], m.Data[13], m.Data[14] = 0, 0, 0
	m.Data[15] = 1
	return m.commit()
}

func (m *Matrix4D) MakeFromPositionAndOrientation(p *Vector3D, q *Quaternion) *Matrix4D {
	m.setOrientation(q)
	m.Data[12], m.Data[13], m.Data[14] = p.X, p.Y, p.Z
	m.Data[15] = 1
	return m.commit()
}
