package mat

import (
	"github.com/go-gl/mathgl/mgl64"
)

func (v *Vector3D) MglVec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vector3DFromMglVec3(a mgl64.Vec3) *Vector3D {
	return NewVector3D(a[0], a[1], a[2])
}

func (q *Quaternion) Quat() mgl64.Quat {
	return mgl64.Quat{W: q.R, V: mgl64.Vec3{q.I, q.J, q.K}}
}

func QuaternionFromQuat(a mgl64.Quat) *Quaternion {
	return NewQuaternion(a.W, a.V[0], a.V[1], a.V[2])
}

func (m *Matrix3D) Mat3() mgl64.Mat3 {
	return mgl64.Mat3(m.Data)
}

func (c Config) Matrix3DFromMat3(a mgl64.Mat3) *Matrix3D {
	m := &Matrix3D{backing: c.Backing}
	return m.Set([9]float64(a))
}
