package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
)

// Vec3 converts v to the float32 point type used by pcgol point clouds.
func (v *Vector3D) Vec3() pcmat.Vec3 {
	return pcmat.NewVec3(float32(v.X), float32(v.Y), float32(v.Z))
}

func Vector3DFromVec3(p pcmat.Vec3) *Vector3D {
	return NewVector3D(float64(p[0]), float64(p[1]), float64(p[2]))
}

// Mat4 converts m to pcgol's matrix type. Both are column-major, so the
// elements map one to one.
func (m *Matrix4D) Mat4() pcmat.Mat4 {
	var out pcmat.Mat4
	for i, v := range m.Data {
		out[i] = float32(v)
	}
	return out
}

func (c Config) Matrix4DFromMat4(a pcmat.Mat4) *Matrix4D {
	m := &Matrix4D{backing: c.Backing}
	for i, v := range a {
		m.Data[i] = float64(v)
	}
	return m
}
