package mat

// MakeLookAt makes m a view matrix for a camera at eye looking at center.
// The camera looks down its -z axis. If eye and center coincide m becomes
// the identity.
func (m *Matrix4D) MakeLookAt(eye, center, up *Vector3D) *Matrix4D {
	if *eye == *center {
		return m.MakeIdentity()
	}

	var x, y, z Vector3D
	eye.SubTo(center, &z).Normalize()
	up.CrossTo(&z, &x).Normalize()
	z.CrossTo(&x, &y)

	m.Data = [16]float64{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
	return m.commit()
}
