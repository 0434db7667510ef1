package mat

import (
	"math"
)

// MakeFrustum makes m an off-center perspective projection mapping the
// view volume to clip space, with w = -z.
func (m *Matrix4D) MakeFrustum(left, right, bottom, top, near, far float64) *Matrix4D {
	m.MakeIdentity()
	dx := right - left
	dy := top - bottom
	dz := far - near
	n2 := 2 * near

	m.Data[0] = n2 / dx
	m.Data[5] = n2 / dy
	m.Data[8] = (right + left) / dx
	m.Data[9] = (top + bottom) / dy
	m.Data[10] = -(far + near) / dz
	m.Data[11] = -1
	m.Data[14] = -n2 * far / dz
	m.Data[15] = 0
	return m.commit()
}

// MakePerspective makes a symmetric frustum whose horizontal half extent
// at near is near·tan(fov/(180π)/2); the vertical one is that divided by
// aspect. Note fov is neither degrees nor radians: 90π² gives a 90 degree
// field of view.
func (m *Matrix4D) MakePerspective(fov, near, far, aspect float64) *Matrix4D {
	size := near * math.Tan(fov/(180*math.Pi)/2)
	return m.MakeFrustum(-size, size, -size/aspect, size/aspect, near, far)
}
