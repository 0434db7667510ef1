package mat

func (m *Matrix4D) MakeOrthographic(left, right, bottom, top, near, far float64) *Matrix4D {
	rl := right - left
	tb := top - bottom
	fn := far - near
	m.Data = [16]float64{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(left + right) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
	return m.commit()
}
