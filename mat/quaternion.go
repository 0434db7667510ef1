package mat

import (
	"fmt"
	"math"
)

// Quaternion is R + I·i + J·j + K·k.
// Arithmetic never renormalizes; call Normalize before treating the
// result as an orientation.
type Quaternion struct {
	R, I, J, K float64
}

func NewQuaternion(r, i, j, k float64) *Quaternion {
	return &Quaternion{R: r, I: i, J: j, K: k}
}

func IdentityQuaternion() *Quaternion {
	return &Quaternion{R: 1}
}

func (q *Quaternion) MakeIdentity() *Quaternion {
	q.R, q.I, q.J, q.K = 1, 0, 0, 0
	return q
}

func (q *Quaternion) Set(r, i, j, k float64) *Quaternion {
	q.R, q.I, q.J, q.K = r, i, j, k
	return q
}

func (q *Quaternion) Clone() *Quaternion {
	return q.CloneTo(&Quaternion{})
}

func (q *Quaternion) CloneTo(dst *Quaternion) *Quaternion {
	*dst = *q
	return dst
}

// Normalize scales q to unit length in place.
// A zero quaternion only gets R set to 1.
func (q *Quaternion) Normalize() *Quaternion {
	l := q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K
	if l == 0 {
		q.R = 1
		return q
	}
	l = 1 / math.Sqrt(l)
	q.R *= l
	q.I *= l
	q.J *= l
	q.K *= l
	return q
}

func (q *Quaternion) Multiply(a *Quaternion) *Quaternion {
	return q.MultiplyTo(a, q)
}

// MultiplyTo stores the Hamilton product q ⊗ a into dst.
func (q *Quaternion) MultiplyTo(a, dst *Quaternion) *Quaternion {
	r := q.R*a.R - q.I*a.I - q.J*a.J - q.K*a.K
	i := q.R*a.I + q.I*a.R + q.J*a.K - q.K*a.J
	j := q.R*a.J + q.J*a.R + q.K*a.I - q.I*a.K
	dst.K = q.R*a.K + q.K*a.R + q.I*a.J - q.J*a.I
	dst.R = r
	dst.I = i
	dst.J = j
	return dst
}

func (q *Quaternion) RotateByVector(v *Vector3D) *Quaternion {
	return q.RotateByVectorTo(v, q)
}

func (q *Quaternion) RotateByVectorTo(v *Vector3D, dst *Quaternion) *Quaternion {
	r := -q.I*v.X - q.J*v.Y - q.K*v.Z
	i := q.R*v.X + q.J*v.Z - q.K*v.Y
	j := q.R*v.Y + q.K*v.X - q.I*v.Z
	dst.K = q.R*v.Z + q.I*v.Y - q.J*v.X
	dst.R = r
	dst.I = i
	dst.J = j
	return dst
}

func (q *Quaternion) AddVector(v *Vector3D) *Quaternion {
	return q.AddVectorTo(v, q)
}

// AddVectorTo stores q + ½·((0, v) ⊗ q) into dst: one explicit Euler step
// of q̇ = ½·ω⊗q for ω·dt = v. The result drifts off unit length.
func (q *Quaternion) AddVectorTo(v *Vector3D, dst *Quaternion) *Quaternion {
	r := -v.X*q.I - v.Y*q.J - v.Z*q.K
	i := v.X*q.R + v.Y*q.K - v.Z*q.J
	j := v.Y*q.R + v.Z*q.I - v.X*q.K
	k := v.Z*q.R + v.X*q.J - v.Y*q.I
	dst.R = q.R + r*0.5
	dst.I = q.I + i*0.5
	dst.J = q.J + j*0.5
	dst.K = q.K + k*0.5
	return dst
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.R, q.I, q.J, q.K)
}
