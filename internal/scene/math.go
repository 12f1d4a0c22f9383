package scene

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lerp linearly interpolates between two positions. t is not clamped;
// values outside [0,1] extrapolate.
func Lerp(a, b Vec3, t float64) Vec3 {
	v := r3.Add(r3.Scale(1-t, r3.Vec{X: a.X, Y: a.Y, Z: a.Z}), r3.Scale(t, r3.Vec{X: b.X, Y: b.Y, Z: b.Z}))
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Slerp spherically interpolates between two orientations along the
// shortest arc. The endpoints are returned exactly at t=0 and t=1; t is
// otherwise not clamped, so values outside [0,1] extrapolate.
func Slerp(a, b Quat, t float64) Quat {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	qa := quat.Number{Real: a.W, Imag: a.X, Jmag: a.Y, Kmag: a.Z}
	qb := quat.Number{Real: b.W, Imag: b.X, Jmag: b.Y, Kmag: b.Z}

	// Negating one endpoint keeps the interpolation on the shorter arc.
	if dot(qa, qb) < 0 {
		qb = quat.Scale(-1, qb)
	}

	q := quat.Mul(qa, quat.PowReal(quat.Mul(quat.Inv(qa), qb), t))
	if n := quat.Abs(q); n != 0 {
		q = quat.Scale(1/n, q)
	}
	return Quat{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

func dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}
