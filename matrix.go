package grove

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a column-major 4x4 matrix. Every transform, world matrix and view
// matrix in grove uses it.
type Mat4 = mgl64.Mat4

// Vec3 is a 3D vector used for vertex positions, translations and axes.
type Vec3 = mgl64.Vec3

// Identity returns the identity matrix.
func Identity() Mat4 {
	return mgl64.Ident4()
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// Scale returns a scale matrix.
func Scale(x, y, z float64) Mat4 {
	return mgl64.Scale3D(x, y, z)
}

// Rotate returns a rotation of angle radians around axis. A zero axis yields
// the identity.
func Rotate(angle float64, axis Vec3) Mat4 {
	if axis.Len() == 0 {
		return mgl64.Ident4()
	}
	return mgl64.HomogRotate3D(angle, axis.Normalize())
}

// Compose returns a * b: b is applied first, then a.
func Compose(a, b Mat4) Mat4 {
	return a.Mul4(b)
}

// TransformPoint applies m to the point p (w = 1) and performs the
// perspective divide when w differs from 1.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] != 0 && v[3] != 1 {
		return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return v.Vec3()
}
