package equilibrium

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RigidTransform is a 4x4 homogeneous transform made only of a rotation and a translation.
// The linear part is orthonormal for every value produced by this package's constructors
// and methods: scales are never stored in a RigidTransform, see [Object.DrawScale].
type RigidTransform struct {
	m mgl64.Mat4
}

// Identity returns the identity transform.
func Identity() RigidTransform {
	return RigidTransform{m: mgl64.Ident4()}
}

// Translation returns a pure translation by v.
func Translation(v mgl64.Vec3) RigidTransform {
	return RigidTransform{m: mgl64.Translate3D(v[0], v[1], v[2])}
}

// RotationX returns a rotation of deg degrees around the X axis (right handed).
func RotationX(deg float64) RigidTransform {
	return RigidTransform{m: mgl64.HomogRotate3DX(mgl64.DegToRad(deg))}
}

// RotationY returns a rotation of deg degrees around the Y axis (right handed).
func RotationY(deg float64) RigidTransform {
	return RigidTransform{m: mgl64.HomogRotate3DY(mgl64.DegToRad(deg))}
}

// RotationZ returns a rotation of deg degrees around the Z axis (right handed).
func RotationZ(deg float64) RigidTransform {
	return RigidTransform{m: mgl64.HomogRotate3DZ(mgl64.DegToRad(deg))}
}

// Mul returns the composition t·u, that is u is applied first.
func (t RigidTransform) Mul(u RigidTransform) RigidTransform {
	return RigidTransform{m: t.m.Mul4(u.m)}
}

// Inverse returns the inverse transform.
func (t RigidTransform) Inverse() RigidTransform {
	return RigidTransform{m: t.m.Inv()}
}

// TranslationOnly returns the transform with its linear part replaced by identity.
func (t RigidTransform) TranslationOnly() RigidTransform {
	return RigidTransform{m: translationPart(t.m)}
}

// RotationOnly returns the transform with its translation removed.
func (t RigidTransform) RotationOnly() RigidTransform {
	return RigidTransform{m: linearPart(t.m)}
}

// Position returns the translation component.
func (t RigidTransform) Position() mgl64.Vec3 {
	return t.m.Col(3).Vec3()
}

// Mat4 returns the underlying homogeneous matrix.
func (t RigidTransform) Mat4() mgl64.Mat4 { return t.m }

// translationPart keeps the translation column of m and discards everything else.
func translationPart(m mgl64.Mat4) mgl64.Mat4 {
	return mgl64.Translate3D(m[12], m[13], m[14])
}

// linearPart keeps the upper 3x3 block of m.
func linearPart(m mgl64.Mat4) mgl64.Mat4 {
	m[12], m[13], m[14] = 0, 0, 0
	m[3], m[7], m[11], m[15] = 0, 0, 0, 1
	return m
}
