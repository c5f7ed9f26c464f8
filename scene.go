package equilibrium

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NumObjects is the fixed number of animated objects in the scene.
const NumObjects = 3

// chaserScale is the uniform scale imposed on the chasing object every frame.
const chaserScale = 0.4

// Shape identifies the procedural geometry an object is drawn with.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeOctahedron
	ShapeTube
	NumShapes
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapeOctahedron:
		return "octahedron"
	case ShapeTube:
		return "tube"
	}
	return "unknown shape"
}

// Object is one animated object of the scene.
type Object struct {
	// Frame is the object's rigid body transform in world space.
	Frame RigidTransform
	// Shape is the geometry drawn for the object.
	Shape Shape
	// DrawScale is a uniform scale applied in the object's local frame when building
	// its draw matrix. It is never folded into Frame.
	DrawScale float64
}

// Model returns the object's model matrix Frame·Scale(DrawScale).
func (o Object) Model() mgl64.Mat4 {
	s := o.DrawScale
	return o.Frame.m.Mul4(mgl64.Scale3D(s, s, s))
}

// ObjectSet holds the scene's objects in their fixed roles:
// index 0 spins in place, index 1 orbits object 0 and index 2 chases object 1.
type ObjectSet [NumObjects]Object

// UpdateTransforms advances every object of objs by one frame given the clock increment.
// Objects are updated strictly in order since each one depends on the already updated previous one.
// One clock cycle amounts to a full turn.
func UpdateTransforms(increment float64, objs *ObjectSet) {
	theta := increment * 360
	spinner, orbiter, chaser := &objs[0], &objs[1], &objs[2]
	spinner.Frame = spin(spinner.Frame, theta)
	orbiter.Frame = orbit(spinner.Frame, orbiter.Frame, theta)
	chaser.Frame, chaser.DrawScale = chase(chaser.Frame, orbiter.Frame)
}

// spin rotates frame by deg degrees about its own Z then X axes, leaving its position untouched.
func spin(frame RigidTransform, deg float64) RigidTransform {
	return frame.Mul(RotationZ(deg)).Mul(RotationX(deg))
}

// orbit rotates frame by deg degrees around the Y axis of pivot.
func orbit(pivot, frame RigidTransform, deg float64) RigidTransform {
	return pivot.Mul(RotationY(deg)).Mul(pivot.Inverse()).Mul(frame)
}

// chase computes the chasing object's new placement toward target.
// The composition Scale(s)·T(T(self)·Δ·target⁻¹) with Δ the translation from self to target
// equals T(s·p)·Scale(s) where p is the translation of the inner product, so the rigid frame
// T(s·p) is returned together with the scale s to apply when drawing.
func chase(self, target RigidTransform) (RigidTransform, float64) {
	toTarget := target.Position().Sub(self.Position())
	delta := mgl64.Translate3D(toTarget[0], toTarget[1], toTarget[2])
	inner := translationPart(translationPart(self.m).Mul4(delta).Mul4(target.m.Inv()))
	placed := mgl64.Scale3D(chaserScale, chaserScale, chaserScale).Mul4(inner)
	return RigidTransform{m: translationPart(placed)}, chaserScale
}
