package equilibrium

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// dragTranslateFactor converts pixels of drag into world units of translation.
const dragTranslateFactor = 0.01

// Controller turns mouse clicks and drags into incremental transforms.
// Coordinates it stores are bottom-up: y=0 is the bottom row of the window.
type Controller struct {
	left, right, middle bool
	// clickDown is set while any button is held. Motion is only applied when set.
	clickDown    bool
	lastX, lastY int
}

// Button records a button press or release at window coordinates (x, y),
// with y measured top-down as delivered by windowing systems.
func (c *Controller) Button(btn MouseButton, pressed bool, x, y, windowHeight int) {
	c.lastX = x
	c.lastY = windowHeight - y - 1
	// Presses are set before releases are cleared.
	c.left = c.left || (btn == ButtonLeft && pressed)
	c.right = c.right || (btn == ButtonRight && pressed)
	c.middle = c.middle || (btn == ButtonMiddle && pressed)
	c.left = c.left && !(btn == ButtonLeft && !pressed)
	c.right = c.right && !(btn == ButtonRight && !pressed)
	c.middle = c.middle && !(btn == ButtonMiddle && !pressed)
	c.clickDown = c.left || c.right || c.middle
}

// Dragging reports whether any button is currently held.
func (c *Controller) Dragging() bool { return c.clickDown }

// Motion records a cursor move to window coordinates (x, y) and returns the
// incremental transform for the drag since the last recorded position. ok is
// false when no button is held, in which case the transform must not be applied.
//
// Left drag rotates (degrees per pixel), right drag translates in the view plane,
// middle or left+right drag translates in depth.
func (c *Controller) Motion(x, y, windowHeight int) (m mgl64.Mat4, ok bool) {
	by := windowHeight - y - 1
	dx := float64(x - c.lastX)
	dy := float64(by - c.lastY)
	c.lastX, c.lastY = x, by

	m = mgl64.Ident4()
	switch {
	case c.left && !c.right:
		m = RotationX(-dy).Mul(RotationY(dx)).m
	case c.right && !c.left:
		m = mgl64.Translate3D(dx*dragTranslateFactor, dy*dragTranslateFactor, 0)
	case c.middle || (c.left && c.right):
		m = mgl64.Translate3D(0, 0, -dy*dragTranslateFactor)
	}
	return m, c.clickDown
}

// Manipulate applies m to obj in the frame made of obj's position and eye's orientation,
// so drag directions are relative to the camera: a·m·a⁻¹·obj with a = T(obj)·R(eye).
func Manipulate(obj, eye RigidTransform, m mgl64.Mat4) RigidTransform {
	a := obj.TranslationOnly().Mul(eye.RotationOnly())
	return RigidTransform{m: a.m.Mul4(m).Mul4(a.m.Inv()).Mul4(obj.m)}
}
