package equilibrium

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const winHeight = 512

func TestMotionWithoutClickIsNoop(t *testing.T) {
	var c Controller
	if _, ok := c.Motion(110, 100, winHeight); ok {
		t.Error("motion applied without a button held")
	}
	if c.lastX != 110 || c.lastY != winHeight-100-1 {
		t.Error("motion must still record cursor position", c.lastX, c.lastY)
	}
}

func TestMotionTransforms(t *testing.T) {
	for _, test := range []struct {
		name    string
		buttons []MouseButton
		// Cursor moves from (100,100) to (100+dx, 100-dy) so dy is positive upwards.
		dx, dy int
		want   mgl64.Mat4
	}{
		{name: "left", buttons: []MouseButton{ButtonLeft}, dx: 10, dy: 4, want: RotationX(-4).Mul(RotationY(10)).Mat4()},
		{name: "right", buttons: []MouseButton{ButtonRight}, dx: 10, dy: 4, want: mgl64.Translate3D(0.1, 0.04, 0)},
		{name: "middle", buttons: []MouseButton{ButtonMiddle}, dx: 10, dy: 4, want: mgl64.Translate3D(0, 0, -0.04)},
		{name: "left+right", buttons: []MouseButton{ButtonLeft, ButtonRight}, dx: 10, dy: 4, want: mgl64.Translate3D(0, 0, -0.04)},
	} {
		var c Controller
		for _, b := range test.buttons {
			c.Button(b, true, 100, 100, winHeight)
		}
		m, ok := c.Motion(100+test.dx, 100-test.dy, winHeight)
		if !ok {
			t.Errorf("%s: motion not applied", test.name)
			continue
		}
		if !m.ApproxEqualThreshold(test.want, tol) {
			t.Errorf("%s: got\n%v\nwant\n%v", test.name, m, test.want)
		}
	}
}

func TestButtonReleaseOrder(t *testing.T) {
	var c Controller
	c.Button(ButtonLeft, true, 0, 0, winHeight)
	c.Button(ButtonRight, true, 0, 0, winHeight)
	c.Button(ButtonLeft, false, 0, 0, winHeight)
	if c.left || !c.right || !c.Dragging() {
		t.Fatalf("unexpected state %+v", c)
	}
	m, _ := c.Motion(10, 0, winHeight)
	if !m.ApproxEqualThreshold(mgl64.Translate3D(0.1, 0, 0), tol) {
		t.Error("expected in-plane translation after releasing left\n", m)
	}
	c.Button(ButtonRight, false, 10, 0, winHeight)
	if c.Dragging() {
		t.Error("still dragging after releasing all buttons")
	}
}

func TestManipulateCameraRelative(t *testing.T) {
	obj := Translation(mgl64.Vec3{1, 2, 3})
	eye := Translation(mgl64.Vec3{0, 0, 10})
	got := Manipulate(obj, eye, mgl64.Translate3D(0.5, 0, 0)).Position()
	if !got.ApproxEqualThreshold(mgl64.Vec3{1.5, 2, 3}, tol) {
		t.Error("identity eye orientation:", got)
	}
	// Eye turned to look down -X: screen right is world -Z.
	eye = eye.Mul(RotationY(90))
	got = Manipulate(obj, eye, mgl64.Translate3D(0.5, 0, 0)).Position()
	if !got.ApproxEqualThreshold(mgl64.Vec3{1, 2, 2.5}, tol) {
		t.Error("rotated eye:", got)
	}
}

func TestManipulateRotationAboutObject(t *testing.T) {
	obj := Translation(mgl64.Vec3{-4, 3, 0}).Mul(RotationZ(20))
	eye := Translation(mgl64.Vec3{0, 3.25, 10}).Mul(RotationX(-15))
	got := Manipulate(obj, eye, RotationX(-7).Mul(RotationY(12)).Mat4())
	if !got.Position().ApproxEqualThreshold(obj.Position(), tol) {
		t.Error("rotation drag moved object", got.Position())
	}
	assertOrthonormal(t, got)
}
