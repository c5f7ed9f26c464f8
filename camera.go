package equilibrium

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera holds the eye transform and the frustum parameters. Near and Far are signed
// z coordinates in eye space, which looks down -Z, so both are negative.
type Camera struct {
	Eye           RigidTransform
	MinFovDegrees float64
	// FovY is the effective vertical field of view in degrees, kept current by Resize and SetMinFov.
	FovY   float64
	Near   float64
	Far    float64
	Width  int
	Height int
}

// Resize records a new viewport size and recomputes FovY.
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = width, height
	c.FovY = EffectiveFovY(width, height, c.MinFovDegrees)
}

// SetMinFov sets the minimum field of view and recomputes FovY.
func (c *Camera) SetMinFov(minFovDegrees float64) {
	c.MinFovDegrees = minFovDegrees
	c.FovY = EffectiveFovY(c.Width, c.Height, minFovDegrees)
}

// Aspect returns width/height of the viewport.
func (c *Camera) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Projection returns the projection matrix for the current camera state.
func (c *Camera) Projection() mgl64.Mat4 {
	return Projection(c.FovY, c.Aspect(), c.Near, c.Far)
}

// EffectiveFovY returns the vertical field of view in degrees that shows at least
// minFovDegrees in the narrower of the two window dimensions.
func EffectiveFovY(width, height int, minFovDegrees float64) float64 {
	if width >= height {
		return minFovDegrees
	}
	const radPerDeg = 0.5 * math.Pi / 180
	half := minFovDegrees * radPerDeg
	return math.Atan2(math.Sin(half)*float64(height)/float64(width), math.Cos(half)) / radPerDeg
}

// Projection returns a perspective projection for a right handed eye frame looking down -Z.
// near and far are the signed (negative) z coordinates of the clipping planes. The near
// plane maps to NDC depth +1 and the far plane to -1, so depth testing uses GREATER.
// Degenerate inputs (zero aspect, fovY multiple of 360, near==far) leave the affected terms zero.
func Projection(fovYDegrees, aspect, near, far float64) mgl64.Mat4 {
	const eps = 1e-8
	var r mgl64.Mat4
	ang := mgl64.DegToRad(fovYDegrees) / 2
	f := 0.0
	if math.Abs(math.Sin(ang)) > eps {
		f = 1 / math.Tan(ang)
	}
	if math.Abs(aspect) > eps {
		r.Set(0, 0, f/aspect)
	}
	r.Set(1, 1, f)
	if math.Abs(far-near) > eps {
		r.Set(2, 2, (far+near)/(far-near))
		r.Set(2, 3, -2*far*near/(far-near))
	}
	r.Set(3, 2, -1)
	return r
}

// EyeSpaceLight expresses a world space light position in the eye's frame.
func EyeSpaceLight(light mgl64.Vec3, eye RigidTransform) mgl64.Vec3 {
	return eye.m.Inv().Mul4x1(light.Vec4(1)).Vec3()
}

// NormalMatrix returns the matrix that transforms normals for the model view matrix mvm:
// the inverse transpose of its linear part, with no translation.
func NormalMatrix(mvm mgl64.Mat4) mgl64.Mat4 {
	return mvm.Mat3().Inv().Transpose().Mat4()
}
