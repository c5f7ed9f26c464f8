// Package equilibrium implements the animation and transform core of a small real-time
// 3D scene in dynamic equilibrium: one object spins in place, a second one orbits it and a
// third one chases the second while held at a reduced scale.
//
// All state lives in a [SceneState] driven by [SceneState.Tick], which consumes input events
// delivered by a host event loop and returns the commands the host must carry out, such as
// drawing a frame. The package performs no rendering, windowing or locking; the host must call
// Tick from a single goroutine.
package equilibrium

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Initial scene layout.
var (
	initialEye     = mgl64.Vec3{0, 3.25, 10}
	initialObjects = [NumObjects]struct {
		pos   mgl64.Vec3
		shape Shape
	}{
		{pos: mgl64.Vec3{0, 4, 0}, shape: ShapeTube},
		{pos: mgl64.Vec3{-4, 3, 0}, shape: ShapeSphere},
		{pos: mgl64.Vec3{4, 3, 0}, shape: ShapeOctahedron},
	}
	// Lights are fixed in world space.
	lights = [2]mgl64.Vec3{{2, 3, 14}, {-2, -3, -5}}
)

const (
	speedUpFactor   = 1.05
	speedDownFactor = 0.95
)

// ShaderMode selects how the renderer shades objects.
type ShaderMode int

const (
	ShaderSolid ShaderMode = iota
	ShaderPhong
	NumShaders
)

func (s ShaderMode) String() string {
	switch s {
	case ShaderSolid:
		return "solid"
	case ShaderPhong:
		return "phong"
	}
	return "unknown shader"
}

// Config configures a new scene. The zero value is not valid, start from [DefaultConfig].
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// MinFovDegrees is the field of view guaranteed in the narrower window dimension.
	MinFovDegrees float64 `json:"min_fov_degrees"`
	// Near and Far are signed eye space z coordinates of the clipping planes and must be negative.
	Near float64 `json:"near"`
	Far  float64 `json:"far"`
	// Speed is the animation speed in clock cycles per second.
	Speed float64 `json:"speed"`
	// ColorEase names the easing of the clock driven object color. See [EaseNames].
	ColorEase string     `json:"color_ease"`
	Shader    ShaderMode `json:"shader"`
}

// DefaultConfig returns the configuration of the stock scene.
func DefaultConfig() Config {
	return Config{
		Width:         512,
		Height:        512,
		MinFovDegrees: 60,
		Near:          -0.1,
		Far:           -50,
		Speed:         0.5,
		ColorEase:     "linear",
		Shader:        ShaderSolid,
	}
}

// Validate returns every problem found in cfg joined in a single error.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.MinFovDegrees <= 0 || cfg.MinFovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("minimum field of view must be in (0,180) degrees, got %g", cfg.MinFovDegrees))
	}
	if cfg.Near >= 0 || cfg.Far >= 0 {
		errs = append(errs, fmt.Errorf("near and far planes must be negative, got near=%g far=%g", cfg.Near, cfg.Far))
	} else if cfg.Far >= cfg.Near {
		errs = append(errs, fmt.Errorf("far plane %g must lie beyond near plane %g", cfg.Far, cfg.Near))
	}
	if _, ok := easings[cfg.ColorEase]; !ok {
		errs = append(errs, fmt.Errorf("unknown color easing %q, want one of %v", cfg.ColorEase, EaseNames()))
	}
	if cfg.Shader < 0 || cfg.Shader >= NumShaders {
		errs = append(errs, fmt.Errorf("unknown shader %d", cfg.Shader))
	}
	return errors.Join(errs...)
}

// SceneState is the complete mutable state of the scene. It is created once by [NewScene]
// and mutated in place by [SceneState.Tick].
type SceneState struct {
	Objects  ObjectSet
	Clock    AnimClock
	Camera   Camera
	Control  Controller
	Speed    float64
	Shader   ShaderMode
	Selected int
	ease     ease.TweenFunc
}

// NewScene returns the stock scene configured by cfg.
func NewScene(cfg Config) (*SceneState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &SceneState{
		Clock:  NewAnimClock(cfg.Speed),
		Speed:  cfg.Speed,
		Shader: cfg.Shader,
		ease:   easings[cfg.ColorEase],
		Camera: Camera{
			Eye:           Translation(initialEye),
			MinFovDegrees: cfg.MinFovDegrees,
			Near:          cfg.Near,
			Far:           cfg.Far,
		},
	}
	s.Camera.Resize(cfg.Width, cfg.Height)
	for i, init := range initialObjects {
		s.Objects[i] = Object{
			Frame:     Translation(init.pos),
			Shape:     init.shape,
			DrawScale: 1,
		}
	}
	return s, nil
}

// Lights returns the world space light positions.
func Lights() [2]mgl64.Vec3 { return lights }
