package equilibrium

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Event is an input delivered by the host event loop to [SceneState.Tick].
type Event interface{ isEvent() }

// FrameEvent requests a new frame. ElapsedMillis is the duration of the previous frame.
type FrameEvent struct{ ElapsedMillis int }

// ResizeEvent reports a new viewport size in pixels.
type ResizeEvent struct{ Width, Height int }

// MouseEvent reports a button press or release at window coordinates, y measured top-down.
type MouseEvent struct {
	Button  MouseButton
	Pressed bool
	X, Y    int
}

// MotionEvent reports a cursor move at window coordinates, y measured top-down.
type MotionEvent struct{ X, Y int }

// KeyEvent reports a typed character. Escape is delivered as [KeyEscape].
type KeyEvent struct{ Key rune }

func (FrameEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (MouseEvent) isEvent()  {}
func (MotionEvent) isEvent() {}
func (KeyEvent) isEvent()    {}

// Keyboard commands.
const (
	KeyEscape     rune = 27
	KeyHelp       rune = 'h'
	KeyScreenshot rune = 's'
	KeyCycleObj   rune = 'o'
	KeyCycleFrag  rune = 'f'
	KeySpeedUp    rune = '+'
	KeySpeedDown  rune = '-'
)

// HelpText describes the keyboard and mouse bindings.
const HelpText = ` ============== H E L P ==============

h		help menu
s		save screenshot
o		Cycle object to manipulate
f		Cycle fragment shader
+		Increase animation speed
-		Decrease animation speed
drag left mouse to rotate
drag middle mouse to translate in/out
drag right mouse to translate up/down/left/right
`

// Command is an action [SceneState.Tick] asks the host to carry out.
type Command interface{ isCommand() }

// DrawFrame carries everything needed to render one frame.
type DrawFrame struct {
	Projection mgl64.Mat4
	// Lights are the light positions in eye space.
	Lights  [2]mgl64.Vec3
	Objects [NumObjects]DrawObject
	Shader  ShaderMode
}

// DrawObject carries the per-object draw parameters.
type DrawObject struct {
	Shape     Shape
	ModelView mgl64.Mat4
	Normal    mgl64.Mat4
	Color     mgl64.Vec3
}

// SetViewport asks the host to resize the GL viewport.
type SetViewport struct{ Width, Height int }

// Redisplay asks the host to draw a new frame soon.
type Redisplay struct{}

// ShowHelp asks the host to show Text to the user.
type ShowHelp struct{ Text string }

// CaptureScreenshot asks the host to save the current framebuffer.
type CaptureScreenshot struct{ Width, Height int }

// SelectShader reports that the active shader changed.
type SelectShader struct{ Shader ShaderMode }

// Quit asks the host to exit.
type Quit struct{}

func (DrawFrame) isCommand()         {}
func (SetViewport) isCommand()       {}
func (Redisplay) isCommand()         {}
func (ShowHelp) isCommand()          {}
func (CaptureScreenshot) isCommand() {}
func (SelectShader) isCommand()      {}
func (Quit) isCommand()              {}

// Tick applies ev to the scene and returns the commands the host must execute in order.
// Unknown events are ignored.
func (s *SceneState) Tick(ev Event) []Command {
	switch ev := ev.(type) {
	case FrameEvent:
		s.Clock.Advance(ev.ElapsedMillis, s.Speed)
		UpdateTransforms(s.Clock.Increment, &s.Objects)
		return []Command{s.Frame()}

	case ResizeEvent:
		if ev.Width <= 0 || ev.Height <= 0 {
			return nil // Minimized.
		}
		s.Camera.Resize(ev.Width, ev.Height)
		return []Command{SetViewport{Width: ev.Width, Height: ev.Height}, Redisplay{}}

	case MouseEvent:
		s.Control.Button(ev.Button, ev.Pressed, ev.X, ev.Y, s.Camera.Height)

	case MotionEvent:
		m, ok := s.Control.Motion(ev.X, ev.Y, s.Camera.Height)
		if !ok {
			return nil
		}
		obj := &s.Objects[s.Selected]
		obj.Frame = Manipulate(obj.Frame, s.Camera.Eye, m)
		return []Command{Redisplay{}}

	case KeyEvent:
		return s.key(ev.Key)
	}
	return nil
}

func (s *SceneState) key(k rune) []Command {
	var cmds []Command
	switch k {
	case KeyEscape:
		return []Command{Quit{}}
	case KeyHelp:
		cmds = append(cmds, ShowHelp{Text: HelpText})
	case KeyScreenshot:
		cmds = append(cmds, CaptureScreenshot{Width: s.Camera.Width, Height: s.Camera.Height})
	case KeyCycleObj:
		s.Selected = (s.Selected + 1) % NumObjects
	case KeySpeedUp:
		s.Speed *= speedUpFactor
	case KeySpeedDown:
		s.Speed *= speedDownFactor
	case KeyCycleFrag:
		s.Shader = (s.Shader + 1) % NumShaders
		cmds = append(cmds, SelectShader{Shader: s.Shader})
	}
	return append(cmds, Redisplay{})
}

// Frame builds the draw command for the scene's current state without advancing it.
func (s *SceneState) Frame() DrawFrame {
	invEye := s.Camera.Eye.Inverse().m
	frame := DrawFrame{
		Projection: s.Camera.Projection(),
		Shader:     s.Shader,
	}
	for i, light := range lights {
		frame.Lights[i] = EyeSpaceLight(light, s.Camera.Eye)
	}
	color := ClockColor(s.Clock.Value, s.ease)
	for i, obj := range s.Objects {
		mvm := invEye.Mul4(obj.Model())
		frame.Objects[i] = DrawObject{
			Shape:     obj.Shape,
			ModelView: mvm,
			Normal:    NormalMatrix(mvm),
			Color:     color,
		}
	}
	return frame
}
