package equilibrium

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestScene(t *testing.T) *SceneState {
	t.Helper()
	s, err := NewScene(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTickFrame(t *testing.T) {
	s := newTestScene(t)
	cmds := s.Tick(FrameEvent{ElapsedMillis: 100})
	if len(cmds) != 1 {
		t.Fatal("want single draw command, got", cmds)
	}
	frame, ok := cmds[0].(DrawFrame)
	if !ok {
		t.Fatalf("want DrawFrame, got %T", cmds[0])
	}
	if math.Abs(s.Clock.Value-0.05) > tol {
		t.Error("clock", s.Clock.Value)
	}
	shapes := [NumObjects]Shape{ShapeTube, ShapeSphere, ShapeOctahedron}
	invEye := s.Camera.Eye.Inverse().Mat4()
	for i, obj := range frame.Objects {
		if obj.Shape != shapes[i] {
			t.Errorf("object %d shape %v, want %v", i, obj.Shape, shapes[i])
		}
		if !obj.ModelView.ApproxEqualThreshold(invEye.Mul4(s.Objects[i].Model()), tol) {
			t.Errorf("object %d model view mismatch", i)
		}
		if !obj.Color.ApproxEqualThreshold(mgl64.Vec3{0.95, 0, 0.05}, 1e-6) {
			t.Errorf("object %d color %v", i, obj.Color)
		}
	}
	if !frame.Lights[0].ApproxEqualThreshold(mgl64.Vec3{2, -0.25, 4}, tol) {
		t.Error("eye light", frame.Lights[0])
	}
	if frame.Projection != s.Camera.Projection() {
		t.Error("projection mismatch")
	}
}

func TestTickZeroElapsedKeepsClock(t *testing.T) {
	s := newTestScene(t)
	s.Tick(FrameEvent{ElapsedMillis: 40})
	v := s.Clock.Value
	spinner := s.Objects[0].Frame
	for i := 0; i < 5; i++ {
		s.Tick(FrameEvent{})
	}
	if s.Clock.Value != v {
		t.Error("clock moved with zero elapsed time")
	}
	if !s.Objects[0].Frame.Mat4().ApproxEqualThreshold(spinner.Mat4(), tol) {
		t.Error("spinner moved with zero elapsed time")
	}
}

func TestTickFirstMotionIsGated(t *testing.T) {
	s := newTestScene(t)
	before := s.Objects
	cmds := s.Tick(MotionEvent{X: 110, Y: 100})
	if len(cmds) != 0 || s.Objects != before {
		t.Error("motion without click changed the scene")
	}
	s.Tick(MouseEvent{Button: ButtonLeft, Pressed: true, X: 110, Y: 100})
	cmds = s.Tick(MotionEvent{X: 120, Y: 100})
	if len(cmds) != 1 {
		t.Fatal("want redisplay after drag, got", cmds)
	}
	if _, ok := cmds[0].(Redisplay); !ok {
		t.Fatalf("want Redisplay, got %T", cmds[0])
	}
	if s.Objects[0].Frame == before[0].Frame {
		t.Error("drag did not change selected object")
	}
	if s.Objects[1] != before[1] || s.Objects[2] != before[2] {
		t.Error("drag changed unselected objects")
	}
}

func TestTickDragSelectedObject(t *testing.T) {
	s := newTestScene(t)
	s.Tick(KeyEvent{Key: KeyCycleObj})
	if s.Selected != 1 {
		t.Fatal("selected", s.Selected)
	}
	start := s.Objects[1].Frame.Position()
	s.Tick(MouseEvent{Button: ButtonRight, Pressed: true, X: 200, Y: 200})
	s.Tick(MotionEvent{X: 250, Y: 200})
	got := s.Objects[1].Frame.Position()
	if !got.ApproxEqualThreshold(start.Add(mgl64.Vec3{0.5, 0, 0}), tol) {
		t.Error("right drag moved object to", got)
	}
	s.Tick(MouseEvent{Button: ButtonRight, Pressed: false, X: 250, Y: 200})
	s.Tick(MotionEvent{X: 300, Y: 200})
	if s.Objects[1].Frame.Position() != got {
		t.Error("object moved after release")
	}
}

func TestTickKeys(t *testing.T) {
	s := newTestScene(t)
	for i := 1; i <= 4; i++ {
		s.Tick(KeyEvent{Key: KeyCycleObj})
		if s.Selected != i%NumObjects {
			t.Fatal("selection did not cycle", s.Selected)
		}
	}
	speed := s.Speed
	s.Tick(KeyEvent{Key: KeySpeedUp})
	if math.Abs(s.Speed-speed*1.05) > 1e-15 {
		t.Error("speed up", s.Speed)
	}
	s.Tick(KeyEvent{Key: KeySpeedDown})
	if math.Abs(s.Speed-speed*1.05*0.95) > 1e-15 {
		t.Error("speed down", s.Speed)
	}

	cmds := s.Tick(KeyEvent{Key: KeyCycleFrag})
	if sel, ok := cmds[0].(SelectShader); !ok || sel.Shader != ShaderPhong {
		t.Error("expected phong shader selection, got", cmds)
	}
	s.Tick(KeyEvent{Key: KeyCycleFrag})
	if s.Shader != ShaderSolid {
		t.Error("shader did not cycle back", s.Shader)
	}

	cmds = s.Tick(KeyEvent{Key: KeyHelp})
	if help, ok := cmds[0].(ShowHelp); !ok || help.Text != HelpText {
		t.Error("help command", cmds)
	}
	cmds = s.Tick(KeyEvent{Key: KeyScreenshot})
	if shot, ok := cmds[0].(CaptureScreenshot); !ok || shot.Width != 512 || shot.Height != 512 {
		t.Error("screenshot command", cmds)
	}
	cmds = s.Tick(KeyEvent{Key: KeyEscape})
	if len(cmds) != 1 {
		t.Fatal("escape", cmds)
	}
	if _, ok := cmds[0].(Quit); !ok {
		t.Errorf("want Quit, got %T", cmds[0])
	}
	cmds = s.Tick(KeyEvent{Key: 'z'})
	if len(cmds) != 1 {
		t.Fatal("unknown key", cmds)
	}
	if _, ok := cmds[0].(Redisplay); !ok {
		t.Errorf("unknown key: want Redisplay, got %T", cmds[0])
	}
}

func TestTickResize(t *testing.T) {
	s := newTestScene(t)
	cmds := s.Tick(ResizeEvent{Width: 400, Height: 800})
	if vp, ok := cmds[0].(SetViewport); !ok || vp.Width != 400 || vp.Height != 800 {
		t.Fatal("viewport command", cmds)
	}
	if s.Camera.FovY != EffectiveFovY(400, 800, 60) {
		t.Error("fov not updated", s.Camera.FovY)
	}
	if cmds := s.Tick(ResizeEvent{}); cmds != nil {
		t.Error("zero size resize must be ignored")
	}
	if s.Camera.Width != 400 {
		t.Error("zero size resize changed camera")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.Near = 1
	cfg.ColorEase = "bogus"
	if _, err := NewScene(cfg); err == nil {
		t.Fatal("expected error")
	}
	cfg = DefaultConfig()
	cfg.Far = -0.01
	if err := cfg.Validate(); err == nil {
		t.Error("far nearer than near must fail")
	}
}
