//go:build !tinygo && cgo

package eqaux

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/equilibrium"
	"github.com/soypat/equilibrium/glrender"
	"golang.org/x/image/draw"
)

type host struct {
	scene    *equilibrium.SceneState
	cfg      UIConfig
	window   *glfw.Window
	renderer *glrender.Renderer
	caption  *Captioner
	events   []equilibrium.Event
}

func ui(scene *equilibrium.SceneState, cfg UIConfig) error {
	window, term, err := startGLFW(cfg.Title, scene.Camera.Width, scene.Camera.Height)
	if err != nil {
		return err
	}
	defer term()
	meshes, err := glrender.StockMeshes()
	if err != nil {
		return err
	}
	renderer, err := glrender.NewRenderer(meshes)
	if err != nil {
		return err
	}
	defer renderer.Delete()
	err = renderer.InitState()
	if err != nil {
		return fmt.Errorf("initializing GL state: %w", err)
	}
	h := &host{
		scene:    scene,
		cfg:      cfg,
		window:   window,
		renderer: renderer,
	}
	if cfg.Caption {
		h.caption, err = NewCaptioner()
		if err != nil {
			return err
		}
	}
	h.setCallbacks()
	// Framebuffer may differ from window size on high density displays.
	fbw, fbh := window.GetFramebufferSize()
	h.push(equilibrium.ResizeEvent{Width: fbw, Height: fbh})

	fps := FPSCounter{Interval: cfg.FPSInterval}
	ctx := cfg.Context
	timer := NewFrameTimer(glfw.GetTime())
	for !window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		glfw.PollEvents()
		for i := 0; i < len(h.events); i++ {
			quit, err := h.exec(scene.Tick(h.events[i]))
			if err != nil || quit {
				return err
			}
		}
		h.events = h.events[:0]

		currentTime := glfw.GetTime()
		elapsedMillis := timer.Elapsed(currentTime)
		_, err = h.exec(scene.Tick(equilibrium.FrameEvent{ElapsedMillis: elapsedMillis}))
		if err != nil {
			return err
		}
		window.SwapBuffers()
		if rate, ok := fps.Frame(currentTime); ok {
			log.Printf("%.1f frames per second, %d ms since last frame", rate, elapsedMillis)
		}
	}
	return nil
}

func (h *host) push(ev equilibrium.Event) { h.events = append(h.events, ev) }

func (h *host) setCallbacks() {
	h.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		h.push(equilibrium.ResizeEvent{Width: width, Height: height})
	})
	h.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var btn equilibrium.MouseButton
		switch button {
		case glfw.MouseButtonLeft:
			btn = equilibrium.ButtonLeft
		case glfw.MouseButtonRight:
			btn = equilibrium.ButtonRight
		case glfw.MouseButtonMiddle:
			btn = equilibrium.ButtonMiddle
		default:
			return
		}
		x, y := h.cursorPixels(w.GetCursorPos())
		h.push(equilibrium.MouseEvent{Button: btn, Pressed: action == glfw.Press, X: x, Y: y})
	})
	h.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		x, y := h.cursorPixels(xpos, ypos)
		h.push(equilibrium.MotionEvent{X: x, Y: y})
	})
	h.window.SetCharCallback(func(w *glfw.Window, char rune) {
		h.push(equilibrium.KeyEvent{Key: char})
	})
	h.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			h.push(equilibrium.KeyEvent{Key: equilibrium.KeyEscape})
		}
	})
}

// cursorPixels converts cursor screen coordinates to framebuffer pixels.
func (h *host) cursorPixels(xpos, ypos float64) (x, y int) {
	ww, wh := h.window.GetSize()
	fbw, fbh := h.window.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		xpos *= float64(fbw) / float64(ww)
		ypos *= float64(fbh) / float64(wh)
	}
	return int(xpos), int(ypos)
}

// exec carries out cmds in order. quit is true when the scene asked to exit.
func (h *host) exec(cmds []equilibrium.Command) (quit bool, err error) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case equilibrium.DrawFrame:
			err = h.renderer.Draw(cmd)
			if err != nil {
				return false, fmt.Errorf("drawing frame: %w", err)
			}
		case equilibrium.SetViewport:
			h.renderer.Viewport(cmd.Width, cmd.Height)
		case equilibrium.Redisplay:
			// Frames are drawn continuously.
		case equilibrium.ShowHelp:
			fmt.Print(cmd.Text)
		case equilibrium.SelectShader:
			log.Printf("using %s shader", cmd.Shader)
		case equilibrium.CaptureScreenshot:
			err = h.screenshot(cmd.Width, cmd.Height)
			if err != nil {
				log.Printf("screenshot failed: %v", err)
			} else {
				log.Printf("wrote screenshot to %s", h.cfg.ScreenshotPath)
			}
		case equilibrium.Quit:
			return true, nil
		}
	}
	return false, nil
}

// screenshot draws the current scene state to the back buffer and saves it.
func (h *host) screenshot(width, height int) error {
	err := h.renderer.Draw(h.scene.Frame())
	if err != nil {
		return err
	}
	gl.Finish()
	img, err := h.renderer.ReadPixels(width, height)
	if err != nil {
		return err
	}
	var out draw.Image = img
	if h.caption != nil {
		err = h.caption.Stamp(out, SceneCaption(h.scene))
		if err != nil {
			return err
		}
	}
	return WriteImageFile(h.cfg.ScreenshotPath, Downscale(out, h.cfg.ScreenshotMaxSize))
}

func startGLFW(title string, width, height int) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("creating window, OpenGL 4.1 core profile may be unsupported: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	log.Println("OpenGL", gl.GoStr(gl.GetString(gl.VERSION)))
	return window, glfw.Terminate, nil
}
