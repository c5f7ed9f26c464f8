// Package eqaux hosts an [equilibrium.SceneState] in a GLFW window and provides
// the auxiliary pieces such a host needs: configuration loading, screenshot encoding
// and frame rate statistics.
package eqaux

import (
	"context"
	"errors"
	"time"

	"github.com/soypat/equilibrium"
)

// UIConfig configures the window hosting a scene.
type UIConfig struct {
	// Title of the window. Defaults to "equilibrium".
	Title string
	// ScreenshotPath is where screenshots are written. The file extension selects
	// the encoding, see [WriteImageFile]. Defaults to "out.ppm".
	ScreenshotPath string
	// ScreenshotMaxSize bounds the larger screenshot dimension when positive.
	// Larger screenshots are downscaled preserving aspect ratio.
	ScreenshotMaxSize int
	// Caption stamps a status line on screenshots.
	Caption bool
	// FPSInterval is the period between frame rate reports. Defaults to 5 seconds.
	FPSInterval time.Duration
	// Context cancels the render loop when done. May be nil.
	Context context.Context
}

// UI opens a window sized after the scene's camera and runs the scene until the window
// is closed, the user quits or cfg.Context is cancelled. It must be called from the main
// goroutine with the OS thread locked.
func UI(scene *equilibrium.SceneState, cfg UIConfig) error {
	if scene == nil {
		return errors.New("nil scene")
	}
	if cfg.Title == "" {
		cfg.Title = "equilibrium"
	}
	if cfg.ScreenshotPath == "" {
		cfg.ScreenshotPath = "out.ppm"
	}
	if cfg.FPSInterval <= 0 {
		cfg.FPSInterval = 5 * time.Second
	}
	if _, err := formatFromPath(cfg.ScreenshotPath); err != nil {
		return err
	}
	return ui(scene, cfg)
}
