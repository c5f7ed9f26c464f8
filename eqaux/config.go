package eqaux

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soypat/equilibrium"
)

// LoadConfig reads a JSON scene configuration from path over [equilibrium.DefaultConfig].
// Fields absent from the file keep their default values. The result is not validated.
func LoadConfig(path string) (equilibrium.Config, error) {
	cfg := equilibrium.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds command line values that override configuration file settings.
// Zero values leave the corresponding setting untouched.
type Flags struct {
	Width, Height int
	Speed         float64
	MinFov        float64
	ColorEase     string
	Phong         bool
}

// Resolve applies non-zero flags over cfg.
func (f Flags) Resolve(cfg *equilibrium.Config) {
	if f.Width > 0 {
		cfg.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Height = f.Height
	}
	if f.Speed != 0 {
		cfg.Speed = f.Speed
	}
	if f.MinFov > 0 {
		cfg.MinFovDegrees = f.MinFov
	}
	if f.ColorEase != "" {
		cfg.ColorEase = f.ColorEase
	}
	if f.Phong {
		cfg.Shader = equilibrium.ShaderPhong
	}
}
