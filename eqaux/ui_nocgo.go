//go:build tinygo || !cgo

package eqaux

import (
	"errors"

	"github.com/soypat/equilibrium"
)

func ui(scene *equilibrium.SceneState, cfg UIConfig) error {
	return errors.New("require cgo for UI rendering")
}
