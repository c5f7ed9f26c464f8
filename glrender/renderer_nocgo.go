//go:build tinygo || !cgo

package glrender

import (
	"errors"

	"github.com/soypat/equilibrium"
	"github.com/soypat/equilibrium/glmesh"
)

// Renderer is unavailable without cgo.
type Renderer struct{}

func NewRenderer(meshes [equilibrium.NumShapes]glmesh.Mesh) (*Renderer, error) {
	return nil, errors.New("require cgo for OpenGL rendering")
}
