// Package glrender draws an [equilibrium.DrawFrame] with OpenGL.
//
// Shader sources are embedded and compiled with glgl. Everything that does not
// need a GL context lives in files without build constraints so it can be tested.
package glrender

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/equilibrium"
	"github.com/soypat/equilibrium/glmesh"
)

// VersionStr is the GLSL version directive prepended to every shader stage.
const VersionStr = "#version 330 core\n"

var (
	//go:embed shaders/basic.vert
	basicVert string
	//go:embed shaders/solid.frag
	solidFrag string
	//go:embed shaders/phong.frag
	phongFrag string
)

// Uniform and attribute names shared by all programs.
const (
	uProjMatrix      = "uProjMatrix"
	uModelViewMatrix = "uModelViewMatrix"
	uNormalMatrix    = "uNormalMatrix"
	uColor           = "uColor"
	uLight           = "uLight"
	uLight2          = "uLight2"
	aPosition        = "aPosition"
	aNormal          = "aNormal"
	fragColorOut     = "fragColor"
)

// Vertex attribute locations, fixed by layout qualifiers in shaders/basic.vert.
const (
	aPositionLoc = 0
	aNormalLoc   = 1
)

// ProgramSource returns the combined vertex and fragment source of the program for mode,
// in the format accepted by glgl.ParseCombined.
func ProgramSource(mode equilibrium.ShaderMode) (string, error) {
	var frag string
	switch mode {
	case equilibrium.ShaderSolid:
		frag = solidFrag
	case equilibrium.ShaderPhong:
		frag = phongFrag
	default:
		return "", fmt.Errorf("no program for shader %d", mode)
	}
	var buf bytes.Buffer
	buf.WriteString("#shader vertex\n")
	buf.WriteString(VersionStr)
	buf.WriteString(basicVert)
	buf.WriteString("\n#shader fragment\n")
	buf.WriteString(VersionStr)
	buf.WriteString(frag)
	return buf.String(), nil
}

// PackMat4 converts m to the column major float32 layout expected by glUniformMatrix4fv.
func PackMat4(m mgl64.Mat4) (packed [16]float32) {
	for i, v := range m {
		packed[i] = float32(v)
	}
	return packed
}

// StockMeshes builds the geometry of every [equilibrium.Shape].
func StockMeshes() (meshes [equilibrium.NumShapes]glmesh.Mesh, err error) {
	meshes[equilibrium.ShapeCube], err = glmesh.Cube(2)
	if err != nil {
		return meshes, err
	}
	meshes[equilibrium.ShapeSphere], err = glmesh.Sphere(1, 30, 20)
	if err != nil {
		return meshes, err
	}
	meshes[equilibrium.ShapeOctahedron], err = glmesh.Octahedron(2)
	if err != nil {
		return meshes, err
	}
	meshes[equilibrium.ShapeTube], err = glmesh.Tube(1, 4, 36)
	return meshes, err
}

// Interleaved vertex layout uploaded to the GPU, in float32 units.
const (
	packedPosOffset    = 0
	packedNormalOffset = 3
	packedTexOffset    = 6
	packedVertexLen    = 8
)

// packVertices interleaves position, normal and texture coordinates of verts.
func packVertices(verts []glmesh.Vertex) []float32 {
	packed := make([]float32, 0, packedVertexLen*len(verts))
	for _, v := range verts {
		packed = append(packed,
			v.Pos.X, v.Pos.Y, v.Pos.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Tex.X, v.Tex.Y,
		)
	}
	return packed
}
