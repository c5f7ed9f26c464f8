//go:build !tinygo && cgo

package glrender

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/equilibrium"
	"github.com/soypat/equilibrium/glmesh"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// Renderer owns the GL programs and buffers needed to draw the scene.
// All methods must be called from the goroutine owning the current GL context.
type Renderer struct {
	shaders [equilibrium.NumShaders]shaderState
	geoms   [equilibrium.NumShapes]geometry
}

// shaderState holds a linked program and the locations of its inputs.
// Inputs optimized out by the GLSL compiler have location -1 and are skipped.
type shaderState struct {
	prog               glgl.Program
	uProj, uModelView  int32
	uNormal, uColor    int32
	uLight, uLight2    int32
	aPosition, aNormal int32
}

type geometry struct {
	vao, vbo, ibo uint32
	numIndices    int32
}

// NewRenderer compiles every shader program and uploads meshes to the GPU.
// A GL context must be current.
func NewRenderer(meshes [equilibrium.NumShapes]glmesh.Mesh) (*Renderer, error) {
	r := new(Renderer)
	for mode := range r.shaders {
		err := r.shaders[mode].compile(equilibrium.ShaderMode(mode))
		if err != nil {
			r.Delete()
			return nil, fmt.Errorf("%s shader: %w", equilibrium.ShaderMode(mode), err)
		}
	}
	for shape, mesh := range meshes {
		err := r.geoms[shape].upload(mesh)
		if err != nil {
			r.Delete()
			return nil, fmt.Errorf("%s geometry: %w", equilibrium.Shape(shape), err)
		}
	}
	return r, nil
}

// InitState sets the fixed pipeline state the scene is drawn with. Depth is cleared to 0
// and tested with GREATER since the projection maps the near plane to NDC z=+1.
func (r *Renderer) InitState() error {
	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(0)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.GREATER)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.ReadBuffer(gl.BACK)
	return glgl.Err()
}

// Viewport sets the GL viewport to the full window.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw clears the framebuffer and draws every object of frame.
func (r *Renderer) Draw(frame equilibrium.DrawFrame) error {
	if frame.Shader < 0 || frame.Shader >= equilibrium.NumShaders {
		return fmt.Errorf("invalid shader %d", frame.Shader)
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	ss := &r.shaders[frame.Shader]
	ss.prog.Bind()
	defer ss.prog.Unbind()

	proj := PackMat4(frame.Projection)
	gl.UniformMatrix4fv(ss.uProj, 1, false, &proj[0])
	l1, l2 := frame.Lights[0], frame.Lights[1]
	gl.Uniform3f(ss.uLight, float32(l1[0]), float32(l1[1]), float32(l1[2]))
	gl.Uniform3f(ss.uLight2, float32(l2[0]), float32(l2[1]), float32(l2[2]))
	for _, obj := range frame.Objects {
		if obj.Shape >= equilibrium.NumShapes {
			return fmt.Errorf("invalid shape %d", obj.Shape)
		}
		mvm := PackMat4(obj.ModelView)
		nmvm := PackMat4(obj.Normal)
		gl.UniformMatrix4fv(ss.uModelView, 1, false, &mvm[0])
		gl.UniformMatrix4fv(ss.uNormal, 1, false, &nmvm[0])
		c := obj.Color
		gl.Uniform3f(ss.uColor, float32(c[0]), float32(c[1]), float32(c[2]))
		r.geoms[obj.Shape].draw(ss)
	}
	return glgl.Err()
}

// ReadPixels reads back the window framebuffer as a top-down image.
func (r *Renderer) ReadPixels(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("cannot read back empty framebuffer")
	}
	pix := make([]byte, 4*width*height)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pix[0]))
	if err := glgl.Err(); err != nil {
		return nil, err
	}
	return FramebufferImage(pix, width, height)
}

// Delete releases all GL objects owned by r. It is safe to call on a partially built Renderer.
func (r *Renderer) Delete() {
	for i := range r.shaders {
		if r.shaders[i].prog.ID() != 0 {
			r.shaders[i].prog.Delete()
		}
	}
	for i := range r.geoms {
		r.geoms[i].delete()
	}
}

func (ss *shaderState) compile(mode equilibrium.ShaderMode) error {
	src, err := ProgramSource(mode)
	if err != nil {
		return err
	}
	combined, err := glgl.ParseCombined(strings.NewReader(src))
	if err != nil {
		return err
	}
	prog, err := glgl.CompileProgram(combined)
	if err != nil {
		return fmt.Errorf("%s\n\n%w", src, err)
	}
	ss.prog = prog
	err = prog.BindFrag(fragColorOut + "\x00")
	if err != nil {
		return err
	}
	// Fragment output bindings only take effect on link.
	gl.LinkProgram(prog.ID())
	if err = glgl.Err(); err != nil {
		return fmt.Errorf("relinking program: %w", err)
	}
	ss.uProj = uniformLocation(prog, uProjMatrix)
	ss.uModelView = uniformLocation(prog, uModelViewMatrix)
	ss.uNormal = uniformLocation(prog, uNormalMatrix)
	ss.uColor = uniformLocation(prog, uColor)
	ss.uLight = uniformLocation(prog, uLight)
	ss.uLight2 = uniformLocation(prog, uLight2)
	ss.aPosition = attribLocation(prog, aPosition, aPositionLoc)
	ss.aNormal = attribLocation(prog, aNormal, aNormalLoc)
	if ss.aPosition < 0 {
		return errors.New("program has no " + aPosition + " attribute")
	}
	return glgl.Err()
}

func uniformLocation(prog glgl.Program, name string) int32 {
	loc, err := prog.UniformLocation(name + "\x00")
	if err != nil {
		return -1
	}
	return loc
}

// attribLocation returns loc when the attribute is active in prog and -1 when the
// compiler stripped it. glgl reports presence only, locations come from layout qualifiers.
func attribLocation(prog glgl.Program, name string, loc int32) int32 {
	_, err := prog.AttribLocation(name + "\x00")
	if err != nil {
		return -1
	}
	return loc
}

func (g *geometry) upload(mesh glmesh.Mesh) error {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return errors.New("empty mesh")
	}
	verts := packVertices(mesh.Vertices)
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(verts), gl.Ptr(verts), gl.STATIC_DRAW)
	gl.GenBuffers(1, &g.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, int(unsafe.Sizeof(mesh.Indices[0]))*len(mesh.Indices), gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	g.numIndices = int32(len(mesh.Indices))
	return glgl.Err()
}

func (g *geometry) draw(ss *shaderState) {
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	const stride = 4 * packedVertexLen
	if ss.aPosition >= 0 {
		gl.EnableVertexAttribArray(uint32(ss.aPosition))
		gl.VertexAttribPointer(uint32(ss.aPosition), 3, gl.FLOAT, false, stride, gl.PtrOffset(4*packedPosOffset))
	}
	if ss.aNormal >= 0 {
		gl.EnableVertexAttribArray(uint32(ss.aNormal))
		gl.VertexAttribPointer(uint32(ss.aNormal), 3, gl.FLOAT, false, stride, gl.PtrOffset(4*packedNormalOffset))
	}
	gl.DrawElements(gl.TRIANGLES, g.numIndices, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (g *geometry) delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ibo != 0 {
		gl.DeleteBuffers(1, &g.ibo)
	}
	*g = geometry{}
}
