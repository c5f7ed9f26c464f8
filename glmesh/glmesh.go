// Package glmesh generates vertex and index data for simple solids.
// Meshes are indexed triangle lists wound counter clockwise when seen from outside.
package glmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Vertex is the vertex layout uploaded to the GPU: position, normal and texture coordinates.
type Vertex struct {
	Pos    ms3.Vec
	Normal ms3.Vec
	Tex    ms2.Vec
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

var errIndexOverflow = errors.New("mesh has too many vertices for 16 bit indices")

// CubeLen returns the vertex and index counts of [Cube].
func CubeLen() (vbLen, ibLen int) { return 24, 36 }

// Cube returns an axis aligned cube of side size centered at the origin with flat faces.
func Cube(size float32) (Mesh, error) {
	if size <= 0 {
		return Mesh{}, fmt.Errorf("cube size must be positive, got %g", size)
	}
	h := size / 2
	x, y, z := ms3.Vec{X: 1}, ms3.Vec{Y: 1}, ms3.Vec{Z: 1}
	neg := func(v ms3.Vec) ms3.Vec { return ms3.Scale(-1, v) }
	// Each face: normal n and in-plane axes u, v with u×v = n.
	faces := [6][3]ms3.Vec{
		{x, y, z}, {neg(x), z, y},
		{y, z, x}, {neg(y), x, z},
		{z, x, y}, {neg(z), y, x},
	}
	vbLen, ibLen := CubeLen()
	m := Mesh{
		Vertices: make([]Vertex, 0, vbLen),
		Indices:  make([]uint16, 0, ibLen),
	}
	corners := [4]ms2.Vec{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		base := uint16(len(m.Vertices))
		for _, c := range corners {
			p := ms3.Add(n, ms3.Add(ms3.Scale(c.X, u), ms3.Scale(c.Y, v)))
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    ms3.Scale(h, p),
				Normal: n,
				Tex:    ms2.Vec{X: (c.X + 1) / 2, Y: (c.Y + 1) / 2},
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m, nil
}

// SphereLen returns the vertex and index counts of [Sphere].
func SphereLen(slices, stacks int) (vbLen, ibLen int) {
	return (slices + 1) * (stacks + 1), slices * stacks * 6
}

// Sphere returns a UV sphere of the given radius centered at the origin with its poles on the Y axis.
func Sphere(radius float32, slices, stacks int) (Mesh, error) {
	if radius <= 0 {
		return Mesh{}, fmt.Errorf("sphere radius must be positive, got %g", radius)
	} else if slices < 3 || stacks < 2 {
		return Mesh{}, fmt.Errorf("sphere needs at least 3 slices and 2 stacks, got %d and %d", slices, stacks)
	}
	vbLen, ibLen := SphereLen(slices, stacks)
	if vbLen > math.MaxUint16+1 {
		return Mesh{}, errIndexOverflow
	}
	m := Mesh{
		Vertices: make([]Vertex, 0, vbLen),
		Indices:  make([]uint16, 0, ibLen),
	}
	for j := 0; j <= stacks; j++ {
		v := float32(j) / float32(stacks)
		sphi, cphi := math32.Sincos(math32.Pi * v)
		for i := 0; i <= slices; i++ {
			u := float32(i) / float32(slices)
			sa, ca := math32.Sincos(2 * math32.Pi * u)
			n := ms3.Vec{X: sphi * sa, Y: cphi, Z: sphi * ca}
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    ms3.Scale(radius, n),
				Normal: n,
				Tex:    ms2.Vec{X: u, Y: 1 - v},
			})
		}
	}
	row := uint16(slices + 1)
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			a := uint16(j)*row + uint16(i)
			b := a + row
			m.Indices = append(m.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return m, nil
}

// OctahedronLen returns the vertex and index counts of [Octahedron].
func OctahedronLen() (vbLen, ibLen int) { return 24, 24 }

// Octahedron returns a regular octahedron with its six tips at distance size/2 along
// the coordinate axes. Faces are flat shaded.
func Octahedron(size float32) (Mesh, error) {
	if size <= 0 {
		return Mesh{}, fmt.Errorf("octahedron size must be positive, got %g", size)
	}
	h := size / 2
	vbLen, ibLen := OctahedronLen()
	m := Mesh{
		Vertices: make([]Vertex, 0, vbLen),
		Indices:  make([]uint16, 0, ibLen),
	}
	inv := 1 / math32.Sqrt(3)
	for _, sx := range [2]float32{1, -1} {
		for _, sy := range [2]float32{1, -1} {
			for _, sz := range [2]float32{1, -1} {
				tri := [3]ms3.Vec{{X: sx * h}, {Y: sy * h}, {Z: sz * h}}
				if sx*sy*sz < 0 {
					tri[1], tri[2] = tri[2], tri[1] // Mirrored octant flips winding.
				}
				n := ms3.Vec{X: sx * inv, Y: sy * inv, Z: sz * inv}
				base := uint16(len(m.Vertices))
				for k, p := range tri {
					m.Vertices = append(m.Vertices, Vertex{
						Pos:    p,
						Normal: n,
						Tex:    ms2.Vec{X: float32(k) / 2, Y: float32(k % 2)},
					})
				}
				m.Indices = append(m.Indices, base, base+1, base+2)
			}
		}
	}
	return m, nil
}

// TubeLen returns the vertex and index counts of [Tube].
func TubeLen(slices int) (vbLen, ibLen int) {
	return 2 * (slices + 1), 6 * slices
}

// Tube returns an open cylinder of the given radius and height centered at the origin
// along the Y axis. Normals point outwards; the inside is visible only with culling disabled.
func Tube(radius, height float32, slices int) (Mesh, error) {
	if radius <= 0 || height <= 0 {
		return Mesh{}, fmt.Errorf("tube dimensions must be positive, got radius=%g height=%g", radius, height)
	} else if slices < 3 {
		return Mesh{}, fmt.Errorf("tube needs at least 3 slices, got %d", slices)
	}
	vbLen, ibLen := TubeLen(slices)
	if vbLen > math.MaxUint16+1 {
		return Mesh{}, errIndexOverflow
	}
	m := Mesh{
		Vertices: make([]Vertex, 0, vbLen),
		Indices:  make([]uint16, 0, ibLen),
	}
	hh := height / 2
	for i := 0; i <= slices; i++ {
		u := float32(i) / float32(slices)
		sa, ca := math32.Sincos(2 * math32.Pi * u)
		n := ms3.Vec{X: sa, Z: ca}
		rim := ms3.Scale(radius, n)
		m.Vertices = append(m.Vertices,
			Vertex{Pos: ms3.Add(rim, ms3.Vec{Y: -hh}), Normal: n, Tex: ms2.Vec{X: u, Y: 0}},
			Vertex{Pos: ms3.Add(rim, ms3.Vec{Y: hh}), Normal: n, Tex: ms2.Vec{X: u, Y: 1}},
		)
	}
	for i := 0; i < slices; i++ {
		b0 := uint16(2 * i)
		t0, b1, t1 := b0+1, b0+2, b0+3
		m.Indices = append(m.Indices, b0, b1, t1, b0, t1, t0)
	}
	return m, nil
}
