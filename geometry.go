package grove

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Geometry is a drawable leaf attached to an Object. A single flat struct is
// used for every kind of geometry; the vertex data alone decides what is drawn.
type Geometry struct {
	// Identity
	ID   uint32
	Name string

	// Hidden hides this geometry in the views whose bits are set. The owning
	// object's mask is checked first.
	Hidden ViewMask

	// Local-space triangle data. UVs, when present, are texel coordinates
	// into Image and must match Vertices in length.
	Vertices  []Vec3
	UVs       []mgl64.Vec2
	Indices   []uint16
	Color     Color
	BlendMode BlendMode
	Image     *ebiten.Image

	// OnProject is called after each projection with the new world matrix.
	OnProject func(g *Geometry, world Mat4)
	// OnDispose is called once when the geometry is disposed.
	OnDispose func(g *Geometry)

	object      *Object
	dirty       bool
	world       Mat4
	worldVerts  []Vec3 // preallocated, high-water mark
	projections int
	disposed    bool
}

// NewGeometry creates geometry from local-space triangles.
func NewGeometry(name string, vertices []Vec3, indices []uint16) *Geometry {
	return &Geometry{
		ID:       nextID(),
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Color:    ColorWhite,
		world:    Identity(),
		dirty:    true,
	}
}

// NewQuad creates a w by h rectangle in the XY plane centered on the origin.
func NewQuad(name string, w, h float64) *Geometry {
	hw, hh := w/2, h/2
	return NewGeometry(name,
		[]Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}},
		[]uint16{0, 1, 2, 0, 2, 3},
	)
}

// NewBox creates an axis-aligned w by h by d box centered on the origin.
func NewBox(name string, w, h, d float64) *Geometry {
	hw, hh, hd := w/2, h/2, d/2
	verts := []Vec3{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd},
		{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd},
	}
	inds := []uint16{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
	}
	return NewGeometry(name, verts, inds)
}

// Object returns the owning object, or nil when detached.
func (g *Geometry) Object() *Object {
	return g.object
}

// IsDirty reports whether derived render state needs refreshing.
func (g *Geometry) IsDirty() bool {
	return g.dirty
}

// MarkClean clears the dirty flag. Renderers call this after refreshing
// derived buffers.
func (g *Geometry) MarkClean() {
	g.dirty = false
}

// World returns the matrix from the most recent projection.
func (g *Geometry) World() Mat4 {
	return g.world
}

// WorldVertices returns Vertices transformed by the most recent projection.
// The returned slice MUST NOT be mutated and is overwritten on the next
// projection.
func (g *Geometry) WorldVertices() []Vec3 {
	return g.worldVerts
}

// IsDisposed returns true if this geometry has been disposed.
func (g *Geometry) IsDisposed() bool {
	return g.disposed
}

// Project stores world and transforms the vertices into world space.
func (g *Geometry) Project(world Mat4) {
	g.world = world
	g.projections++
	dst := g.ensureWorldVerts()
	for i, v := range g.Vertices {
		dst[i] = TransformPoint(world, v)
	}
	if g.OnProject != nil {
		g.OnProject(g, world)
	}
}

// Dispose detaches g from its owner, marking the owner dirty, and releases it.
func (g *Geometry) Dispose() {
	if g.disposed {
		return
	}
	if g.object != nil {
		attachGeometry(nil, g)
	}
	g.disposed = true
	if g.OnDispose != nil {
		g.OnDispose(g)
	}
	g.worldVerts = nil
	g.Image = nil
	g.OnProject = nil
	g.OnDispose = nil
}

// ensureWorldVerts grows the world vertex buffer to len(g.Vertices) without
// ever shrinking it.
func (g *Geometry) ensureWorldVerts() []Vec3 {
	need := len(g.Vertices)
	if cap(g.worldVerts) < need {
		g.worldVerts = make([]Vec3, need)
	}
	g.worldVerts = g.worldVerts[:need]
	return g.worldVerts
}

// --- White pixel singleton (no sync.Once, grove is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by untextured geometry.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
