package graphics

import (
	"math"

	"compound2d/internal/physics"
	"compound2d/internal/primitives"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// planeDrawLength is how far a plane line extends either side of its anchor, in world units.
	planeDrawLength = 2000
	planeThickness  = 2
	// fitMargin leaves a border around the scene when the camera is fitted.
	fitMargin = 0.9
)

var (
	backgroundColor = rl.NewColor(18, 18, 24, 255)
	planeColor      = rl.NewColor(200, 200, 200, 255)
	// bodyPalette is cycled by body ID so neighbouring crosses are easy to tell apart.
	bodyPalette = []rl.Color{
		rl.NewColor(230, 120, 80, 255),
		rl.NewColor(90, 170, 230, 255),
		rl.NewColor(120, 210, 120, 255),
		rl.NewColor(230, 200, 90, 255),
		rl.NewColor(190, 120, 220, 255),
	}
)

// Renderer draws registered bodies with a 2D camera. It implements scene.Binding: Add only keeps
// a reference, so the world and the renderer always see the same placement.
// The scene uses screen orientation (y grows downward), so no axis flip is applied.
type Renderer struct {
	bodies []*physics.Body
	camera rl.Camera2D
	zoom   float32
	fitted bool
}

// NewRenderer returns a renderer with no bodies. zoom multiplies the fitted camera zoom (0 → 1).
func NewRenderer(zoom float64) *Renderer {
	if zoom <= 0 {
		zoom = 1
	}
	return &Renderer{zoom: float32(zoom)}
}

// Add registers a body for drawing. Bodies sharing a compound are fine.
func (r *Renderer) Add(b *physics.Body) {
	r.bodies = append(r.bodies, b)
}

// Len returns the number of registered bodies.
func (r *Renderer) Len() int {
	return len(r.bodies)
}

// Draw renders all bodies. Call between BeginDrawing and EndDrawing.
// The camera is fitted to the registered bodies on the first call (window size is known by then).
func (r *Renderer) Draw() {
	if !r.fitted {
		r.fitCamera()
		r.fitted = true
	}
	rl.BeginMode2D(r.camera)
	for _, b := range r.bodies {
		if b.IsStatic() {
			drawStatic(b)
			continue
		}
		drawDynamic(b, bodyPalette[b.ID%len(bodyPalette)])
	}
	rl.EndMode2D()
}

// fitCamera centers the camera on the bounds of all finite geometry.
func (r *Renderer) fitCamera() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range r.bodies {
		if b.IsStatic() || b.Compound == nil {
			t := b.Placement.Translation
			minX, minY = math.Min(minX, t.X), math.Min(minY, t.Y)
			maxX, maxY = math.Max(maxX, t.X), math.Max(maxY, t.Y)
			continue
		}
		bb := b.Compound.Bounds()
		t := b.Placement.Translation
		minX, minY = math.Min(minX, t.X+bb.L), math.Min(minY, t.Y+bb.B)
		maxX, maxY = math.Max(maxX, t.X+bb.R), math.Max(maxY, t.Y+bb.T)
	}

	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	r.camera = rl.Camera2D{Offset: rl.NewVector2(sw/2, sh/2), Zoom: r.zoom}
	if len(r.bodies) == 0 || maxX <= minX || maxY <= minY {
		return
	}
	w, h := float32(maxX-minX), float32(maxY-minY)
	r.camera.Target = rl.NewVector2(float32(minX+maxX)/2, float32(minY+maxY)/2)
	r.camera.Zoom = math32.Min(sw/w, sh/h) * fitMargin * r.zoom
}

func drawStatic(b *physics.Body) {
	plane, ok := b.Primitive.(primitives.Plane)
	if !ok {
		return
	}
	p := b.Placement.Translation
	d := b.Placement.Rotate(plane.Direction())
	dx, dy := float32(d.X), float32(d.Y)
	n := math32.Hypot(dx, dy)
	dx, dy = dx/n*planeDrawLength, dy/n*planeDrawLength
	start := rl.NewVector2(float32(p.X)-dx, float32(p.Y)-dy)
	end := rl.NewVector2(float32(p.X)+dx, float32(p.Y)+dy)
	rl.DrawLineEx(start, end, planeThickness, planeColor)
}

func drawDynamic(b *physics.Body, color rl.Color) {
	for i := 0; i < b.Compound.Len(); i++ {
		part := b.Compound.Part(i)
		box, ok := part.Shape.(primitives.Box)
		if !ok {
			continue
		}
		at := b.Placement.Compose(part.Placement)
		w, h := float32(box.Width()), float32(box.Height())
		rec := rl.NewRectangle(float32(at.Translation.X), float32(at.Translation.Y), w, h)
		rl.DrawRectanglePro(rec, rl.NewVector2(w/2, h/2), float32(at.Angle)*rl.Rad2deg, color)
	}
}
