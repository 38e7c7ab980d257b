package physics

import (
	"compound2d/internal/primitives"

	"github.com/jakecoffman/cp"
)

// planeExtent is the half length of the segment standing in for an unbounded plane in the solver.
const planeExtent = 1e4

// defaultIterations matches the solver's own default.
const defaultIterations = 10

// World holds the bodies of a scene and the gravity they fall under. Step advances them with
// a chipmunk space that mirrors every added body; the *Body values stay the source of truth
// for placement and are refreshed after each step.
// Each solver body has its origin at the body's center of mass, so its position is the
// placed center and its shapes are shifted by -Mass.Center.
type World struct {
	Gravity cp.Vector
	bodies  []*Body
	space   *cp.Space
	steps   int
}

// NewWorld returns an empty world with zero gravity.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	return &World{space: space}
}

// SetGravity sets the gravity vector. The scene uses screen coordinates, so (0, 9.81) points down.
func (w *World) SetGravity(g cp.Vector) {
	w.Gravity = g
	w.space.SetGravity(g)
}

// SetIterations sets the number of solver iterations per step. Zero is ignored.
func (w *World) SetIterations(n uint) {
	if n == 0 {
		return
	}
	w.space.Iterations = n
}

// AddBody appends a body and assigns its ID. Order is preserved for syncing with the renderer.
// The body is mirrored into the solver at its current placement; a static body must be placed
// before it is added.
func (w *World) AddBody(b *Body) {
	b.ID = len(w.bodies)
	w.bodies = append(w.bodies, b)
	w.mirror(b)
}

// Bodies returns the bodies in insertion order. The slice is shared; do not append to it.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Steps returns how many times Step has run.
func (w *World) Steps() int {
	return w.steps
}

// Step advances the simulation by dt seconds and copies the solver state back into the bodies.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
	w.steps++
	for _, b := range w.bodies {
		if b.IsStatic() || b.handle == nil {
			continue
		}
		b.Placement = placementFromSolver(b.handle.Position(), b.handle.Angle(), b.Mass.Center)
		b.Velocity = b.handle.Velocity()
		b.AngularVelocity = b.handle.AngularVelocity()
	}
}

func (w *World) mirror(b *Body) {
	var h *cp.Body
	if b.IsStatic() {
		h = cp.NewStaticBody()
	} else {
		h = cp.NewBody(b.Mass.Mass, b.Mass.Inertia)
	}
	h.SetAngle(b.Placement.Angle)
	h.SetPosition(b.solverPosition())
	if !b.IsStatic() {
		h.SetVelocityVector(b.Velocity)
		h.SetAngularVelocity(b.AngularVelocity)
	}
	w.space.AddBody(h)

	if b.IsStatic() {
		w.addShape(b, solverShape(h, primitives.Identity(), b.Primitive))
	} else {
		shift := primitives.At(-b.Mass.Center.X, -b.Mass.Center.Y)
		for i := 0; i < b.Compound.Len(); i++ {
			part := b.Compound.Part(i)
			w.addShape(b, solverShape(h, shift.Compose(part.Placement), part.Shape))
		}
	}
	b.handle = h
}

func (w *World) addShape(b *Body, s *cp.Shape) {
	if s == nil {
		return
	}
	s.SetElasticity(b.Restitution)
	s.SetFriction(b.Friction)
	w.space.AddShape(s)
}

// solverShape builds the chipmunk shape for one primitive placed at local inside body h.
func solverShape(h *cp.Body, local primitives.Placement, shape primitives.Shape) *cp.Shape {
	switch s := shape.(type) {
	case primitives.Plane:
		dir := local.Rotate(s.Direction())
		a := local.Apply(dir.Mult(-planeExtent))
		z := local.Apply(dir.Mult(planeExtent))
		return cp.NewSegment(h, a, z, 0)
	case primitives.Box:
		verts := s.Vertices()
		for i := range verts {
			verts[i] = local.Apply(verts[i])
		}
		return cp.NewPolyShape(h, len(verts), verts, cp.NewTransformIdentity(), 0)
	default:
		return nil
	}
}

// placementFromSolver recovers a body placement from the solver position of its center of mass.
func placementFromSolver(pos cp.Vector, angle float64, center cp.Vector) primitives.Placement {
	p := primitives.Placement{Angle: angle}
	p.Translation = pos.Sub(p.Rotate(center))
	return p
}
