package primitives

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	// ErrInvalidGeometry is returned by constructors for degenerate shape parameters.
	ErrInvalidGeometry = errors.New("invalid primitive geometry")
	// ErrUnbounded is returned when mass properties are requested for a shape with infinite area (e.g. a plane).
	ErrUnbounded = errors.New("primitive has no finite mass properties")
	// ErrInvalidDensity is returned for a density that is not a positive finite number.
	ErrInvalidDensity = errors.New("density must be positive")
)

// Kind tags a primitive shape so callers (renderer, physics mirror) can switch on it.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
)

// String returns the lowercase type name ("plane", "box").
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Shape is a convex primitive. Implementations are immutable values.
type Shape interface {
	Kind() Kind
	// MassProperties returns mass, centroid (in the shape's own frame) and inertia about the centroid.
	MassProperties(density float64) (MassProperties, error)
}

// Plane is an infinite half-plane through the local origin. Normal points out of the solid side.
type Plane struct {
	Normal cp.Vector
}

// NewPlane returns a plane with the given outward normal. The normal is stored normalized.
func NewPlane(normal cp.Vector) (Plane, error) {
	l := normal.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Plane{}, fmt.Errorf("plane normal %v: %w", normal, ErrInvalidGeometry)
	}
	return Plane{Normal: normal.Mult(1 / l)}, nil
}

func (Plane) Kind() Kind { return KindPlane }

// MassProperties always fails: a plane has unbounded area, so it can only back a static body.
func (p Plane) MassProperties(density float64) (MassProperties, error) {
	return MassProperties{}, ErrUnbounded
}

// Direction returns the unit tangent of the boundary line (normal rotated by +90°).
func (p Plane) Direction() cp.Vector {
	return p.Normal.Perp()
}

// Box is an axis-aligned rectangle centered on the local origin.
type Box struct {
	HalfExtents cp.Vector
}

// NewBox returns a box with the given half extents. Both must be positive.
func NewBox(halfExtents cp.Vector) (Box, error) {
	if !(halfExtents.X > 0) || !(halfExtents.Y > 0) || math.IsInf(halfExtents.X, 0) || math.IsInf(halfExtents.Y, 0) {
		return Box{}, fmt.Errorf("box half extents %v: %w", halfExtents, ErrInvalidGeometry)
	}
	return Box{HalfExtents: halfExtents}, nil
}

func (Box) Kind() Kind { return KindBox }

// Width and Height are the full extents.
func (b Box) Width() float64  { return 2 * b.HalfExtents.X }
func (b Box) Height() float64 { return 2 * b.HalfExtents.Y }

// Vertices returns the four corners counter-clockwise, starting bottom-left.
func (b Box) Vertices() []cp.Vector {
	hx, hy := b.HalfExtents.X, b.HalfExtents.Y
	return []cp.Vector{
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
	}
}

// MassProperties uses the closed-form rectangle formulas: m = w·h·ρ, I = m(w²+h²)/12.
func (b Box) MassProperties(density float64) (MassProperties, error) {
	if err := checkDensity(density); err != nil {
		return MassProperties{}, err
	}
	verts := b.Vertices()
	mass := cp.AreaForPoly(len(verts), verts, 0) * density
	return MassProperties{
		Mass:    mass,
		Center:  cp.Vector{},
		Inertia: cp.MomentForBox(mass, b.Width(), b.Height()),
	}, nil
}

func checkDensity(density float64) error {
	if !(density > 0) || math.IsInf(density, 0) {
		return fmt.Errorf("density %v: %w", density, ErrInvalidDensity)
	}
	return nil
}
