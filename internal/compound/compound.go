package compound

import (
	"errors"
	"fmt"
	"math"

	"compound2d/internal/primitives"

	"github.com/jakecoffman/cp"
)

// ErrInvalidShape is returned for an empty part list, a non-positive density, or a part
// whose primitive has no finite mass properties.
var ErrInvalidShape = errors.New("invalid compound shape")

// Part is one primitive of a compound, placed in the compound's own frame.
type Part struct {
	Placement primitives.Placement
	Shape     primitives.Shape
	Density   float64
}

// Compound is an ordered, non-empty set of parts acting as one collidable shape.
// It is immutable after New and is shared by pointer between every body that uses it.
type Compound struct {
	parts []Part
}

// New validates parts and returns a compound holding a private copy of them.
func New(parts ...Part) (*Compound, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no parts", ErrInvalidShape)
	}
	for i, p := range parts {
		if p.Shape == nil {
			return nil, fmt.Errorf("%w: part %d has no shape", ErrInvalidShape, i)
		}
		if !(p.Density > 0) || math.IsInf(p.Density, 0) {
			return nil, fmt.Errorf("%w: part %d density %v", ErrInvalidShape, i, p.Density)
		}
		if _, err := p.Shape.MassProperties(p.Density); err != nil {
			return nil, fmt.Errorf("%w: part %d (%s): %v", ErrInvalidShape, i, p.Shape.Kind(), err)
		}
	}
	own := make([]Part, len(parts))
	copy(own, parts)
	return &Compound{parts: own}, nil
}

// Aggregate builds the compound and its mass properties at the given density scale in one call.
func Aggregate(parts []Part, scale float64) (*Compound, primitives.MassProperties, error) {
	c, err := New(parts...)
	if err != nil {
		return nil, primitives.MassProperties{}, err
	}
	mp, err := c.MassProperties(scale)
	if err != nil {
		return nil, primitives.MassProperties{}, err
	}
	return c, mp, nil
}

// Len returns the number of parts.
func (c *Compound) Len() int { return len(c.parts) }

// Part returns the i-th part without copying the whole list.
func (c *Compound) Part(i int) Part { return c.parts[i] }

// Parts returns a copy of the parts in construction order.
func (c *Compound) Parts() []Part {
	out := make([]Part, len(c.parts))
	copy(out, c.parts)
	return out
}

// MassProperties sums the parts at density·scale: mass adds, the center is the mass-weighted
// mean of the placed part centers, and inertia is taken about that center (parallel axis).
func (c *Compound) MassProperties(scale float64) (primitives.MassProperties, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return primitives.MassProperties{}, fmt.Errorf("%w: density scale %v", ErrInvalidShape, scale)
	}

	placed := make([]primitives.MassProperties, len(c.parts))
	var mass float64
	var moment cp.Vector
	for i, p := range c.parts {
		mp, err := p.Shape.MassProperties(p.Density * scale)
		if err != nil {
			return primitives.MassProperties{}, fmt.Errorf("%w: part %d: %v", ErrInvalidShape, i, err)
		}
		placed[i] = mp.Transformed(p.Placement)
		mass += placed[i].Mass
		moment = moment.Add(placed[i].Center.Mult(placed[i].Mass))
	}

	center := moment.Mult(1 / mass)
	var inertia float64
	for _, mp := range placed {
		inertia += mp.InertiaAbout(center)
	}
	return primitives.MassProperties{Mass: mass, Center: center, Inertia: inertia}, nil
}

// Bounds returns the bounding box of all bounded parts in the compound's frame.
func (c *Compound) Bounds() cp.BB {
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, p := range c.parts {
		box, ok := p.Shape.(primitives.Box)
		if !ok {
			continue
		}
		for _, v := range box.Vertices() {
			w := p.Placement.Apply(v)
			bb.L = math.Min(bb.L, w.X)
			bb.B = math.Min(bb.B, w.Y)
			bb.R = math.Max(bb.R, w.X)
			bb.T = math.Max(bb.T, w.Y)
		}
	}
	return bb
}
