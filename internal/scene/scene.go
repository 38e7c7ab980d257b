package scene

import (
	"errors"
	"fmt"

	"compound2d/internal/compound"
	"compound2d/internal/physics"
	"compound2d/internal/primitives"

	"github.com/jakecoffman/cp"
)

// ErrInvalidGridParameters is returned for a non-positive radius or an empty grid.
var ErrInvalidGridParameters = errors.New("invalid grid parameters")

// Binding receives every body created for the scene, e.g. a renderer. Many bodies share one
// compound, so implementations must not assume unique geometry per body.
type Binding interface {
	Add(b *physics.Body)
}

// Recorder is a Binding that keeps the registered bodies in order. Used for headless runs.
type Recorder struct {
	Bodies []*physics.Body
}

// Add implements Binding.
func (r *Recorder) Add(b *physics.Body) {
	r.Bodies = append(r.Bodies, b)
}

// Params describes the compound demo scene. DefaultParams reproduces it exactly.
type Params struct {
	// Gravity is in screen coordinates (y grows downward), so positive y pulls bodies down.
	Gravity      cp.Vector
	PlaneNormals []cp.Vector
	PlaneOffset  cp.Vector
	Restitution  float64
	Friction     float64
	CrossParts   []compound.Part
	DensityScale float64
	Grid         GridOptions
}

// DefaultParams returns the two inclined planes and the 27×27 grid of crosses.
func DefaultParams() Params {
	return Params{
		Gravity:      cp.Vector{X: 0, Y: 9.81},
		PlaneNormals: []cp.Vector{{X: -1, Y: -1}, {X: 1, Y: -1}},
		PlaneOffset:  cp.Vector{X: 0, Y: 10},
		Restitution:  0.6,
		Friction:     0.3,
		CrossParts:   CrossParts(),
		DensityScale: 1,
		Grid:         DefaultGridOptions(),
	}
}

// CrossParts returns the three boxes of the cross: one bar under two posts, density 1.
func CrossParts() []compound.Part {
	bar := primitives.Box{HalfExtents: cp.Vector{X: 5, Y: 0.75}}
	post := primitives.Box{HalfExtents: cp.Vector{X: 0.75, Y: 5}}
	return []compound.Part{
		{Placement: primitives.At(0, -5), Shape: bar, Density: 1},
		{Placement: primitives.At(-5, 0), Shape: post, Density: 1},
		{Placement: primitives.At(5, 0), Shape: post, Density: 1},
	}
}

// Build assembles the default scene, registering every body with b.
func Build(b Binding) (*physics.World, error) {
	return BuildWithParams(DefaultParams(), b)
}

// BuildWithParams creates every body first and only then registers them, so a failure leaves
// b untouched and returns no world. Registration order is planes, then grid cells row-major.
func BuildWithParams(p Params, b Binding) (*physics.World, error) {
	planes := make([]*physics.Body, 0, len(p.PlaneNormals))
	for _, n := range p.PlaneNormals {
		plane, err := primitives.NewPlane(n)
		if err != nil {
			return nil, fmt.Errorf("boundary plane: %w", err)
		}
		body, err := physics.NewStatic(plane, p.Restitution, p.Friction)
		if err != nil {
			return nil, fmt.Errorf("boundary plane: %w", err)
		}
		body.AppendTranslation(p.PlaneOffset)
		planes = append(planes, body)
	}

	cross, mass, err := compound.Aggregate(p.CrossParts, p.DensityScale)
	if err != nil {
		return nil, fmt.Errorf("cross shape: %w", err)
	}

	cells, err := p.Grid.Placements()
	if err != nil {
		return nil, err
	}
	grid := make([]*physics.Body, 0, len(cells))
	for _, at := range cells {
		body, err := physics.NewDynamic(cross, &mass, p.Restitution, p.Friction)
		if err != nil {
			return nil, fmt.Errorf("grid body: %w", err)
		}
		body.AppendTranslation(at)
		grid = append(grid, body)
	}

	world := physics.NewWorld()
	world.SetGravity(p.Gravity)
	for _, body := range append(planes, grid...) {
		world.AddBody(body)
		if b != nil {
			b.Add(body)
		}
	}
	return world, nil
}
