package physics

import (
	"errors"
	"fmt"
	"math"

	"compound2d/internal/compound"
	"compound2d/internal/primitives"

	"github.com/jakecoffman/cp"
)

// ErrInvalidMaterial is returned when restitution or friction is outside [0, 1].
var ErrInvalidMaterial = errors.New("invalid material coefficient")

// BodyKind says whether the solver integrates a body.
type BodyKind int

const (
	// Static bodies have infinite mass and never move once placed.
	Static BodyKind = iota
	// Dynamic bodies have finite mass and are integrated every step.
	Dynamic
)

func (k BodyKind) String() string {
	if k == Static {
		return "static"
	}
	return "dynamic"
}

// Body is a 2D rigid body. The same *Body is held by the World (simulation) and by the
// renderer (visualization); both see every placement update.
// A static body owns a single primitive; a dynamic body references a shared, read-only compound.
type Body struct {
	ID          int // assigned by World.AddBody, -1 until then
	Kind        BodyKind
	Primitive   primitives.Shape   // static bodies only
	Compound    *compound.Compound // dynamic bodies only
	Mass        primitives.MassProperties
	Restitution float64
	Friction    float64

	Placement       primitives.Placement
	Velocity        cp.Vector
	AngularVelocity float64

	handle *cp.Body // solver mirror, set when added to a World
}

// NewStatic returns an immovable body made of one primitive, at identity placement.
func NewStatic(shape primitives.Shape, restitution, friction float64) (*Body, error) {
	if shape == nil {
		return nil, fmt.Errorf("static body: %w: nil shape", compound.ErrInvalidShape)
	}
	if err := checkMaterial(restitution, friction); err != nil {
		return nil, err
	}
	return &Body{
		ID:          -1,
		Kind:        Static,
		Primitive:   shape,
		Mass:        primitives.MassProperties{Mass: math.Inf(1), Inertia: math.Inf(1)},
		Restitution: restitution,
		Friction:    friction,
	}, nil
}

// NewDynamic returns a body sharing shape, at identity placement. A nil mass derives the
// mass properties from the compound at density scale 1.
func NewDynamic(shape *compound.Compound, mass *primitives.MassProperties, restitution, friction float64) (*Body, error) {
	if shape == nil {
		return nil, fmt.Errorf("dynamic body: %w: nil compound", compound.ErrInvalidShape)
	}
	if err := checkMaterial(restitution, friction); err != nil {
		return nil, err
	}
	var mp primitives.MassProperties
	if mass != nil {
		mp = *mass
	} else {
		derived, err := shape.MassProperties(1)
		if err != nil {
			return nil, fmt.Errorf("dynamic body: %w", err)
		}
		mp = derived
	}
	if !(mp.Mass > 0) || math.IsInf(mp.Mass, 0) || !(mp.Inertia > 0) || math.IsInf(mp.Inertia, 0) {
		return nil, fmt.Errorf("dynamic body: %w: mass %v inertia %v", compound.ErrInvalidShape, mp.Mass, mp.Inertia)
	}
	return &Body{
		ID:          -1,
		Kind:        Dynamic,
		Compound:    shape,
		Mass:        mp,
		Restitution: restitution,
		Friction:    friction,
	}, nil
}

// AppendTranslation moves the body by d in world space. Once a dynamic body is in a World the
// solver is moved with it; a static body should be placed before it is added.
func (b *Body) AppendTranslation(d cp.Vector) {
	b.Placement = b.Placement.Translated(d)
	if b.handle != nil && !b.IsStatic() {
		b.handle.SetPosition(b.solverPosition())
	}
}

// solverPosition is the world position of the center of mass, where the solver body sits.
func (b *Body) solverPosition() cp.Vector {
	if b.IsStatic() {
		return b.Placement.Translation
	}
	return b.Placement.Apply(b.Mass.Center)
}

// IsStatic reports whether the solver leaves this body in place.
func (b *Body) IsStatic() bool {
	return b.Kind == Static
}

func checkMaterial(restitution, friction float64) error {
	if !(restitution >= 0 && restitution <= 1) {
		return fmt.Errorf("%w: restitution %v not in [0,1]", ErrInvalidMaterial, restitution)
	}
	if !(friction >= 0 && friction <= 1) {
		return fmt.Errorf("%w: friction %v not in [0,1]", ErrInvalidMaterial, friction)
	}
	return nil
}
