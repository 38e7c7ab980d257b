package primitives

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MassProperties describes the dynamic response of a rigid shape.
// Center is expressed in the shape's own frame; Inertia is about Center.
type MassProperties struct {
	Mass    float64
	Center  cp.Vector
	Inertia float64
}

// InverseMass returns 1/Mass, or 0 for non-positive or infinite mass.
func (m MassProperties) InverseMass() float64 {
	if m.Mass <= 0 || math.IsInf(m.Mass, 1) {
		return 0
	}
	return 1 / m.Mass
}

// Transformed returns the properties as seen from a parent frame in which the shape sits at p.
// Only the center moves; a scalar 2D inertia about the center is unaffected by rotation.
func (m MassProperties) Transformed(p Placement) MassProperties {
	return MassProperties{
		Mass:    m.Mass,
		Center:  p.Apply(m.Center),
		Inertia: m.Inertia,
	}
}

// InertiaAbout returns the inertia about point o using the parallel-axis theorem.
func (m MassProperties) InertiaAbout(o cp.Vector) float64 {
	return m.Inertia + m.Mass*m.Center.DistanceSq(o)
}
