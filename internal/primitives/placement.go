package primitives

import "github.com/jakecoffman/cp"

// Placement is a rigid 2D transform: rotate by Angle (radians, counter-clockwise) then translate.
type Placement struct {
	Translation cp.Vector
	Angle       float64
}

// Identity returns the placement that leaves points unchanged.
func Identity() Placement {
	return Placement{}
}

// At returns a pure translation.
func At(x, y float64) Placement {
	return Placement{Translation: cp.Vector{X: x, Y: y}}
}

// Rotate applies only the rotational part to v.
func (p Placement) Rotate(v cp.Vector) cp.Vector {
	if p.Angle == 0 {
		return v
	}
	return v.Rotate(cp.ForAngle(p.Angle))
}

// Apply maps a point from the local frame into the parent frame.
func (p Placement) Apply(v cp.Vector) cp.Vector {
	return p.Rotate(v).Add(p.Translation)
}

// Translated returns p moved by d in the parent frame (rotation unchanged).
func (p Placement) Translated(d cp.Vector) Placement {
	return Placement{Translation: p.Translation.Add(d), Angle: p.Angle}
}

// Compose returns the placement of child (expressed in p's frame) in p's parent frame.
func (p Placement) Compose(child Placement) Placement {
	return Placement{
		Translation: p.Apply(child.Translation),
		Angle:       p.Angle + child.Angle,
	}
}
