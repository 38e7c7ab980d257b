package scene

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Grid layout constants. The scene layout depends on these exact values.
const (
	// DefaultTargetCount is the nominal body count; the grid side is floor(sqrt(750)) = 27,
	// so the scene holds 729 grid bodies, not 750.
	DefaultTargetCount = 750
	// DefaultRadius is the nominal cross radius; cell pitch is PitchPerRadius times this.
	DefaultRadius  = 5.0
	PitchPerRadius = 2.5
	// VerticalCenterFactor doubles the y centering offset and VerticalBias shifts the grid
	// further up. Neither has an x counterpart; the grid starts well above the planes.
	VerticalCenterFactor = 2.0
	VerticalBias         = -250.0
	// MaxTargetCount bounds the grid so the placement slice can always be allocated.
	MaxTargetCount = 1 << 24
)

// GridOptions controls the square grid of dynamic bodies.
// TargetCount is rounded down to the nearest perfect square via the square root.
type GridOptions struct {
	TargetCount int
	Radius      float64
}

// DefaultGridOptions returns the 27×27 layout of the demo scene.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		TargetCount: DefaultTargetCount,
		Radius:      DefaultRadius,
	}
}

// Side returns the number of cells per row and column: floor(sqrt(TargetCount)).
func (o GridOptions) Side() int {
	if o.TargetCount <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(o.TargetCount)))
}

// Pitch is the distance between neighbouring cell origins.
func (o GridOptions) Pitch() float64 {
	return PitchPerRadius * o.Radius
}

// Validate fails with ErrInvalidGridParameters for a non-positive radius, an empty grid or a
// TargetCount above MaxTargetCount.
func (o GridOptions) Validate() error {
	if !(o.Radius > 0) || math.IsInf(o.Radius, 0) {
		return fmt.Errorf("%w: radius %v", ErrInvalidGridParameters, o.Radius)
	}
	if o.TargetCount > MaxTargetCount {
		return fmt.Errorf("%w: target count %d exceeds %d", ErrInvalidGridParameters, o.TargetCount, MaxTargetCount)
	}
	if o.Side() <= 0 {
		return fmt.Errorf("%w: target count %d gives an empty grid", ErrInvalidGridParameters, o.TargetCount)
	}
	return nil
}

// Placements returns the world translation of every cell, i (x) outer and j (y) inner.
// The grid is centered on x; on y the centering offset is doubled and biased (see VerticalBias).
func (o GridOptions) Placements() ([]cp.Vector, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	n := o.Side()
	pitch := o.Pitch()
	centerX := pitch * float64(n) / 2
	centerY := pitch * float64(n) / 2

	out := make([]cp.Vector, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := float64(i)*pitch - centerX
			y := float64(j)*pitch - centerY*VerticalCenterFactor + VerticalBias
			out = append(out, cp.Vector{X: x, Y: y})
		}
	}
	return out, nil
}
