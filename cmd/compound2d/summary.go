package main

import (
	"math"

	"compound2d/internal/logger"
	"compound2d/internal/physics"
)

// logSummary reports body counts, the shared cross's mass properties and the grid extent.
func logSummary(log *logger.Logger, world *physics.World) {
	var static, dynamic []*physics.Body
	for _, b := range world.Bodies() {
		if b.IsStatic() {
			static = append(static, b)
		} else {
			dynamic = append(dynamic, b)
		}
	}
	log.Logf("world: %d bodies (%d static, %d dynamic), gravity %v", world.Len(), len(static), len(dynamic), world.Gravity)
	if len(dynamic) == 0 {
		return
	}
	first, last := dynamic[0], dynamic[len(dynamic)-1]
	mp := first.Mass
	log.Logf("cross: %d parts, mass %.4f, center (%.4f, %.4f), inertia %.4f",
		first.Compound.Len(), mp.Mass, mp.Center.X, mp.Center.Y, mp.Inertia)
	log.Logf("grid: first body at %v, last body at %v", first.Placement.Translation, last.Placement.Translation)
}

// logMotion reports how far the grid has moved after stepping.
func logMotion(log *logger.Logger, world *physics.World) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	var moving int
	for _, b := range world.Bodies() {
		if b.IsStatic() {
			continue
		}
		y := b.Placement.Translation.Y
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		if b.Velocity.LengthSq() > 0 {
			moving++
		}
	}
	log.Logf("after %d steps: %d moving bodies, y range [%.2f, %.2f]", world.Steps(), moving, minY, maxY)
}
