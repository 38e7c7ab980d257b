package scene

import (
	"errors"
	"math"
	"testing"

	"compound2d/internal/compound"
	"compound2d/internal/physics"
	"compound2d/internal/primitives"

	"github.com/jakecoffman/cp"
)

func TestGridCorners(t *testing.T) {
	opts := DefaultGridOptions()
	if opts.Side() != 27 {
		t.Fatalf("Expected side 27, got %d", opts.Side())
	}
	if opts.Pitch() != 12.5 {
		t.Fatalf("Expected pitch 12.5, got %v", opts.Pitch())
	}

	cells, err := opts.Placements()
	if err != nil {
		t.Fatalf("Placements: %v", err)
	}
	if len(cells) != 27*27 {
		t.Fatalf("Expected %d cells, got %d", 27*27, len(cells))
	}
	if first := cells[0]; first != (cp.Vector{X: -168.75, Y: -587.5}) {
		t.Errorf("Cell (0,0): expected (-168.75, -587.5), got %v", first)
	}
	if last := cells[len(cells)-1]; last != (cp.Vector{X: 156.25, Y: -262.5}) {
		t.Errorf("Cell (26,26): expected (156.25, -262.5), got %v", last)
	}
	// j is the inner loop: the second cell is one pitch further along y.
	if second := cells[1]; second != (cp.Vector{X: -168.75, Y: -575}) {
		t.Errorf("Cell (0,1): expected (-168.75, -575), got %v", second)
	}
	if row := cells[27]; row != (cp.Vector{X: -156.25, Y: -587.5}) {
		t.Errorf("Cell (1,0): expected (-156.25, -587.5), got %v", row)
	}
}

func TestGridSide(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"Demo", 750, 27},
		{"Perfect square", 16, 4},
		{"Just above square", 17, 4},
		{"Just below square", 24, 4},
		{"Single", 1, 1},
		{"Empty", 0, 0},
		{"Negative", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridOptions{TargetCount: tt.target, Radius: 1}.Side()
			if got != tt.want {
				t.Errorf("Expected side %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBuildDefaultScene(t *testing.T) {
	rec := &Recorder{}
	world, err := Build(rec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	const n = 27
	if world.Len() != n*n+2 {
		t.Fatalf("Expected %d bodies, got %d", n*n+2, world.Len())
	}
	if len(rec.Bodies) != world.Len() {
		t.Fatalf("Binding saw %d bodies, world has %d", len(rec.Bodies), world.Len())
	}
	if world.Gravity != (cp.Vector{X: 0, Y: 9.81}) {
		t.Errorf("Expected gravity (0, 9.81), got %v", world.Gravity)
	}

	bodies := world.Bodies()
	for i, b := range bodies {
		if rec.Bodies[i] != b {
			t.Fatalf("Body %d: binding and world hold different instances", i)
		}
	}

	wantNormals := []cp.Vector{
		{X: -1 / math.Sqrt2, Y: -1 / math.Sqrt2},
		{X: 1 / math.Sqrt2, Y: -1 / math.Sqrt2},
	}
	for i, b := range bodies[:2] {
		if !b.IsStatic() {
			t.Errorf("Body %d should be a static plane", i)
		}
		plane, ok := b.Primitive.(primitives.Plane)
		if !ok {
			t.Fatalf("Plane %d primitive is %T", i, b.Primitive)
		}
		if plane.Normal.Distance(wantNormals[i]) > 1e-12 {
			t.Errorf("Plane %d normal %v, expected %v", i, plane.Normal, wantNormals[i])
		}
		if b.Placement.Translation != (cp.Vector{X: 0, Y: 10}) {
			t.Errorf("Plane %d at %v, expected (0,10)", i, b.Placement.Translation)
		}
		if b.Friction != 0.3 || b.Restitution != 0.6 {
			t.Errorf("Plane %d material: friction %v restitution %v", i, b.Friction, b.Restitution)
		}
	}

	shared := bodies[2].Compound
	for _, b := range bodies[2:] {
		if b.IsStatic() {
			t.Fatalf("Grid body %d is static", b.ID)
		}
		if b.Compound != shared {
			t.Fatalf("Grid body %d does not share the cross shape", b.ID)
		}
		if b.Friction != 0.3 || b.Restitution != 0.6 {
			t.Fatalf("Grid body %d material: friction %v restitution %v", b.ID, b.Friction, b.Restitution)
		}
	}
	if got := bodies[2].Placement.Translation; got != (cp.Vector{X: -168.75, Y: -587.5}) {
		t.Errorf("First grid body at %v", got)
	}
	if got := bodies[len(bodies)-1].Placement.Translation; got != (cp.Vector{X: 156.25, Y: -262.5}) {
		t.Errorf("Last grid body at %v", got)
	}
	if m := bodies[2].Mass; math.Abs(m.Mass-45) > 1e-9 || math.Abs(m.Inertia-1383.4375) > 1e-9 {
		t.Errorf("Unexpected cross mass properties %+v", m)
	}
}

func TestBuildBodyCount(t *testing.T) {
	for _, target := range []int{1, 4, 10, 100} {
		p := DefaultParams()
		p.Grid.TargetCount = target
		world, err := BuildWithParams(p, nil)
		if err != nil {
			t.Fatalf("target %d: %v", target, err)
		}
		n := p.Grid.Side()
		if world.Len() != n*n+2 {
			t.Errorf("target %d: expected %d bodies, got %d", target, n*n+2, world.Len())
		}
	}
}

func TestBuildFailuresRegisterNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
		want   error
	}{
		{"Empty cross", func(p *Params) { p.CrossParts = nil }, compound.ErrInvalidShape},
		{"Zero density", func(p *Params) { p.CrossParts[1].Density = 0 }, compound.ErrInvalidShape},
		{"Zero radius", func(p *Params) { p.Grid.Radius = 0 }, ErrInvalidGridParameters},
		{"Negative radius", func(p *Params) { p.Grid.Radius = -5 }, ErrInvalidGridParameters},
		{"Empty grid", func(p *Params) { p.Grid.TargetCount = 0 }, ErrInvalidGridParameters},
		{"Huge grid", func(p *Params) { p.Grid.TargetCount = math.MaxInt }, ErrInvalidGridParameters},
		{"Just above max grid", func(p *Params) { p.Grid.TargetCount = MaxTargetCount + 1 }, ErrInvalidGridParameters},
		{"Bad friction", func(p *Params) { p.Friction = 1.5 }, physics.ErrInvalidMaterial},
		{"Bad restitution", func(p *Params) { p.Restitution = -0.1 }, physics.ErrInvalidMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			rec := &Recorder{}
			world, err := BuildWithParams(p, rec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if world != nil {
				t.Error("Expected no world on failure")
			}
			if len(rec.Bodies) != 0 {
				t.Errorf("Expected zero registrations, got %d", len(rec.Bodies))
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(&Recorder{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("Body counts differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Bodies() {
		x, y := a.Bodies()[i], b.Bodies()[i]
		if x.Placement != y.Placement {
			t.Errorf("Body %d placement differs: %+v vs %+v", i, x.Placement, y.Placement)
		}
		if x.Kind == physics.Dynamic && x.Mass != y.Mass {
			t.Errorf("Body %d mass differs: %+v vs %+v", i, x.Mass, y.Mass)
		}
	}
	if a.Bodies()[2].Compound == b.Bodies()[2].Compound {
		t.Error("Separate builds must not share a compound")
	}
}
