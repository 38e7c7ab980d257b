package graphics

import (
	"compound2d/internal/debug"
	"compound2d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window and the fixed-step loop.
type Options struct {
	Width         int
	Height        int
	Title         string
	Fullscreen    bool
	TargetFPS     int
	TimeStep      float64
	Iterations    uint
	Zoom          float64
	ShowFPS       bool
	ShowBodyCount bool
}

// Run starts the window and main loop. Each frame it calls update (e.g. a physics step), then
// clears the screen and calls draw. The window closes on ESC or the window button.
func Run(opts Options, update, draw func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
		rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(opts.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}

// Simulate builds a world through a fresh Renderer and runs it until the window closes.
// build runs before the window opens, so a construction error aborts startup without one.
func Simulate(build func(*Renderer) (*physics.World, error), opts Options) error {
	r := NewRenderer(opts.Zoom)
	world, err := build(r)
	if err != nil {
		return err
	}
	world.SetIterations(opts.Iterations)

	overlay := debug.New()
	overlay.SetShowFPS(opts.ShowFPS)
	overlay.SetShowBodyCount(opts.ShowBodyCount)

	update := func() {
		world.Step(opts.TimeStep)
	}
	draw := func() {
		r.Draw()
		overlay.Draw(world.Len(), world.Steps())
	}
	Run(opts, update, draw)
	return nil
}
