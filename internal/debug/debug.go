package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the on-screen overlays (FPS, body/step count). All overlays are off by default.
type Debug struct {
	ShowFPS       bool
	ShowBodyCount bool
	frameCount    uint32
	lastFpsText   string
	lastBodyText  string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowBodyCount sets whether the body and step counters are drawn (top-right, under FPS).
func (d *Debug) SetShowBodyCount(show bool) {
	d.ShowBodyCount = show
}

// Draw renders any enabled overlays in screen space. Call after the scene in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(bodies, steps int) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowBodyCount && d.lastBodyText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}

	if d.ShowBodyCount {
		if update {
			d.lastBodyText = fmt.Sprintf("Bodies: %d  Steps: %d", bodies, steps)
		}
		drawRight(d.lastBodyText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
