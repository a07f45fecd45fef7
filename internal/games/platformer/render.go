package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▒'
	TokenChar    = '●'
)

// Render draws the current state into a character screen, scaling world
// units to cells so the whole level always fits.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.Snapshot()
	sx := float64(dst.Width()) / snap.World.X
	sy := float64(dst.Height()) / snap.World.Y

	for _, p := range snap.Obstacles {
		dst.DrawRectColored(cellRect(p, sx, sy), PlatformChar, core.ColorPlatform)
	}

	for _, t := range snap.Tokens {
		if t.Collected {
			continue
		}
		cx := int(math.Floor(t.Center.X * sx))
		cy := int(math.Floor(t.Center.Y * sy))
		dst.SetColored(cx, cy, TokenChar, core.ColorToken)
	}

	dst.DrawRectColored(cellRect(snap.Body, sx, sy), PlayerChar, core.ColorPlayer)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorHUD)
	title := fmt.Sprintf(" %s ", g.Title())
	dst.DrawTextColored(dst.Width()-len([]rune(title))-2, 0, title, core.ColorGray)

	if snap.Cleared {
		dst.DrawTextCentered(1, " LEVEL CLEAR! Press R to play again ")
	}
	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// cellRect converts world bounds into the covering screen rectangle.
// Anything with area occupies at least one cell.
func cellRect(b core.Bounds, sx, sy float64) core.Rect {
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
