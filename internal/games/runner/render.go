package runner

import (
	"fmt"

	"github.com/vovakirdan/birthday-runner/internal/core"
)

// Overlay texts
const (
	StartText     = "Please Press Space Key or Click!"
	GameOverText  = "Game Over!"
	GameClearText = "Happy Birthday uzimaru!"
	PausedText    = "PAUSED"
)

// Minimum terminal size for drawing the canvas
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Render draws the current game state to the screen.
// The canvas is scaled to fill the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	p := g.sim.Params()
	sx := float64(dst.Width()) / float64(p.CanvasW)
	sy := float64(dst.Height()) / float64(p.CanvasH)
	st := g.state

	// Ground sits under the player's feet
	groundRow := core.Clamp(int(float64(p.GroundY+st.Player.H)*sy), 0, dst.Height()-1)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	switch st.Kind {
	case KindStart:
		g.drawEntity(dst, st.Player, sx, sy)
		g.drawCenteredMessage(dst, StartText, "Space / Up / Click to jump")
	case KindRunning, KindJumping:
		for _, e := range st.Enemies {
			g.drawEntity(dst, e, sx, sy)
		}
		g.drawEntity(dst, st.Player, sx, sy)
	case KindGameOver:
		for _, e := range st.Enemies {
			g.drawEntity(dst, e, sx, sy)
		}
		g.drawEntity(dst, st.Player, sx, sy)
		g.drawCenteredMessage(dst, GameOverText, fmt.Sprintf("Score: %d  |  Press Space to continue", st.Score))
	case KindGameClear:
		g.drawEntity(dst, st.Player, sx, sy)
		g.drawEntity(dst, g.sim.Assets().Chicken, sx, sy)
		g.drawCenteredMessage(dst, GameClearText, fmt.Sprintf("Score: %d  |  Press Space to continue", st.Score))
	}

	// HUD
	hx := int(50 * sx)
	hy := int(50 * sy)
	dst.DrawTextColored(hx, hy, fmt.Sprintf("score: %d", st.Score), core.ColorTeal)

	if g.paused {
		g.drawCenteredMessage(dst, PausedText, "Press P to resume")
	}
}

// drawEntity scales an entity to screen cells and draws its sprite.
func (g *Game) drawEntity(dst *core.Screen, e Entity, sx, sy float64) {
	r := e.Rect().Scale(sx, sy)
	if !core.NewRect(0, 0, dst.Width(), dst.Height()).Intersects(r) {
		return
	}
	sp := spriteFor(e.Visual)

	dst.DrawRect(r, sp.Body, sp.BodyColor)
	if r.W >= 3 {
		dst.SetColored(r.X+r.W/2, r.Y, sp.Mark, sp.MarkColor)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorTeal)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorGray)
}
