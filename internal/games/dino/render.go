package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

// Dialog text shown when a run ends.
const (
	MessageGameOver = "Continue Again !"
	MessageWinner   = "***Winner***"
	MessageStart    = "Press Space to start"
	MessageContinue = "Press Space to continue"
)

// Render draws the board scaled to the screen: the HUD on the first row,
// the board in between and the ground line on the last row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 1 || h < 3 {
		return
	}

	s := g.loop.State()
	board := g.cfg.Board
	project := func(r core.Rect) core.Rect {
		return r.Scale(board.Width, board.Height, w, h-2).Translate(0, 1)
	}

	ground := g.glyphs.Glyph(sprites.KeyGround)
	dst.DrawHLine(0, h-1, w, ground.Fill, ground.Color)

	for _, o := range s.Obstacles.All() {
		g.drawCactus(dst, project(o.Rect), g.glyphs.Glyph(sprites.ObstacleKey(o.Variant)))
	}

	g.drawDino(dst, project(s.Player.Rect), s.Player)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorWhite)

	switch {
	case s.Over && s.Outcome == core.OutcomeWin:
		g.drawCenteredMessage(dst, MessageWinner, fmt.Sprintf("Score: %d  |  %s", s.Score, MessageContinue), core.ColorBrightYellow)
	case s.Over:
		g.drawCenteredMessage(dst, "GAME OVER  "+MessageGameOver, fmt.Sprintf("Score: %d  |  %s", s.Score, MessageContinue), core.ColorRed)
	case !s.Started:
		g.drawCenteredMessage(dst, g.title, MessageStart, core.ColorBrightGreen)
	case g.loop.Paused():
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// drawDino fills the player's cells and marks the eye and feet. While
// running on the ground the feet alternate every few frames.
func (g *Game) drawDino(dst *core.Screen, r core.Rect, p runner.Player) {
	glyph := g.glyphs.Glyph(sprites.PlayerKey(p.Visual))
	dst.DrawRect(r, glyph.Fill, glyph.Color)

	if glyph.Accent != 0 && r.W > 1 {
		dst.SetColored(r.Right()-2, r.Y, glyph.Accent, core.ColorWhite)
	}

	if r.H < 3 || p.Visual == runner.VisualDead {
		return
	}
	feet := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, feet, ' ', core.ColorDefault)
	}
	switch {
	case p.Visual == runner.VisualJumping:
		dst.SetColored(r.X+r.W/3, feet, '╱', glyph.Color)
		dst.SetColored(r.X+r.W/3+1, feet, '╲', glyph.Color)
	case (g.frame/5)%2 == 0:
		dst.SetColored(r.X, feet, '╱', glyph.Color)
		dst.SetColored(r.Right()-1, feet, '╲', glyph.Color)
	default:
		dst.SetColored(r.X+1, feet, '╱', glyph.Color)
		dst.SetColored(r.Right()-1, feet, '╲', glyph.Color)
	}
}

// drawCactus fills the obstacle's cells with spikes on its middle row.
func (g *Game) drawCactus(dst *core.Screen, r core.Rect, glyph sprites.Glyph) {
	dst.DrawRect(r, glyph.Fill, glyph.Color)
	if glyph.Accent == 0 || r.H < 2 {
		return
	}
	mid := r.Y + r.H/2
	dst.SetColored(r.X, mid, glyph.Accent, glyph.Color)
	dst.SetColored(r.Right()-1, mid, glyph.Accent, glyph.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Min(core.Max(titleLen, subLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-subLen)/2, boxY+3, subtitle, core.ColorWhite)
}
