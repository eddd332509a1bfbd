// Package window runs a game in a desktop window with Ebitengine. The board
// is drawn at its native size and the window scales it.
package window

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/runner"
	"github.com/vovakirdan/dino-runner/internal/sprites"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// Title is the window title.
const Title = "Chrome Dinosaur Game"

// Source is a game that exposes its entities for direct drawing.
type Source interface {
	registry.Game
	registry.Spawner
	Snapshot() runner.State
	Config() config.RunnerConfig
}

// Options configures the window.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   float64               // window size relative to the board, default 1
	Images  sprites.ImageProvider // default sprites.Procedural
	Store   *storage.Store        // optional score persistence
	Logger  *log.Logger
}

var (
	backgroundColor = color.RGBA{R: 0xf7, G: 0xf7, B: 0xf7, A: 0xff}
	modalColor      = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xe0}
)

// debug font cell size used to center text
const (
	charW = 6
	charH = 16
)

type imageKey struct {
	key  sprites.Key
	w, h int
}

// game implements ebiten.Game.
type game struct {
	src        Source
	opts       Options
	images     map[imageKey]*ebiten.Image
	spawnEvery int // ticks between spawns
	spawnCount int
	state      core.GameState
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(src Source, opts Options) error {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Images == nil {
		opts.Images = sprites.Procedural{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	src.Reset(opts.Runtime)
	board := src.Config().Board

	g := &game{
		src:        src,
		opts:       opts,
		images:     make(map[imageKey]*ebiten.Image),
		spawnEvery: ticksPer(src.SpawnInterval(), opts.Runtime.TickRate),
	}

	ebiten.SetWindowSize(int(float64(board.Width)*opts.Scale), int(float64(board.Height)*opts.Scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(opts.Runtime.TickRate)

	opts.Logger.Info("window opened", "game", src.ID(), "tps", opts.Runtime.TickRate, "spawn_ticks", g.spawnEvery)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// ticksPer converts a timer period into a number of fixed ticks.
func ticksPer(d time.Duration, tps int) int {
	n := int(d * time.Duration(tps) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// Update reads input, steps the game and fires the spawn timer.
func (g *game) Update() error {
	in := core.NewInputFrame()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		inpututil.IsKeyJustPressed(ebiten.KeyW):
		in.Set(core.ActionJump)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}

	prev := g.state
	res := g.src.Step(in)
	g.state = res.State

	wasActive := prev.Started && !prev.GameOver
	active := g.state.Started && !g.state.GameOver
	if active && !wasActive {
		g.spawnCount = 0
	}
	if active && !g.state.Paused {
		g.spawnCount++
		if g.spawnCount >= g.spawnEvery {
			g.spawnCount = 0
			g.src.Spawn()
		}
	}

	if res.Ended {
		g.saveScore()
	}
	return nil
}

func (g *game) saveScore() {
	outcome := g.state.Outcome.String()
	g.opts.Logger.Info("run ended", "game", g.src.ID(), "score", g.state.Score, "outcome", outcome)
	if g.opts.Store == nil || g.state.Score <= 0 {
		return
	}
	if _, err := g.opts.Store.SaveScore(g.src.ID(), g.state.Score, outcome); err != nil {
		g.opts.Logger.Warn("score not saved", "err", err)
	}
}

// Draw paints the board, the entities, the score and any dialog.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := g.src.Snapshot()
	board := g.src.Config().Board

	g.drawSprite(screen, sprites.KeyGround, core.NewRect(0, board.Height-2, board.Width, 2))
	for _, o := range s.Obstacles.All() {
		g.drawSprite(screen, sprites.ObstacleKey(o.Variant), o.Rect)
	}
	g.drawSprite(screen, sprites.PlayerKey(s.Player.Visual), s.Player.Rect)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 10, 10)

	switch {
	case s.Over && s.Outcome == core.OutcomeWin:
		g.drawDialog(screen, dino.MessageWinner, dino.MessageContinue)
	case s.Over:
		g.drawDialog(screen, dino.MessageGameOver, dino.MessageContinue)
	case !s.Started:
		g.drawDialog(screen, g.src.Title(), dino.MessageStart)
	case g.state.Paused:
		g.drawDialog(screen, "PAUSED", "Press P to resume")
	}
}

// drawSprite draws the resource for k stretched over r.
func (g *game) drawSprite(dst *ebiten.Image, k sprites.Key, r core.Rect) {
	img := g.image(k, r.W, r.H)
	if img == nil {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.Black, false)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

// image returns a cached GPU image for the key at the given size.
func (g *game) image(k sprites.Key, w, h int) *ebiten.Image {
	ik := imageKey{key: k, w: w, h: h}
	if img, ok := g.images[ik]; ok {
		return img
	}

	var eimg *ebiten.Image
	src, err := g.opts.Images.Image(k, w, h)
	if err != nil {
		g.opts.Logger.Warn("sprite unavailable", "key", k, "err", err)
	} else {
		eimg = ebiten.NewImageFromImage(src)
	}
	g.images[ik] = eimg
	return eimg
}

// drawDialog draws a centered modal box with two lines of text.
func (g *game) drawDialog(dst *ebiten.Image, title, subtitle string) {
	b := dst.Bounds()
	lines := []string{title, subtitle}

	width := 0
	for _, l := range lines {
		width = max(width, len(l)*charW)
	}
	box := image.Rect(0, 0, width+40, charH*len(lines)+30)
	box = box.Add(image.Pt((b.Dx()-box.Dx())/2, (b.Dy()-box.Dy())/2))

	vector.DrawFilledRect(dst, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), modalColor, false)
	for i, l := range lines {
		x := box.Min.X + (box.Dx()-len(l)*charW)/2
		y := box.Min.Y + 15 + i*charH
		ebitenutil.DebugPrintAt(dst, l, x, y)
	}
}

// Layout keeps the logical screen at board size; Ebitengine scales it to
// the window.
func (g *game) Layout(_, _ int) (int, int) {
	board := g.src.Config().Board
	return board.Width, board.Height
}
