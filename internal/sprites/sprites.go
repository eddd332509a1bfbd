// Package sprites provides the visual resources for the runner behind small
// provider interfaces, so the simulation never touches images or glyphs and
// each presentation surface can be given its own resource set.
package sprites

import (
	"image"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Key identifies one visual resource.
type Key int

const (
	KeyDinoRun Key = iota
	KeyDinoJump
	KeyDinoDead
	KeyCactusSmall
	KeyCactusMedium
	KeyCactusLarge
	KeyGround
)

// Keys lists every resource key.
var Keys = []Key{
	KeyDinoRun, KeyDinoJump, KeyDinoDead,
	KeyCactusSmall, KeyCactusMedium, KeyCactusLarge,
	KeyGround,
}

// String returns the resource name, also used as the file stem by
// directory-backed providers.
func (k Key) String() string {
	switch k {
	case KeyDinoRun:
		return "dino-run"
	case KeyDinoJump:
		return "dino-jump"
	case KeyDinoDead:
		return "dino-dead"
	case KeyCactusSmall:
		return "cactus1"
	case KeyCactusMedium:
		return "cactus2"
	case KeyCactusLarge:
		return "cactus3"
	case KeyGround:
		return "ground"
	default:
		return "unknown"
	}
}

// PlayerKey picks the player resource for a visual state.
func PlayerKey(v runner.Visual) Key {
	switch v {
	case runner.VisualJumping:
		return KeyDinoJump
	case runner.VisualDead:
		return KeyDinoDead
	default:
		return KeyDinoRun
	}
}

// ObstacleKey picks the obstacle resource for a variant.
func ObstacleKey(v runner.Variant) Key {
	switch v {
	case runner.VariantMedium:
		return KeyCactusMedium
	case runner.VariantLarge:
		return KeyCactusLarge
	default:
		return KeyCactusSmall
	}
}

// Glyph is how a resource is drawn in a character cell grid.
type Glyph struct {
	Fill   rune       // body fill
	Accent rune       // eye, spikes or feet; 0 means none
	Color  core.Color // foreground color
}

// GlyphProvider supplies terminal glyphs.
type GlyphProvider interface {
	Glyph(k Key) Glyph
}

// ImageProvider supplies raster images sized to the requested board
// dimensions.
type ImageProvider interface {
	Image(k Key, w, h int) (image.Image, error)
}

// Classic is the default terminal glyph set.
type Classic struct{}

var classicGlyphs = map[Key]Glyph{
	KeyDinoRun:      {Fill: '█', Accent: '◆', Color: core.ColorGreen},
	KeyDinoJump:     {Fill: '█', Accent: '◆', Color: core.ColorBrightGreen},
	KeyDinoDead:     {Fill: '▓', Accent: 'x', Color: core.ColorRed},
	KeyCactusSmall:  {Fill: '▓', Accent: '┼', Color: core.ColorGreen},
	KeyCactusMedium: {Fill: '▓', Accent: '┼', Color: core.ColorBrightGreen},
	KeyCactusLarge:  {Fill: '▓', Accent: '┼', Color: core.ColorYellow},
	KeyGround:       {Fill: '═', Color: core.ColorGray},
}

// Glyph implements GlyphProvider.
func (Classic) Glyph(k Key) Glyph {
	if g, ok := classicGlyphs[k]; ok {
		return g
	}
	return Glyph{Fill: '?', Color: core.ColorDefault}
}
