package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	// Decoders for directory-backed sprites
	_ "image/gif"
	_ "image/png"
)

// Palette for generated sprites.
var (
	dinoColor   = color.RGBA{R: 0x53, G: 0x53, B: 0x53, A: 0xff}
	deadColor   = color.RGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}
	eyeColor    = color.RGBA{R: 0xf7, G: 0xf7, B: 0xf7, A: 0xff}
	cactusColor = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	groundColor = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
)

// Procedural draws simple blocky sprites in code, so the game needs no
// asset files.
type Procedural struct{}

// Image implements ImageProvider.
func (Procedural) Image(k Key, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprites: invalid size %dx%d for %s", w, h, k)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch k {
	case KeyDinoRun, KeyDinoJump, KeyDinoDead:
		drawDino(img, k)
	case KeyCactusSmall, KeyCactusMedium, KeyCactusLarge:
		drawCactus(img, k)
	case KeyGround:
		fill(img, img.Bounds(), groundColor)
	default:
		return nil, fmt.Errorf("sprites: unknown key %d", k)
	}
	return img, nil
}

// drawDino paints a head, body and legs proportional to the image size.
func drawDino(img *image.RGBA, k Key) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	body := dinoColor
	if k == KeyDinoDead {
		body = deadColor
	}

	// Head in the upper right, body below, tail to the left.
	fill(img, image.Rect(w/2, 0, w, h*3/10), body)
	fill(img, image.Rect(w/4, h*3/10, w*4/5, h*3/4), body)
	fill(img, image.Rect(0, h*2/5, w/4, h*3/5), body)

	// Eye
	eye := image.Rect(w*3/5, h/12, w*3/5+w/12+1, h/12+h/12+1)
	if k == KeyDinoDead {
		fill(img, eye, eyeColor)
		fill(img, eye.Inset(eye.Dx()/3), body)
	} else {
		fill(img, eye, eyeColor)
	}

	// Legs: apart when running, tucked when jumping
	legW := w / 8
	if k == KeyDinoJump {
		fill(img, image.Rect(w/3, h*3/4, w/3+legW, h*9/10), body)
		fill(img, image.Rect(w/2, h*3/4, w/2+legW, h*9/10), body)
		return
	}
	fill(img, image.Rect(w/4, h*3/4, w/4+legW, h), body)
	fill(img, image.Rect(w*3/5, h*3/4, w*3/5+legW, h), body)
}

// drawCactus paints one stem per ~34 units of width, each with two arms.
func drawCactus(img *image.RGBA, _ Key) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	stems := w / 34
	if stems < 1 {
		stems = 1
	}
	stemSlot := w / stems

	for i := 0; i < stems; i++ {
		x0 := i * stemSlot
		stemW := stemSlot / 3
		cx := x0 + stemSlot/2 - stemW/2
		fill(img, image.Rect(cx, 0, cx+stemW, h), cactusColor)
		fill(img, image.Rect(x0, h/4, x0+stemW/2+1, h/2), cactusColor)
		fill(img, image.Rect(x0, h/2-stemW/2, cx, h/2), cactusColor)
		fill(img, image.Rect(x0+stemSlot-stemW/2-1, h/3, x0+stemSlot, h*3/5), cactusColor)
		fill(img, image.Rect(cx+stemW, h*3/5-stemW/2, x0+stemSlot, h*3/5), cactusColor)
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Dir loads sprites from image files named after the keys (dino-run.png,
// cactus1.png, ...) and falls back to another provider for missing files.
type Dir struct {
	Path     string
	Fallback ImageProvider
}

// Image implements ImageProvider. Files are used at their own size; the
// renderer scales them.
func (d Dir) Image(k Key, w, h int) (image.Image, error) {
	for _, ext := range []string{".png", ".gif"} {
		f, err := os.Open(filepath.Join(d.Path, k.String()+ext))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("sprites: cannot decode %s%s: %w", k, ext, err)
		}
		return img, nil
	}

	if d.Fallback == nil {
		return nil, fmt.Errorf("sprites: no image for %s in %s", k, d.Path)
	}
	return d.Fallback.Image(k, w, h)
}
