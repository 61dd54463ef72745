package ebitencanvas

import (
	goimage "image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/mediashelf/mediashelf/canvas"
)

// Image implements canvas.Image over an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

// NewImage wraps an existing ebiten image.
func NewImage(img *ebiten.Image) Image {
	return Image{img: img}
}

// Width implements canvas.Image.
func (i Image) Width() float64 {
	return float64(i.img.Bounds().Dx())
}

// Height implements canvas.Image.
func (i Image) Height() float64 {
	return float64(i.img.Bounds().Dy())
}

// Draw implements canvas.Image.
func (i Image) Draw(ctx canvas.Context, x, y, width, height float64) {
	i.DrawFraction(ctx, x, y, width, height, 1)
}

// DrawFraction implements canvas.Image.
func (i Image) DrawFraction(ctx canvas.Context, x, y, width, height, fraction float64) {
	ec, ok := ctx.(*Context)
	if !ok {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/i.Width(), height/i.Height())
	op.GeoM.Translate(x, y)
	if fraction < 1 {
		op.ColorScale.ScaleAlpha(float32(fraction))
	}
	ec.Target().DrawImage(i.img, op)
}

type scaledKey struct {
	path          string
	width, height int
}

// ImagePool implements canvas.ImagePool: decoded images are cached
// forever, scaling happens on the CPU so no oversized textures hit the
// GPU. Unloadable paths are logged once and yield a placeholder.
type ImagePool struct {
	base string

	mu     sync.Mutex
	images map[string]Image
	scaled map[scaledKey]Image
	failed map[string]bool

	placeholder *ebiten.Image
}

// NewImagePool returns a pool resolving paths relative to base.
func NewImagePool(base string) *ImagePool {
	placeholder := ebiten.NewImage(16, 16)
	placeholder.Fill(color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff})
	return &ImagePool{
		base:        base,
		images:      make(map[string]Image),
		scaled:      make(map[scaledKey]Image),
		failed:      make(map[string]bool),
		placeholder: placeholder,
	}
}

// Surface implements canvas.ImagePool.
func (p *ImagePool) Surface(path string) canvas.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surfaceLocked(path)
}

func (p *ImagePool) surfaceLocked(path string) Image {
	if img, ok := p.images[path]; ok {
		return img
	}
	img := Image{img: p.decode(path)}
	p.images[path] = img
	return img
}

// SurfaceScaled implements canvas.ImagePool.
func (p *ImagePool) SurfaceScaled(path string, width, height float64) canvas.Image {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := scaledKey{path: path, width: int(width), height: int(height)}
	if img, ok := p.scaled[key]; ok {
		return img
	}
	src := p.surfaceLocked(path)
	scaled := Image{img: scaleToFit(src.img, key.width, key.height)}
	p.scaled[key] = scaled
	return scaled
}

func (p *ImagePool) decode(path string) *ebiten.Image {
	full := filepath.Join(p.base, filepath.FromSlash(path))
	f, err := os.Open(full)
	if err != nil {
		p.warn(path, err)
		return p.placeholder
	}
	defer f.Close()
	decoded, _, err := goimage.Decode(f)
	if err != nil {
		p.warn(path, err)
		return p.placeholder
	}
	return ebiten.NewImageFromImage(decoded)
}

func (p *ImagePool) warn(path string, err error) {
	if p.failed[path] {
		return
	}
	p.failed[path] = true
	log.Printf("image pool: loading %s: %v", path, err)
}

// scaleToFit scales src to fit within maxWidth x maxHeight preserving
// aspect ratio. Scaling runs on the CPU with approximate bilinear
// interpolation, fast with good quality.
func scaleToFit(src *ebiten.Image, maxWidth, maxHeight int) *ebiten.Image {
	bounds := src.Bounds()
	scaleX := float64(maxWidth) / float64(bounds.Dx())
	scaleY := float64(maxHeight) / float64(bounds.Dy())
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}
	newWidth := int(float64(bounds.Dx()) * scale)
	newHeight := int(float64(bounds.Dy()) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	pixels := goimage.NewRGBA(bounds)
	srcPixels := make([]byte, 4*bounds.Dx()*bounds.Dy())
	src.ReadPixels(srcPixels)
	copy(pixels.Pix, srcPixels)

	dstRect := goimage.Rect(0, 0, newWidth, newHeight)
	scaled := goimage.NewRGBA(dstRect)
	xdraw.ApproxBiLinear.Scale(scaled, dstRect, pixels, pixels.Bounds(), draw.Over, nil)
	return ebiten.NewImageFromImage(scaled)
}
