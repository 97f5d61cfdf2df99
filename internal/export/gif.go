package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/fractalfx/internal/scene"
	"github.com/san-kum/fractalfx/internal/surface"
	xdraw "golang.org/x/image/draw"
)

var ErrNoFrames = errors.New("export: no frames captured")

// Imager is a surface whose current frame can be read back.
type Imager interface {
	Image() image.Image
}

// GIFRecorder is a loop observer that captures frames into an animated GIF.
// Frames are downscaled by Scale and quantised to the Plan 9 palette.
type GIFRecorder struct {
	Every     int     // capture one frame in Every
	Scale     float64 // output size relative to the surface
	Delay     int     // per-frame delay in 1/100 s
	MaxFrames int     // oldest frames are dropped past this; 0 keeps all
	Dither    bool

	frames []*image.Paletted
}

// NewGIFRecorder captures every frame at full size, timed for fps.
func NewGIFRecorder(fps int) *GIFRecorder {
	delay := 2
	if fps > 0 {
		delay = max(100/fps, 2)
	}
	return &GIFRecorder{Every: 1, Scale: 1, Delay: delay}
}

func (g *GIFRecorder) OnFrame(f scene.FrameStats, s surface.Surface) {
	if g.Every > 1 && f.Frame%g.Every != 0 {
		return
	}
	im, ok := s.(Imager)
	if !ok {
		return
	}
	g.Capture(im.Image())
}

// Capture appends src as the next frame.
func (g *GIFRecorder) Capture(src image.Image) {
	b := src.Bounds()
	scale := g.Scale
	if scale <= 0 {
		scale = 1
	}
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)

	if w != b.Dx() || h != b.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, b, xdraw.Src, nil)
		src, b = scaled, scaled.Bounds()
	}

	dst := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	if g.Dither {
		xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
	} else {
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	}

	if g.MaxFrames > 0 && len(g.frames) >= g.MaxFrames {
		g.frames = g.frames[1:]
	}
	g.frames = append(g.frames, dst)
}

func (g *GIFRecorder) Frames() int { return len(g.frames) }

func (g *GIFRecorder) Reset() { g.frames = nil }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
