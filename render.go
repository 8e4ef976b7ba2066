package mockup

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Renderer produces one final per-size image: resize first, watermark
// second.
type Renderer struct {
	engine *Engine
}

// NewRenderer constructs a Renderer with a default Engine.
func NewRenderer() *Renderer {
	return &Renderer{engine: NewEngine()}
}

// NewRendererWithEngine constructs a Renderer around an existing Engine.
func NewRendererWithEngine(engine *Engine) *Renderer {
	if engine == nil {
		engine = NewEngine()
	}
	return &Renderer{engine: engine}
}

// Render resizes src to the target print size using Lanczos resampling and
// applies the watermark spec. The source is normalized to an opaque
// baseline first so all sizes share a consistent color mode.
func (r *Renderer) Render(src image.Image, size PrintSize, spec Spec) (*image.NRGBA, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d", size.Width, size.Height)
	}

	base := flattenOpaque(src)
	resized := imaging.Resize(base, size.Width, size.Height, imaging.Lanczos)

	return r.engine.Apply(resized, spec)
}

// flattenOpaque clones src into an NRGBA buffer and discards any alpha
// channel, matching an RGB conversion of the source.
func flattenOpaque(src image.Image) *image.NRGBA {
	out := imaging.Clone(src)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
