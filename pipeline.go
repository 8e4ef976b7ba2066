package mockup

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// Pipeline drives a full run: decode the source once, render every
// selected size in order, and write one JPEG per size.
type Pipeline struct {
	renderer *Renderer

	// OutputRoot is the directory the per-run output folder is created
	// in. Empty means the current directory.
	OutputRoot string

	// Progress, when set, is called after each size is written.
	Progress func(label, path string)
}

// NewPipeline constructs a Pipeline with a default Renderer.
func NewPipeline() *Pipeline {
	return &Pipeline{renderer: NewRenderer()}
}

// NewPipelineWithRenderer constructs a Pipeline around an existing
// Renderer.
func NewPipelineWithRenderer(renderer *Renderer) *Pipeline {
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Pipeline{renderer: renderer}
}

// BaseName strips the directory and extension from the source path.
func BaseName(sourcePath string) string {
	name := filepath.Base(sourcePath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OutputDirName returns the per-run output folder name for a source file
// and watermark style, e.g. "photo_ribbon_watermarked".
func OutputDirName(sourcePath string, style Style) string {
	return BaseName(sourcePath) + "_" + style.String()
}

// FileName returns the per-size output file name, e.g.
// "photo_8x10_300dpi_watermarked.jpg".
func FileName(sourcePath, label string, style Style) string {
	suffix := "watermarked"
	if style == StyleNone {
		suffix = "clean"
	}
	return fmt.Sprintf("%s_%s_%ddpi_%s.jpg", BaseName(sourcePath), label, OutputDPI, suffix)
}

// Run renders and writes every size in the selection, in selection order,
// and returns the paths written. The first failure aborts the run; files
// already written for earlier sizes stay on disk. Re-running with
// identical inputs overwrites the previous output deterministically.
func (p *Pipeline) Run(sourcePath string, sel Selection, spec Spec) ([]string, error) {
	if sel.Len() == 0 {
		return nil, fmt.Errorf("empty size selection")
	}

	src, _, err := Open(sourcePath)
	if err != nil {
		return nil, err
	}

	outDir := filepath.Join(p.OutputRoot, OutputDirName(sourcePath, spec.Style))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	written := make([]string, 0, sel.Len())
	for _, label := range sel.Labels {
		size := sel.Sizes[label]

		rendered, err := p.renderer.Render(src, size, spec)
		if err != nil {
			return written, fmt.Errorf("render size %s: %w", label, err)
		}

		outPath := filepath.Join(outDir, FileName(sourcePath, label, spec.Style))
		if err := writeJPEGFile(outPath, rendered); err != nil {
			return written, fmt.Errorf("write size %s: %w", label, err)
		}

		written = append(written, outPath)
		if p.Progress != nil {
			p.Progress(label, outPath)
		}
	}

	return written, nil
}

func writeJPEGFile(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeJPEG(f, img, JPEGQuality, OutputDPI); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
