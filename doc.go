// Package mockup generates print-sized raster derivatives of a source image,
// optionally overlaid with a tiled or centered semi-transparent text
// watermark.
//
// A run resizes one source photo to a set of labeled print dimensions at
// 300 DPI (see PrintSizes), applies the configured watermark style, and
// writes one JPEG per size. All rendering happens in memory; no network or
// GPU is required.
package mockup
