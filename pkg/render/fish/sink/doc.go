// Package sink provides output format renderers for fishbone drawings.
//
// A sink turns a computed [layout.Layout] plus its diagram into a final
// output format:
//
//   - SVG: scalable vector graphics with hover highlighting
//   - JSON: the full draw list for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//
// Basic usage:
//
//	svg := sink.RenderSVG(l, d,
//	    sink.WithStyle(styles.Ink{}),
//	    sink.WithEditOverlays(),
//	)
//
// [RenderPDF] and [RenderPNG] render SVG first and convert via
// [render.ToPDF] and [render.ToPNG], which shell out to librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/ishidiag/fishbone/pkg/render.ToPDF
// [render.ToPNG]: github.com/ishidiag/fishbone/pkg/render.ToPNG
package sink
