// Package render provides visualization rendering for fishbone diagrams.
//
// # Overview
//
// This package contains the rendering pipeline that turns a computed
// [layout.Layout] plus its bone tree into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - The fishbone visualization (in the [fish] subpackage)
//   - A node-link cause-tree view (in the [causetree] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). Both renderers
// share them.
//
//	svg := sink.RenderSVG(l, d, sink.WithStyle(styles.Simple{}))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Fishbone Visualization
//
// The [fish] subpackage walks the layout's slots with the engine's own
// sizing helpers and materializes every line, cubic connector, label box,
// and ornament glyph. Its sink writes SVG with optional interactive
// overlays, or the flattened element list as JSON.
//
// Key fish subpackages:
//   - [fish/styles]: Visual styles (simple, ink) and drawing primitives
//   - [fish/sink]: Output formats (SVG, PNG, PDF, JSON)
//
// # Cause-Tree Diagrams
//
// The [causetree] subpackage renders the cause hierarchy as a classic
// node-link tree using Graphviz, for audiences that prefer an outline
// over the fish shape.
//
//	dot := causetree.ToDOT(d)
//	svg, err := causetree.RenderSVG(dot)
//
// [fish]: github.com/ishidiag/fishbone/pkg/render/fish
// [fish/styles]: github.com/ishidiag/fishbone/pkg/render/fish/styles
// [fish/sink]: github.com/ishidiag/fishbone/pkg/render/fish/sink
// [causetree]: github.com/ishidiag/fishbone/pkg/render/causetree
// [layout.Layout]: github.com/ishidiag/fishbone/pkg/layout.Layout
package render
