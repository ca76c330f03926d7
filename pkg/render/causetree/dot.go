// Package causetree renders a diagram as a plain cause hierarchy using
// Graphviz. It trades the fishbone shape for an automatic tree layout,
// which reads better for very deep or very unbalanced cause sets.
package causetree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/render"
)

// Options configures cause-tree rendering.
type Options struct {
	// Detailed includes bone IDs in node labels. When false, only the
	// label text is shown.
	Detailed bool
}

// ToDOT converts a diagram to Graphviz DOT format, problem statement at
// the top and causes fanning out below. The resulting DOT string can be
// rendered with [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(d *bone.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph causes {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	buf.WriteString("  \"head\" [label=" + strconv.Quote(d.Head) + ", fillcolor=lightblue, fontsize=16];\n")
	for _, big := range d.Bones {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID("big", big.ID), nodeLabel(big.Label, big.ID, opts))
		for _, mid := range big.MidBones {
			fmt.Fprintf(&buf, "  %q [label=%q, fontsize=12];\n", nodeID("mid", mid.ID), nodeLabel(mid.Label, mid.ID, opts))
			for _, small := range mid.SmallBones {
				fmt.Fprintf(&buf, "  %q [label=%q, fontsize=11, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
					nodeID("small", small.ID), nodeLabel(small.Label, small.ID, opts))
			}
		}
	}

	buf.WriteString("\n")
	for _, big := range d.Bones {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID("big", big.ID), "head")
		for _, mid := range big.MidBones {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID("mid", mid.ID), nodeID("big", big.ID))
			for _, small := range mid.SmallBones {
				fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID("small", small.ID), nodeID("mid", mid.ID))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(level string, id int) string {
	return fmt.Sprintf("%s-%d", level, id)
}

func nodeLabel(label string, id int, opts Options) string {
	if opts.Detailed {
		return fmt.Sprintf("%s\n#%d", label, id)
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's pt-based svg element so the
// output scales like the fishbone renderer's documents.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of
// 2.0 produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
