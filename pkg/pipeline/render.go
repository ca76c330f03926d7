package pipeline

import (
	"fmt"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/render/causetree"
	"github.com/ishidiag/fishbone/pkg/render/fish/sink"
	"github.com/ishidiag/fishbone/pkg/render/fish/styles"
)

// RenderFromLayout runs the render stage, producing every requested
// format from an already-computed layout.
func RenderFromLayout(l Layout, d *bone.Diagram, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		if opts.IsCausetree() {
			data, err = renderCausetree(d, format, opts)
		} else {
			data, err = renderFishbone(l, d, format, opts)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFishbone(l Layout, d *bone.Diagram, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithStyle(styleFor(opts.Style))}
	if opts.EditOverlays {
		svgOpts = append(svgOpts, sink.WithEditOverlays())
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, d, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(l, d, sink.WithJSONStyle(opts.Style))
	case FormatPNG:
		return sink.RenderPNG(l, d, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(l, d, sink.WithPDFSVGOptions(svgOpts...))
	default:
		return nil, fmt.Errorf("unsupported fishbone format: %s", format)
	}
}

func renderCausetree(d *bone.Diagram, format string, opts Options) ([]byte, error) {
	dot := causetree.ToDOT(d, causetree.Options{Detailed: opts.Detailed})

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return causetree.RenderSVG(dot)
	case FormatPNG:
		return causetree.RenderPNG(dot, opts.Scale)
	case FormatPDF:
		return causetree.RenderPDF(dot)
	default:
		return nil, fmt.Errorf("unsupported causetree format: %s", format)
	}
}

func styleFor(name string) styles.Style {
	if name == StyleInk {
		return styles.Ink{}
	}
	return styles.Simple{}
}
