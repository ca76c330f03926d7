package sink

import (
	"encoding/json"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/layout"
	"github.com/ishidiag/fishbone/pkg/render/fish"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g. "simple", "ink") in the
// output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	SpineY    float64     `json:"spine_y"`
	FishScale float64     `json:"fish_scale"`
	Style     string      `json:"style,omitempty"`
	Boxes     []jsonBox   `json:"boxes"`
	Lines     []jsonLine  `json:"lines"`
	Curves    []jsonCurve `json:"curves,omitempty"`
}

type jsonBox struct {
	Ref    string  `json:"ref"`
	Kind   string  `json:"kind"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonLine struct {
	Kind string  `json:"kind"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

type jsonCurve struct {
	X1  float64 `json:"x1"`
	Y1  float64 `json:"y1"`
	CX1 float64 `json:"cx1"`
	CY1 float64 `json:"cy1"`
	CX2 float64 `json:"cx2"`
	CY2 float64 `json:"cy2"`
	X2  float64 `json:"x2"`
	Y2  float64 `json:"y2"`
}

// RenderJSON exports the complete draw list as JSON for external tools.
func RenderJSON(l layout.Layout, d *bone.Diagram, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	e := fish.BuildElements(l, d)
	out := jsonOutput{
		Width:     l.CanvasWidth,
		Height:    l.CanvasHeight,
		SpineY:    l.SpineY,
		FishScale: l.FishScale,
		Style:     r.style,
		Boxes:     make([]jsonBox, 0, len(e.Boxes)),
		Lines:     make([]jsonLine, 0, len(e.Lines)),
		Curves:    make([]jsonCurve, 0, len(e.Curves)),
	}
	for _, b := range e.Boxes {
		out.Boxes = append(out.Boxes, jsonBox{
			Ref: b.Ref, Kind: b.Kind, Label: b.Label,
			X: b.X, Y: b.Y, Width: b.W, Height: b.H,
		})
	}
	for _, ln := range e.Lines {
		out.Lines = append(out.Lines, jsonLine{Kind: ln.Kind, X1: ln.X1, Y1: ln.Y1, X2: ln.X2, Y2: ln.Y2})
	}
	for _, c := range e.Curves {
		out.Curves = append(out.Curves, jsonCurve{
			X1: c.X1, Y1: c.Y1, CX1: c.CX1, CY1: c.CY1,
			CX2: c.CX2, CY2: c.CY2, X2: c.X2, Y2: c.Y2,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
