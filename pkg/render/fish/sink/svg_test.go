package sink

import (
	"strings"
	"testing"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/layout"
	"github.com/ishidiag/fishbone/pkg/render/fish/styles"
)

func sampleDiagram() *bone.Diagram {
	d := bone.New("late shipments")
	big := d.AddBig("process")
	mid := d.AddMid(big.ID, "handoffs")
	d.AddSmall(big.ID, mid.ID, "no checklist")
	d.AddSmall(big.ID, mid.ID, "manual entry")
	d.AddBig("people & tools")
	return d
}

func TestRenderSVGStructure(t *testing.T) {
	d := sampleDiagram()
	svg := string(RenderSVG(layout.Build(d), d))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		"viewBox=\"0 0 ",
		`id="box-head"`,
		`id="box-big-1"`,
		`id="box-mid-2"`,
		`id="box-small-3"`,
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	d := sampleDiagram()
	svg := string(RenderSVG(layout.Build(d), d))

	if strings.Contains(svg, "people & tools") {
		t.Error("unescaped ampersand in SVG output")
	}
	if !strings.Contains(svg, "people &amp;") {
		t.Error("escaped label not found in SVG output")
	}
}

func TestRenderSVGStyles(t *testing.T) {
	d := sampleDiagram()
	l := layout.Build(d)

	simple := string(RenderSVG(l, d, WithStyle(styles.Simple{})))
	ink := string(RenderSVG(l, d, WithStyle(styles.Ink{})))

	if !strings.Contains(simple, "sans-serif") {
		t.Error("simple style should use sans-serif text")
	}
	if !strings.Contains(ink, "monospace") {
		t.Error("ink style should use monospace text")
	}
	if !strings.Contains(ink, "stroke-dasharray") {
		t.Error("ink style should dash its connectors")
	}
}

func TestRenderSVGEditOverlays(t *testing.T) {
	d := sampleDiagram()
	l := layout.Build(d)

	plain := string(RenderSVG(l, d))
	if strings.Contains(plain, "fishbone-select") {
		t.Error("edit overlays present without option")
	}

	edit := string(RenderSVG(l, d, WithEditOverlays()))
	if !strings.Contains(edit, "fishbone-select") {
		t.Error("edit overlays missing with WithEditOverlays")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	d := sampleDiagram()
	l := layout.Build(d)
	a := RenderSVG(l, d)
	b := RenderSVG(l, d)
	if string(a) != string(b) {
		t.Error("identical inputs produced different SVG")
	}
}
