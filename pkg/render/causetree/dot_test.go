package causetree

import (
	"strings"
	"testing"

	"github.com/ishidiag/fishbone/pkg/bone"
)

func sampleDiagram() *bone.Diagram {
	d := bone.New("high churn")
	big := d.AddBig("pricing")
	mid := d.AddMid(big.ID, "plan tiers")
	d.AddSmall(big.ID, mid.ID, "no annual plan")
	d.AddBig("support")
	return d
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(sampleDiagram(), Options{})

	for _, want := range []string{
		"digraph causes {",
		`"head" [label="high churn"`,
		`"big-1" [label="pricing"]`,
		`"mid-2" [label="plan tiers"`,
		`"small-3" [label="no annual plan"`,
		`"big-1" -> "head";`,
		`"mid-2" -> "big-1";`,
		`"small-3" -> "mid-2";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sampleDiagram(), Options{Detailed: true})
	if !strings.Contains(dot, `label="pricing\n#1"`) {
		t.Errorf("detailed label missing ID:\n%s", dot)
	}
}

func TestToDOTEmptyDiagram(t *testing.T) {
	d := bone.New("just a head")
	dot := ToDOT(d, Options{})
	if !strings.Contains(dot, `"head"`) {
		t.Error("empty diagram should still emit the head node")
	}
	if strings.Contains(dot, "->") {
		t.Error("empty diagram should have no edges")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if strings.Contains(out, "pt") {
		t.Errorf("pt units survived: %s", out)
	}
}
