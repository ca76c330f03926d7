package sink

import (
	"encoding/json"
	"testing"

	"github.com/ishidiag/fishbone/pkg/layout"
)

func TestRenderJSON(t *testing.T) {
	d := sampleDiagram()
	l := layout.Build(d)

	data, err := RenderJSON(l, d, WithJSONStyle("simple"))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Width != l.CanvasWidth || out.Height != l.CanvasHeight {
		t.Errorf("canvas = %vx%v, want %vx%v", out.Width, out.Height, l.CanvasWidth, l.CanvasHeight)
	}
	if out.Style != "simple" {
		t.Errorf("style = %q, want simple", out.Style)
	}
	// 1 head + 2 big + 1 mid + 2 small label boxes.
	if len(out.Boxes) != 6 {
		t.Errorf("boxes = %d, want 6", len(out.Boxes))
	}
	if len(out.Lines) == 0 {
		t.Error("no lines exported")
	}
	refs := map[string]bool{}
	for _, b := range out.Boxes {
		if refs[b.Ref] {
			t.Errorf("duplicate ref %q", b.Ref)
		}
		refs[b.Ref] = true
	}
}
