package pipeline

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/cache"
	"github.com/ishidiag/fishbone/pkg/fishio"
)

func testDiagram() *bone.Diagram {
	d := bone.New("high error rate")
	big := d.AddBig("deploys")
	mid := d.AddMid(big.ID, "rollout speed")
	d.AddSmall(big.ID, mid.ID, "no canary")
	d.AddBig("traffic")
	return d
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Diagram: testDiagram()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size defaults not applied: %v x %v", opts.Width, opts.Height)
	}
	if opts.Style != StyleSimple || opts.View != ViewFishbone {
		t.Errorf("render defaults not applied: %q %q", opts.Style, opts.View)
	}
	if !reflect.DeepEqual(opts.Formats, []string{FormatSVG}) {
		t.Errorf("formats default = %v", opts.Formats)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"no source", Options{}, "source or diagram"},
		{"bad format", Options{Diagram: testDiagram(), Formats: []string{"gif"}}, "invalid format"},
		{"bad style", Options{Diagram: testDiagram(), Style: "sketchy"}, "invalid style"},
		{"bad view", Options{Diagram: testDiagram(), View: "sunburst"}, "invalid view"},
		{"dot needs causetree", Options{Diagram: testDiagram(), Formats: []string{FormatDOT}}, "causetree"},
		{"json needs fishbone", Options{Diagram: testDiagram(), View: ViewCausetree, Formats: []string{FormatJSON}}, "fishbone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.json")
	if err := fishio.Export(testDiagram(), path); err != nil {
		t.Fatal(err)
	}

	d, hash, err := Load(context.Background(), Options{Source: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Head != "high error rate" {
		t.Errorf("head = %q", d.Head)
	}
	if len(hash) != 64 {
		t.Errorf("hash = %q, want 64 hex chars", hash)
	}

	// The same content loaded in memory keys identically.
	_, hash2, err := Load(context.Background(), Options{Diagram: testDiagram()})
	if err != nil {
		t.Fatal(err)
	}
	if hash != hash2 {
		t.Error("file and in-memory hashes should match for equal content")
	}
}

func TestExecuteProducesArtifacts(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Diagram: testDiagram(),
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.Contains(string(svg), "<svg") {
		t.Error("missing or malformed SVG artifact")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("missing JSON artifact")
	}
	if result.Stats.BoneCount != 4 {
		t.Errorf("bone count = %d, want 4", result.Stats.BoneCount)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("null cache should never report hits")
	}
}

func TestExecuteCachesAcrossRuns(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	opts := Options{Diagram: testDiagram(), Formats: []string{FormatSVG}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}

	second, err := runner.Execute(context.Background(), Options{Diagram: testDiagram(), Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered one")
	}

	refreshed, err := runner.Execute(context.Background(), Options{
		Diagram: testDiagram(), Formats: []string{FormatSVG}, Refresh: true,
	})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.LayoutHit || refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteCausetreeDOT(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Diagram: testDiagram(),
		View:    ViewCausetree,
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, "digraph causes") {
		t.Errorf("unexpected DOT output: %s", dot)
	}
}

func TestLayoutMarshalRoundTrip(t *testing.T) {
	d := testDiagram()
	l := ComputeLayout(d, Options{})

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if got.CanvasWidth != l.CanvasWidth || got.SpineHeadX != l.SpineHeadX {
		t.Errorf("round trip changed layout: %+v vs %+v", got, l)
	}
	if len(got.Slots) != len(l.Slots) {
		t.Fatalf("slots = %d, want %d", len(got.Slots), len(l.Slots))
	}
	if got.Slots[0].Bone.Label != l.Slots[0].Bone.Label {
		t.Error("slot bones lost in round trip")
	}
}
