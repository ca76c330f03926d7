package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/ishidiag/fishbone/pkg/bone"
)

// sample builds a diagram with the given shape: one big bone per entry,
// each entry being the number of small bones under a single mid bone.
// A negative entry means a big bone with no mid bones at all.
func sample(shape ...int) *bone.Diagram {
	d := bone.New("head")
	for _, n := range shape {
		b := d.AddBig("cause")
		if n < 0 {
			continue
		}
		m := d.AddMid(b.ID, "sub")
		for j := 0; j < n; j++ {
			d.AddSmall(b.ID, m.ID, "leaf")
		}
	}
	return d
}

func TestBuildDeterminism(t *testing.T) {
	d := sample(3, -1, 0, 5, 2)
	a := Build(d)
	b := Build(d)
	if !reflect.DeepEqual(a, b) {
		t.Error("Build is not deterministic for a fixed tree")
	}
}

func TestBuildEmptyDiagram(t *testing.T) {
	l := Build(bone.New("head"))

	if len(l.Slots) != 0 {
		t.Fatalf("empty diagram produced %d slots", len(l.Slots))
	}
	if got := l.SpineHeadX - l.SpineTailX; got != EmptySpineLength {
		t.Errorf("spine length = %v, want %v", got, EmptySpineLength)
	}
	if l.CanvasWidth != DefaultMinWidth || l.CanvasHeight != DefaultMinHeight {
		t.Errorf("canvas = %vx%v, want floor %vx%v",
			l.CanvasWidth, l.CanvasHeight, DefaultMinWidth, DefaultMinHeight)
	}
	if l.FishScale != 1.0 {
		t.Errorf("FishScale = %v, want 1.0", l.FishScale)
	}
}

func TestBuildPairSharesAnchor(t *testing.T) {
	// Two big bones with identical subtrees form one group: same anchor,
	// opposite sides.
	d := sample(2, 2)
	l := Build(d)

	if len(l.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(l.Slots))
	}
	if l.Slots[0].AnchorX != l.Slots[1].AnchorX {
		t.Errorf("paired bones have anchors %v and %v, want equal",
			l.Slots[0].AnchorX, l.Slots[1].AnchorX)
	}
	if l.Slots[0].Bone.Side == l.Slots[1].Bone.Side {
		t.Error("paired bones share a side")
	}

	g := pairGroups(d.Bones)[0]
	want := math.Max(SlotWidth(d.Bones[0]), SlotWidth(d.Bones[1])) + PairGap
	if got := g.width(); math.Abs(got-want) > 1e-9 {
		t.Errorf("group width = %v, want %v", got, want)
	}
}

func TestBuildSlotsDoNotOverlap(t *testing.T) {
	d := sample(4, 1, 0, 6, 2, 3)
	l := Build(d)

	groups := pairGroups(d.Bones)
	offs := groupOffsets(groups)
	anchors := make([]float64, len(groups))
	for i := range groups {
		anchors[i] = l.SpineHeadX - headOffset - offs[i]
	}

	for i := 1; i < len(groups); i++ {
		headSideLeft := anchors[i-1] - groups[i-1].leftExtent()
		if anchors[i] >= headSideLeft {
			t.Errorf("group %d anchor %v intrudes into group %d envelope ending at %v",
				i, anchors[i], i-1, headSideLeft)
		}
	}
}

func TestBuildTailClearance(t *testing.T) {
	for _, shape := range [][]int{{0}, {5}, {1, 2, 3, 4, 5, 6, 7}, {-1, -1, -1}} {
		d := sample(shape...)
		l := Build(d)

		minX, _, _ := scanContent(l.Slots)
		if minX+l.ShiftX < l.TailBoundary()-1e-9 {
			t.Errorf("shape %v: content min x %v crosses tail boundary %v",
				shape, minX+l.ShiftX, l.TailBoundary())
		}
		if l.ShiftX != 0 {
			t.Errorf("shape %v: ShiftX = %v, want 0 when envelopes hold", shape, l.ShiftX)
		}
	}
}

func TestBuildGrowsOnlyTailward(t *testing.T) {
	// Adding a leaf under the tail-most group must not disturb the
	// head-side groups' positions relative to the head anchor.
	before := sample(1, 1, 1, 1)
	after := sample(1, 1, 1, 1)
	tail := after.Bones[2] // top member of the tail-side group
	after.AddSmall(tail.ID, tail.MidBones[0].ID, "extra leaf")
	after.AddSmall(tail.ID, tail.MidBones[0].ID, "another")

	lb := Build(before)
	la := Build(after)

	if la.SpineHeadX < lb.SpineHeadX {
		t.Errorf("head anchor moved tailward: %v -> %v", lb.SpineHeadX, la.SpineHeadX)
	}

	// Head-most group keeps its distance from the head anchor.
	db := lb.SpineHeadX - lb.Slots[0].AnchorX
	da := la.SpineHeadX - la.Slots[0].AnchorX
	if math.Abs(db-da) > 1e-9 {
		t.Errorf("head-most group shifted relative to the head: %v -> %v", db, da)
	}
}

func TestBuildCanvasGrowsWithContent(t *testing.T) {
	small := Build(sample(1))
	big := Build(sample(8, 8, 8, 8, 8, 8))

	if big.CanvasWidth <= small.CanvasWidth {
		t.Errorf("canvas width did not grow: %v -> %v", small.CanvasWidth, big.CanvasWidth)
	}
	if big.CanvasHeight <= small.CanvasHeight {
		t.Errorf("canvas height did not grow: %v -> %v", small.CanvasHeight, big.CanvasHeight)
	}
}

func TestBuildMinSizeOption(t *testing.T) {
	l := Build(sample(1), WithMinSize(1200, 900))
	if l.CanvasWidth < 1200 || l.CanvasHeight < 900 {
		t.Errorf("canvas = %vx%v, want at least 1200x900", l.CanvasWidth, l.CanvasHeight)
	}
}

func TestFishScale(t *testing.T) {
	tests := []struct {
		name string
		d    *bone.Diagram
		want float64
	}{
		{name: "empty tree", d: bone.New("h"), want: 1.0},
		{name: "three mids", d: sample(0, 0, 0), want: 1.15},
		{name: "clamped at max", d: sample(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0), want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Build(tt.d)
			if math.Abs(l.FishScale-tt.want) > 1e-9 {
				t.Errorf("FishScale = %v, want %v", l.FishScale, tt.want)
			}
		})
	}
}

func TestSpineYClearsTopContent(t *testing.T) {
	l := Build(sample(6, 6, 6))
	_, minY, _ := scanContent(l.Slots)
	if l.SpineY+minY < canvasPad-1e-9 {
		t.Errorf("top content at %v crosses canvas padding", l.SpineY+minY)
	}
}
