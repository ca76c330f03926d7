package layout

import (
	"math"

	"github.com/ishidiag/fishbone/pkg/bone"
)

// Slot is one big bone's placement along the spine. AnchorX is the canvas
// X coordinate (before ShiftX) where the bone's diagonal meets the spine;
// Width is the horizontal footprint reserved toward the tail. Paired top
// and bottom bones share an anchor and differ only vertically.
type Slot struct {
	Bone    *bone.BigBone
	AnchorX float64
	Width   float64
}

// Layout is the complete computed geometry of one diagram. All horizontal
// coordinates are canvas X values before ShiftX; vertical coordinates in
// the drawing helpers are spine-relative until SpineY/ShiftY place them.
type Layout struct {
	Slots []Slot

	CanvasWidth  float64
	CanvasHeight float64

	// SpineY is the final canvas Y of the spine (ShiftY applied).
	SpineY float64
	// SpineTailX and SpineHeadX are the spine endpoints before ShiftX.
	SpineTailX float64
	SpineHeadX float64

	// ShiftX and ShiftY map pre-shift coordinates onto the canvas.
	// ShiftX is zero whenever the extent envelopes held.
	ShiftX float64
	ShiftY float64

	// FishScale sizes the head and tail ornaments; busier diagrams get
	// proportionally larger glyphs.
	FishScale  float64
	HeadWidth  float64
	HeadHeight float64
	TailWidth  float64
	TailHeight float64
}

// TailBoundary returns the smallest X any diagram content may occupy:
// the tail ornament plus its clearance.
func (l Layout) TailBoundary() float64 {
	return l.SpineTailX + TailClearance
}

// Option configures Build.
type Option func(*builder)

// WithMinSize overrides the minimum canvas size. The canvas still grows
// past it when content demands.
func WithMinSize(w, h float64) Option {
	return func(b *builder) {
		if w > 0 {
			b.minWidth = w
		}
		if h > 0 {
			b.minHeight = h
		}
	}
}

type builder struct {
	minWidth  float64
	minHeight float64
}

// group pairs big bones two at a time in creation order: a top member
// (even index) and an optional bottom member (odd index). Group 0 sits
// closest to the head.
type group struct {
	top    *bone.BigBone
	bottom *bone.BigBone
}

func (g group) members() []*bone.BigBone {
	if g.bottom == nil {
		return []*bone.BigBone{g.top}
	}
	return []*bone.BigBone{g.top, g.bottom}
}

func (g group) width() float64 {
	w := SlotWidth(g.top)
	if g.bottom != nil {
		w = math.Max(w, SlotWidth(g.bottom)) + PairGap
	}
	return w
}

func (g group) leftExtent() float64 {
	e := LeftExtent(g.top)
	if g.bottom != nil {
		e = math.Max(e, LeftExtent(g.bottom))
	}
	return e
}

func (g group) diagProjection() float64 {
	p := DiagonalProjection(g.top)
	if g.bottom != nil {
		p = math.Max(p, DiagonalProjection(g.bottom))
	}
	return p
}

func pairGroups(bones []*bone.BigBone) []group {
	groups := make([]group, 0, (len(bones)+1)/2)
	for i := 0; i < len(bones); i += 2 {
		g := group{top: bones[i]}
		if i+1 < len(bones) {
			g.bottom = bones[i+1]
		}
		groups = append(groups, g)
	}
	return groups
}

// groupOffsets returns each group's distance from the head-most anchor,
// walking toward the tail. The step from one group to the next is the
// nearer group's reserved width plus the fixed gap, padded when either
// adjoining diagonal projects past the reserved width so 45° lines keep
// visual separation.
func groupOffsets(groups []group) []float64 {
	offs := make([]float64, len(groups))
	for i := 1; i < len(groups); i++ {
		prev, next := groups[i-1], groups[i]
		step := prev.width() + GroupGap
		overhang := math.Max(prev.diagProjection(), next.diagProjection())
		if pad := overhang + diagonalClearance - prev.width(); pad > 0 {
			step += pad
		}
		offs[i] = offs[i-1] + step
	}
	return offs
}

// Build computes the full layout for a diagram. It never mutates the tree
// and is deterministic: the same tree always yields the same geometry.
func Build(d *bone.Diagram, opts ...Option) Layout {
	b := builder{minWidth: DefaultMinWidth, minHeight: DefaultMinHeight}
	for _, opt := range opts {
		opt(&b)
	}

	scale := fishScale(d)
	l := Layout{
		FishScale:  scale,
		HeadWidth:  headGlyphBaseWidth * scale,
		HeadHeight: headGlyphBaseHeight * scale,
		TailWidth:  tailGlyphBaseWidth * scale,
		TailHeight: tailGlyphBaseHeight * scale,
	}
	l.SpineTailX = canvasPad + l.TailWidth

	// The tail-safety boundary: no content may cross it.
	boundary := l.SpineTailX + TailClearance

	groups := pairGroups(d.Bones)
	if len(groups) == 0 {
		l.SpineHeadX = l.SpineTailX + EmptySpineLength
	} else {
		offs := groupOffsets(groups)

		// Solve the single head-side anchor so that every group,
		// including the tail-most, clears the boundary with its full
		// envelope. A max-reduction over all groups' cumulative
		// demands, not a greedy walk.
		anchor := 0.0
		for i, g := range groups {
			anchor = math.Max(anchor, boundary+offs[i]+g.leftExtent())
		}

		for i, g := range groups {
			ax := anchor - offs[i]
			for _, bb := range g.members() {
				l.Slots = append(l.Slots, Slot{Bone: bb, AnchorX: ax, Width: SlotWidth(bb)})
			}
		}
		l.SpineHeadX = anchor + headOffset
	}

	minX, minY, maxY := scanContent(l.Slots)

	// Safety shift: content must clear the tail boundary and the canvas
	// top. The anchor solve guarantees the X half; the shift would catch
	// an envelope that under-reported.
	if len(l.Slots) > 0 {
		l.ShiftX = math.Max(0, boundary-minX)
	}
	minY = math.Min(minY, -l.HeadHeight/2)
	maxY = math.Max(maxY, l.HeadHeight/2)
	l.ShiftY = math.Max(0, canvasPad-minY)
	l.SpineY = l.ShiftY

	maxX := l.SpineHeadX + l.HeadWidth
	l.CanvasWidth = math.Max(b.minWidth, maxX+l.ShiftX+canvasPad)
	l.CanvasHeight = math.Max(b.minHeight, maxY+l.ShiftY+canvasPad)
	return l
}

// scanContent walks every placed bone's drawn geometry and returns the
// minimum X and the vertical extremes, all spine-relative in Y.
func scanContent(slots []Slot) (minX, minY, maxY float64) {
	minX, minY, maxY = math.Inf(1), 0, 0
	for _, s := range slots {
		bb := s.Bone

		ex, ey := DiagonalEnd(bb, s.AnchorX)
		bw := BigStyle.BoxWidth(bb.Label)
		bh := BigStyle.BoxHeight(bb.Label)
		minX = math.Min(minX, ex-bw/2)
		// The label box grows away from the spine past the diagonal end.
		minY = math.Min(minY, ey-bh)
		maxY = math.Max(maxY, ey+bh)

		for i, m := range bb.MidBones {
			mx, my := MidAnchor(bb, s.AnchorX, i)
			boxLeft := mx - MidReach(m) - MidStyle.BoxWidth(m.Label)
			minX = math.Min(minX, boxLeft)
			mh := MidStyle.BoxHeight(m.Label)
			minY = math.Min(minY, my-mh/2)
			maxY = math.Max(maxY, my+mh/2)

			if n := len(m.SmallBones); n > 0 {
				gh := SmallGroupHeight(m)
				minX = math.Min(minX, boxLeft-SmallLink-widestSmall(m))
				minY = math.Min(minY, my-gh/2)
				maxY = math.Max(maxY, my+gh/2)
			}
		}
	}
	if math.IsInf(minX, 1) {
		minX = 0
	}
	return minX, minY, maxY
}

func fishScale(d *bone.Diagram) float64 {
	return math.Min(maxFishScale, baseFishScale+fishScaleStep*float64(d.MidCount()))
}
