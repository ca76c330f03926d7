package layout

import (
	"math"

	"github.com/ishidiag/fishbone/pkg/bone"
)

// SmallGroupHeight returns the vertical extent of a mid bone's stacked
// small bones: each box height plus SmallGap between consecutive boxes.
// Zero small bones take zero height.
func SmallGroupHeight(m *bone.MidBone) float64 {
	if len(m.SmallBones) == 0 {
		return 0
	}
	h := 0.0
	for i, s := range m.SmallBones {
		if i > 0 {
			h += SmallGap
		}
		h += SmallStyle.BoxHeight(s.Label)
	}
	return h
}

// MidSpan returns the length a mid bone consumes along its parent's 45°
// diagonal. The perpendicular clearance it needs (its own box plus the
// small-bone stack) costs √2 units of diagonal length per unit.
func MidSpan(m *bone.MidBone) float64 {
	h := MidStyle.BoxHeight(m.Label)
	perp := math.Max(h+midClearance, SmallGroupHeight(m)+h)
	return perp * math.Sqrt2
}

// MidReach returns how far a mid bone's horizontal line runs toward the
// tail from its diagonal anchor. Stacked small bones push the line out so
// their fan of connectors clears the diagonal.
func MidReach(m *bone.MidBone) float64 {
	return midReachBase + SmallGroupHeight(m)/2
}

// headMargin is the diagonal length reserved near the spine for the big
// bone's own label before the first mid bone anchors.
func headMargin(b *bone.BigBone) float64 {
	return BigStyle.BoxHeight(b.Label) * headMarginFactor
}

// Diagonal returns the length of a big bone's 45° line from its spine
// anchor to the labeled far end. A bone with no mid bones gets the fixed
// default; otherwise the head margin plus every mid span plus a tail
// margin, floored at the default. Under the current sizing constants the
// smallest mid-bearing bone already exceeds DefaultDiagonal, so the
// floor is a guard against future constant changes, not a reachable
// case.
func Diagonal(b *bone.BigBone) float64 {
	if len(b.MidBones) == 0 {
		return DefaultDiagonal
	}
	d := headMargin(b) + diagonalTailMargin
	for _, m := range b.MidBones {
		d += MidSpan(m)
	}
	return math.Max(DefaultDiagonal, d)
}

// DiagonalProjection returns the horizontal (and, at 45°, equal vertical)
// projection of the bone's diagonal.
func DiagonalProjection(b *bone.BigBone) float64 {
	return Diagonal(b) / math.Sqrt2
}

// MidOffset returns the distance along the diagonal from the spine anchor
// to the center of mid bone i: the head margin, every preceding span, and
// half of mid i's own span.
func MidOffset(b *bone.BigBone, i int) float64 {
	off := headMargin(b)
	for j := 0; j < i; j++ {
		off += MidSpan(b.MidBones[j])
	}
	return off + MidSpan(b.MidBones[i])/2
}

// MidAnchorT returns the interpolation parameter of mid bone i along the
// diagonal, in [0, 1] for any tree the sizing formulas produced.
func MidAnchorT(b *bone.BigBone, i int) float64 {
	return MidOffset(b, i) / Diagonal(b)
}

// LeftExtent returns the big bone's horizontal footprint toward the tail,
// measured from its spine anchor. It is the maximum envelope of all the
// branch's own geometry: the diagonal's projection plus the half of the
// big label box that overhangs the diagonal end, and for each mid bone
// its anchor projection plus line reach plus label box plus, when small
// bones exist, the connector link and the widest small box. Sibling
// slots and the tail ornament are placed against this value, so it must
// never under-report.
func LeftExtent(b *bone.BigBone) float64 {
	ext := DiagonalProjection(b) + math.Max(extentMargin, BigStyle.BoxWidth(b.Label)/2)
	for i, m := range b.MidBones {
		w := MidOffset(b, i)/math.Sqrt2 + MidReach(m) + MidStyle.BoxWidth(m.Label) + midBoxMargin
		if len(m.SmallBones) > 0 {
			w += SmallLink + widestSmall(m) + smallBoxMargin
		}
		ext = math.Max(ext, w)
	}
	return ext
}

func widestSmall(m *bone.MidBone) float64 {
	w := 0.0
	for _, s := range m.SmallBones {
		w = math.Max(w, SmallStyle.BoxWidth(s.Label))
	}
	return w
}

// SlotWidth returns the spine footprint reserved for the big bone.
func SlotWidth(b *bone.BigBone) float64 {
	return math.Max(MinSlotWidth, LeftExtent(b)+slotMargin)
}

// sideSign maps a bone side onto the vertical axis: top-side content
// grows upward (negative y), bottom-side downward.
func sideSign(s bone.Side) float64 {
	if s == bone.SideBottom {
		return 1
	}
	return -1
}

// DiagonalEnd returns the spine-relative coordinates of the diagonal's
// far (labeled) end for a bone anchored at anchorX.
func DiagonalEnd(b *bone.BigBone, anchorX float64) (x, y float64) {
	p := DiagonalProjection(b)
	return anchorX - p, sideSign(b.Side) * p
}

// MidAnchor returns the spine-relative coordinates where mid bone i
// attaches to the diagonal, found by linear interpolation at MidAnchorT.
func MidAnchor(b *bone.BigBone, anchorX float64, i int) (x, y float64) {
	t := MidAnchorT(b, i)
	p := DiagonalProjection(b)
	return anchorX - t*p, sideSign(b.Side) * t * p
}
