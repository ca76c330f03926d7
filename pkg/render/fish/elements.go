// Package fish renders a laid-out diagram as a fishbone drawing. The
// heavy lifting happens in BuildElements, which walks the layout and
// emits flat lists of lines, curves, boxes and glyphs in final canvas
// coordinates. Styles and output sinks consume those lists without
// knowing any bone geometry.
package fish

import (
	"fmt"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/layout"
	"github.com/ishidiag/fishbone/pkg/render/fish/styles"
)

// fanStub is the fraction of the small-bone link consumed by the
// straight stub before the connector fan branches.
const fanStub = 0.35

// curveBend is the fractional horizontal offset of the cubic control
// points on fanned small-bone connectors.
const curveBend = 0.65

// Elements is the flattened draw list for one diagram.
type Elements struct {
	Lines  []styles.Line
	Curves []styles.Curve
	Boxes  []styles.Box
	Glyphs []styles.Glyph
}

// BuildElements walks every slot of the layout and produces the full
// draw list. All coordinates are final canvas coordinates: the layout's
// ShiftX and SpineY are already applied.
func BuildElements(l layout.Layout, d *bone.Diagram) Elements {
	var e Elements
	dx, dy := l.ShiftX, l.SpineY

	// Spine and its ornaments.
	e.Lines = append(e.Lines, styles.Line{
		Kind: styles.KindSpine,
		X1:   l.SpineTailX + dx, Y1: dy,
		X2: l.SpineHeadX + dx, Y2: dy,
	})
	e.Glyphs = append(e.Glyphs,
		styles.Glyph{
			Kind: styles.KindTailGlyph, Scale: l.FishScale,
			X: l.SpineTailX - l.TailWidth + dx, Y: dy - l.TailHeight/2,
			W: l.TailWidth, H: l.TailHeight,
		},
		styles.Glyph{
			Kind: styles.KindHeadGlyph, Scale: l.FishScale,
			X: l.SpineHeadX + dx, Y: dy - l.HeadHeight/2,
			W: l.HeadWidth, H: l.HeadHeight,
		})

	e.Boxes = append(e.Boxes, headBox(l, d.Head, dx, dy))

	for _, s := range l.Slots {
		buildBranch(&e, s, dx, dy)
	}
	return e
}

// headBox centers the problem statement over the head ornament.
func headBox(l layout.Layout, label string, dx, dy float64) styles.Box {
	st := layout.BigStyle
	w, h := st.BoxWidth(label), st.BoxHeight(label)
	return styles.Box{
		Kind: styles.KindHeadBox, Ref: "head",
		Label: label, Lines: layout.WrapLabel(label),
		X: l.SpineHeadX + l.HeadWidth/2 - w/2 + dx, Y: dy - h/2,
		W: w, H: h, FontSize: st.FontSize,
	}
}

// buildBranch emits one big bone's diagonal, label box, mid lines and
// small-bone fans.
func buildBranch(e *Elements, s layout.Slot, dx, dy float64) {
	bb := s.Bone
	ex, ey := layout.DiagonalEnd(bb, s.AnchorX)

	e.Lines = append(e.Lines, styles.Line{
		Kind: styles.KindDiagonal,
		X1:   s.AnchorX + dx, Y1: dy,
		X2: ex + dx, Y2: ey + dy,
	})

	// The big label box sits at the far end of the diagonal and grows
	// away from the spine.
	bw := layout.BigStyle.BoxWidth(bb.Label)
	bh := layout.BigStyle.BoxHeight(bb.Label)
	by := ey
	if bb.Side == bone.SideTop {
		by -= bh
	}
	e.Boxes = append(e.Boxes, styles.Box{
		Kind: styles.KindBigBox, Ref: fmt.Sprintf("big-%d", bb.ID),
		Label: bb.Label, Lines: layout.WrapLabel(bb.Label),
		X: ex - bw/2 + dx, Y: by + dy,
		W: bw, H: bh, FontSize: layout.BigStyle.FontSize,
	})

	for i, m := range bb.MidBones {
		buildMid(e, bb, s.AnchorX, i, m, dx, dy)
	}
}

func buildMid(e *Elements, bb *bone.BigBone, anchorX float64, i int, m *bone.MidBone, dx, dy float64) {
	mx, my := layout.MidAnchor(bb, anchorX, i)
	reach := layout.MidReach(m)
	mw := layout.MidStyle.BoxWidth(m.Label)
	mh := layout.MidStyle.BoxHeight(m.Label)
	boxLeft := mx - reach - mw

	e.Lines = append(e.Lines, styles.Line{
		Kind: styles.KindMidline,
		X1:   mx + dx, Y1: my + dy,
		X2: mx - reach + dx, Y2: my + dy,
	})
	e.Boxes = append(e.Boxes, styles.Box{
		Kind: styles.KindMidBox, Ref: fmt.Sprintf("mid-%d", m.ID),
		Label: m.Label, Lines: layout.WrapLabel(m.Label),
		X: boxLeft + dx, Y: my - mh/2 + dy,
		W: mw, H: mh, FontSize: layout.MidStyle.FontSize,
	})

	if len(m.SmallBones) > 0 {
		buildFan(e, m, boxLeft, my, dx, dy)
	}
}

// buildFan stacks the small bones to the left of the mid box, centered
// on the mid line, and connects them. A single small bone gets one
// straight connector; several share a stub that fans out in cubic
// curves.
func buildFan(e *Elements, m *bone.MidBone, boxLeft, my, dx, dy float64) {
	rightEdge := boxLeft - layout.SmallLink
	top := my - layout.SmallGroupHeight(m)/2

	single := len(m.SmallBones) == 1
	branchX := boxLeft - layout.SmallLink*fanStub
	if !single {
		e.Lines = append(e.Lines, styles.Line{
			Kind: styles.KindStub,
			X1:   boxLeft + dx, Y1: my + dy,
			X2: branchX + dx, Y2: my + dy,
		})
	}

	y := top
	for _, sb := range m.SmallBones {
		sw := layout.SmallStyle.BoxWidth(sb.Label)
		sh := layout.SmallStyle.BoxHeight(sb.Label)
		cy := y + sh/2

		if single {
			e.Lines = append(e.Lines, styles.Line{
				Kind: styles.KindConnector,
				X1:   boxLeft + dx, Y1: my + dy,
				X2: rightEdge + dx, Y2: cy + dy,
			})
		} else {
			span := branchX - rightEdge
			e.Curves = append(e.Curves, styles.Curve{
				X1: branchX + dx, Y1: my + dy,
				CX1: branchX - span*curveBend + dx, CY1: my + dy,
				CX2: rightEdge + span*curveBend + dx, CY2: cy + dy,
				X2: rightEdge + dx, Y2: cy + dy,
			})
		}

		e.Boxes = append(e.Boxes, styles.Box{
			Kind: styles.KindSmallBox, Ref: fmt.Sprintf("small-%d", sb.ID),
			Label: sb.Label, Lines: layout.WrapLabel(sb.Label),
			X: rightEdge - sw + dx, Y: y + dy,
			W: sw, H: sh, FontSize: layout.SmallStyle.FontSize,
		})
		y += sh + layout.SmallGap
	}
}
