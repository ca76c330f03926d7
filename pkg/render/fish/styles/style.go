package styles

import "bytes"

// Element kinds, used by styles to pick stroke weights and by the edit
// overlay to address boxes.
const (
	KindSpine     = "spine"
	KindDiagonal  = "diagonal"
	KindMidline   = "midline"
	KindStub      = "stub"
	KindConnector = "connector"

	KindHeadBox  = "head"
	KindBigBox   = "big"
	KindMidBox   = "mid"
	KindSmallBox = "small"

	KindHeadGlyph = "head-glyph"
	KindTailGlyph = "tail-glyph"
)

// Style defines the visual appearance for fishbone rendering.
// Implementations control how bones, boxes, text, and ornaments are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, markers, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderLine writes the SVG for one straight bone segment.
	RenderLine(buf *bytes.Buffer, l Line)
	// RenderCurve writes the SVG for one cubic small-bone connector.
	RenderCurve(buf *bytes.Buffer, c Curve)
	// RenderBox writes the SVG for a label box shape.
	RenderBox(buf *bytes.Buffer, b Box)
	// RenderText writes the SVG for a box's label text.
	RenderText(buf *bytes.Buffer, b Box)
	// RenderGlyph writes the SVG for the head or tail ornament.
	RenderGlyph(buf *bytes.Buffer, g Glyph)
}

// Line is one straight segment: the spine, a diagonal, a mid-bone line,
// a fan stub, or a single-small connector.
type Line struct {
	Kind           string
	X1, Y1, X2, Y2 float64
}

// Curve is a cubic Bézier connector from a fan branch point to a small
// bone, with horizontal tangents at both ends.
type Curve struct {
	X1, Y1   float64 // start (branch point)
	CX1, CY1 float64
	CX2, CY2 float64
	X2, Y2   float64 // end (small-bone box edge)
}

// Box contains all data needed to render one label box.
type Box struct {
	Kind       string   // KindHeadBox, KindBigBox, KindMidBox, KindSmallBox
	Ref        string   // Stable element reference, e.g. "big-3" (for overlays)
	Label      string   // Full label text
	Lines      []string // Label split for display (one or two lines)
	X, Y, W, H float64  // Position and dimensions
	FontSize   float64
}

// Glyph positions the head or tail ornament.
type Glyph struct {
	Kind       string // KindHeadGlyph or KindTailGlyph
	X, Y, W, H float64
	Scale      float64
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }
