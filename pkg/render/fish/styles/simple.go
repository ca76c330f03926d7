package styles

import (
	"bytes"
	"fmt"
)

// Simple is the default clean style: solid strokes, softly filled label
// boxes, one accent color per bone level.
type Simple struct{}

var simpleBoxFill = map[string]string{
	KindHeadBox:  "#dbeafe",
	KindBigBox:   "#e0e7ff",
	KindMidBox:   "#f1f5f9",
	KindSmallBox: "#ffffff",
}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderLine(buf *bytes.Buffer, l Line) {
	width := 1.5
	if l.Kind == KindSpine {
		width = 3
	} else if l.Kind == KindDiagonal {
		width = 2
	}
	fmt.Fprintf(buf,
		"  <line class=\"bone %s\" x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#334155\" stroke-width=\"%.1f\" stroke-linecap=\"round\"/>\n",
		l.Kind, l.X1, l.Y1, l.X2, l.Y2, width)
}

func (Simple) RenderCurve(buf *bytes.Buffer, c Curve) {
	fmt.Fprintf(buf,
		"  <path class=\"bone connector\" d=\"M %.1f,%.1f C %.1f,%.1f %.1f,%.1f %.1f,%.1f\" fill=\"none\" stroke=\"#64748b\" stroke-width=\"1.5\" stroke-linecap=\"round\"/>\n",
		c.X1, c.Y1, c.CX1, c.CY1, c.CX2, c.CY2, c.X2, c.Y2)
}

func (Simple) RenderBox(buf *bytes.Buffer, b Box) {
	fill := simpleBoxFill[b.Kind]
	if fill == "" {
		fill = "#ffffff"
	}
	fmt.Fprintf(buf,
		"  <rect id=\"box-%s\" class=\"box %s\" x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"4\" fill=\"%s\" stroke=\"#334155\" stroke-width=\"1.2\"/>\n",
		b.Ref, b.Kind, b.X, b.Y, b.W, b.H, fill)
}

func (Simple) RenderText(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf,
		"  <text class=\"box-text\" data-box=\"%s\" x=\"%.1f\" y=\"%.1f\" font-size=\"%.1f\" font-family=\"sans-serif\" fill=\"#0f172a\" text-anchor=\"middle\" dominant-baseline=\"middle\">",
		b.Ref, b.CenterX(), b.CenterY(), b.FontSize)
	writeSpans(buf, b)
	buf.WriteString("</text>\n")
}

func (Simple) RenderGlyph(buf *bytes.Buffer, g Glyph) {
	renderGlyphPath(buf, g, "#cbd5e1", "#334155")
}

// writeSpans emits the wrapped label lines, vertically centered.
func writeSpans(buf *bytes.Buffer, b Box) {
	if len(b.Lines) <= 1 {
		text := b.Label
		if len(b.Lines) == 1 {
			text = b.Lines[0]
		}
		buf.WriteString(EscapeXML(text))
		return
	}
	lh := b.FontSize * 1.15
	start := b.CenterY() - lh*float64(len(b.Lines)-1)/2
	for i, line := range b.Lines {
		fmt.Fprintf(buf, "<tspan x=\"%.1f\" y=\"%.1f\">%s</tspan>",
			b.CenterX(), start+lh*float64(i), EscapeXML(line))
	}
}

// renderGlyphPath draws the head or tail ornament into the glyph's rect.
// The head is a rightward-pointing fish head, the tail a forked fin.
func renderGlyphPath(buf *bytes.Buffer, g Glyph, fill, stroke string) {
	switch g.Kind {
	case KindHeadGlyph:
		nose := g.X + g.W
		midY := g.Y + g.H/2
		fmt.Fprintf(buf,
			"  <path class=\"glyph head\" d=\"M %.1f,%.1f C %.1f,%.1f %.1f,%.1f %.1f,%.1f C %.1f,%.1f %.1f,%.1f %.1f,%.1f Q %.1f,%.1f %.1f,%.1f Z\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			g.X, g.Y,
			g.X+g.W*0.75, g.Y, nose, midY-g.H*0.18, nose, midY,
			nose, midY+g.H*0.18, g.X+g.W*0.75, g.Y+g.H, g.X, g.Y+g.H,
			g.X+g.W*0.2, midY, g.X, g.Y,
			fill, stroke)
		fmt.Fprintf(buf,
			"  <circle class=\"glyph eye\" cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n",
			g.X+g.W*0.62, midY-g.H*0.16, 2.5*g.Scale, stroke)
	case KindTailGlyph:
		midY := g.Y + g.H/2
		fmt.Fprintf(buf,
			"  <path class=\"glyph tail\" d=\"M %.1f,%.1f L %.1f,%.1f L %.1f,%.1f L %.1f,%.1f Z\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			g.X+g.W, midY, g.X, g.Y, g.X+g.W*0.45, midY, g.X, g.Y+g.H,
			fill, stroke)
	}
}
