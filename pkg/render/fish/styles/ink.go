package styles

import (
	"bytes"
	"fmt"
)

// Ink is a monochrome hand-drawn look: unfilled boxes, heavy black
// strokes, dashed connectors. Useful for print and whiteboard exports.
type Ink struct{}

func (Ink) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <style>.bone,.box,.glyph{stroke:#111}</style>\n")
}

func (Ink) RenderLine(buf *bytes.Buffer, l Line) {
	width := 1.8
	if l.Kind == KindSpine {
		width = 3.5
	} else if l.Kind == KindDiagonal {
		width = 2.4
	}
	fmt.Fprintf(buf,
		"  <line class=\"bone %s\" x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#111\" stroke-width=\"%.1f\" stroke-linecap=\"round\"/>\n",
		l.Kind, l.X1, l.Y1, l.X2, l.Y2, width)
}

func (Ink) RenderCurve(buf *bytes.Buffer, c Curve) {
	fmt.Fprintf(buf,
		"  <path class=\"bone connector\" d=\"M %.1f,%.1f C %.1f,%.1f %.1f,%.1f %.1f,%.1f\" fill=\"none\" stroke=\"#111\" stroke-width=\"1.6\" stroke-dasharray=\"4 3\" stroke-linecap=\"round\"/>\n",
		c.X1, c.Y1, c.CX1, c.CY1, c.CX2, c.CY2, c.X2, c.Y2)
}

func (Ink) RenderBox(buf *bytes.Buffer, b Box) {
	width := 1.4
	if b.Kind == KindHeadBox {
		width = 2.2
	}
	fmt.Fprintf(buf,
		"  <rect id=\"box-%s\" class=\"box %s\" x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"#fff\" stroke=\"#111\" stroke-width=\"%.1f\"/>\n",
		b.Ref, b.Kind, b.X, b.Y, b.W, b.H, width)
}

func (Ink) RenderText(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf,
		"  <text class=\"box-text\" data-box=\"%s\" x=\"%.1f\" y=\"%.1f\" font-size=\"%.1f\" font-family=\"monospace\" fill=\"#111\" text-anchor=\"middle\" dominant-baseline=\"middle\">",
		b.Ref, b.CenterX(), b.CenterY(), b.FontSize)
	writeSpans(buf, b)
	buf.WriteString("</text>\n")
}

func (Ink) RenderGlyph(buf *bytes.Buffer, g Glyph) {
	renderGlyphPath(buf, g, "none", "#111")
}
