package sink

import (
	"bytes"
	"fmt"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/layout"
	"github.com/ishidiag/fishbone/pkg/render/fish"
	"github.com/ishidiag/fishbone/pkg/render/fish/styles"
)

const boxInteractionCSS = `
    .box { transition: stroke-width 0.2s ease; }
    .box.highlight { stroke-width: 3; }
    .box-text { transition: transform 0.2s ease; transform-origin: center; transform-box: fill-box; }
    .box-text.highlight { transform: scale(1.08); font-weight: bold; }`

const boxInteractionJS = `
    function highlight(refs) {
      document.querySelectorAll('.box').forEach(b => b.classList.toggle('highlight', refs.includes(b.id.replace('box-', ''))));
      document.querySelectorAll('.box-text').forEach(t => t.classList.toggle('highlight', refs.includes(t.dataset.box)));
    }
    function clearHighlight() {
      document.querySelectorAll('.box, .box-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.box').forEach(el => {
      el.addEventListener('mouseenter', () => highlight([el.id.replace('box-', '')]));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// editOverlayJS reports clicks on bone boxes to the embedding page, so a
// live preview can drive edits from the drawing.
const editOverlayJS = `
    document.querySelectorAll('.box').forEach(el => {
      el.addEventListener('click', () => {
        const ref = el.id.replace('box-', '');
        if (window.parent !== window) {
          window.parent.postMessage({ type: 'fishbone-select', ref: ref }, '*');
        }
        document.querySelectorAll('.box').forEach(b => b.classList.toggle('selected', b === el));
      });
    });`

const editOverlayCSS = `
    .box { cursor: pointer; }
    .box.selected { stroke: #dc2626; stroke-width: 3; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	overlays bool
}

// WithStyle selects the visual style ([styles.Simple] or [styles.Ink]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithEditOverlays adds click handlers that report the selected bone to
// the embedding page. Used by the serve preview.
func WithEditOverlays() SVGOption { return func(r *svgRenderer) { r.overlays = true } }

// RenderSVG renders the laid-out diagram as a standalone SVG document.
func RenderSVG(l layout.Layout, d *bone.Diagram, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	e := fish.BuildElements(l, d)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.CanvasWidth, l.CanvasHeight, l.CanvasWidth, l.CanvasHeight)

	r.style.RenderDefs(&buf)
	renderContent(&buf, r.style, e)
	renderBoxInteraction(&buf, r.overlays)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderContent draws bones first, then glyphs, then boxes and text on
// top so labels stay legible where geometry crosses.
func renderContent(buf *bytes.Buffer, st styles.Style, e fish.Elements) {
	for _, l := range e.Lines {
		st.RenderLine(buf, l)
	}
	for _, c := range e.Curves {
		st.RenderCurve(buf, c)
	}
	for _, g := range e.Glyphs {
		st.RenderGlyph(buf, g)
	}
	for _, b := range e.Boxes {
		st.RenderBox(buf, b)
	}
	for _, b := range e.Boxes {
		st.RenderText(buf, b)
	}
}

func renderBoxInteraction(buf *bytes.Buffer, overlays bool) {
	css, js := boxInteractionCSS, boxInteractionJS
	if overlays {
		css += editOverlayCSS
		js += editOverlayJS
	}
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", css)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", js)
}
