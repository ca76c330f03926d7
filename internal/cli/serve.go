package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/ishidiag/fishbone/pkg/config"
	"github.com/ishidiag/fishbone/pkg/pipeline"
)

type serveOpts struct {
	input string
	name  string
	addr  string
	style string
}

// newServeCmd creates the serve command for the live preview server.
func newServeCmd() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live preview of a diagram",
		Long: `Serve a diagram over HTTP for browser preview.

The diagram is re-read on every request, so edits to the source file
show up on reload. Besides the preview page the server exposes the
rendered SVG, the layout JSON, and the cause tree DOT source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}
			if opts.input == "" && opts.name == "" {
				return fmt.Errorf("a diagram file or --name is required")
			}
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "serve a diagram from the store instead of a file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address, default from config")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style (simple, ink)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.addr == "" {
		opts.addr = cfg.Serve.Addr
	}
	if opts.style == "" {
		opts.style = cfg.Style
	}

	runner := pipeline.NewRunner(openCache(ctx, cfg, logger), nil, logger)
	defer runner.Close()

	srv := &previewServer{
		opts:   opts,
		cfg:    cfg,
		runner: runner,
	}

	server := &http.Server{
		Addr:         opts.addr,
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	printSuccess("Serving preview at http://%s", opts.addr)
	printDetail("Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// previewServer renders a single diagram on demand.
type previewServer struct {
	opts   *serveOpts
	cfg    config.Config
	runner *pipeline.Runner
}

func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/diagram.svg", s.handleArtifact(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/diagram.json", s.handleArtifact(pipeline.FormatJSON, "application/json"))
	r.Get("/diagram.dot", s.handleArtifact(pipeline.FormatDOT, "text/vnd.graphviz"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	return r
}

// render runs the pipeline for one request. The source is re-read each
// time so file edits show up without restarting the server.
func (s *previewServer) render(r *http.Request, format string) ([]byte, error) {
	q := r.URL.Query()

	popts := pipeline.Options{
		Formats: []string{format},
		Style:   s.opts.style,
		View:    pipeline.ViewFishbone,
		Width:   s.cfg.MinWidth,
		Height:  s.cfg.MinHeight,
		Logger:  loggerFromContext(r.Context()),
	}
	if format == pipeline.FormatDOT {
		popts.View = pipeline.ViewCausetree
	}
	if v := q.Get("view"); v != "" {
		popts.View = v
	}
	if v := q.Get("style"); v != "" {
		popts.Style = v
	}
	if v := q.Get("detailed"); v != "" {
		popts.Detailed, _ = strconv.ParseBool(v)
	}
	if format == pipeline.FormatSVG {
		popts.EditOverlays = true
	}

	ctx := r.Context()
	if s.opts.name != "" {
		st, err := openStore(ctx, s.cfg)
		if err != nil {
			return nil, err
		}
		defer st.Close(ctx)
		d, err := st.Load(ctx, s.opts.name)
		if err != nil {
			return nil, err
		}
		popts.Diagram = d
	} else {
		popts.Source = s.opts.input
	}

	if err := popts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result, err := s.runner.Execute(ctx, popts)
	if err != nil {
		return nil, err
	}
	return result.Artifacts[format], nil
}

func (s *previewServer) handleArtifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.render(r, format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}

func (s *previewServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	title := s.opts.input
	if title == "" {
		title = s.opts.name
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, previewPage, title)
}

// previewPage embeds the SVG and adds pan, zoom, and reload controls.
const previewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>fishbone: %[1]s</title>
<style>
  body { margin: 0; font-family: -apple-system, 'Segoe UI', sans-serif; background: #f8fafc; }
  header { display: flex; align-items: center; gap: 12px; padding: 10px 16px;
           background: #fff; border-bottom: 1px solid #e2e8f0; }
  header h1 { font-size: 14px; margin: 0; color: #334155; font-weight: 600; }
  header a, header button { font-size: 12px; color: #0891b2; background: none;
           border: 1px solid #cbd5e1; border-radius: 4px; padding: 3px 8px;
           cursor: pointer; text-decoration: none; }
  #viewport { position: absolute; inset: 41px 0 0 0; overflow: hidden; cursor: grab; }
  #canvas { transform-origin: 0 0; }
</style>
</head>
<body>
<header>
  <h1>%[1]s</h1>
  <button onclick="location.reload()">Reload</button>
  <button onclick="resetView()">Reset view</button>
  <a href="/diagram.json">json</a>
  <a href="/diagram.dot">dot</a>
</header>
<div id="viewport"><div id="canvas"></div></div>
<script>
var scale = 1, tx = 0, ty = 0, dragging = false, lastX = 0, lastY = 0;
var viewport = document.getElementById('viewport');
var canvas = document.getElementById('canvas');

fetch('/diagram.svg').then(function (r) { return r.text(); }).then(function (svg) {
  canvas.innerHTML = svg;
});

function apply() {
  canvas.style.transform = 'translate(' + tx + 'px,' + ty + 'px) scale(' + scale + ')';
}
function resetView() { scale = 1; tx = 0; ty = 0; apply(); }

viewport.addEventListener('wheel', function (e) {
  e.preventDefault();
  var factor = e.deltaY < 0 ? 1.1 : 0.9;
  var next = Math.min(8, Math.max(0.2, scale * factor));
  tx = e.clientX - (e.clientX - tx) * (next / scale);
  ty = e.clientY - (e.clientY - ty) * (next / scale);
  scale = next;
  apply();
}, { passive: false });

viewport.addEventListener('mousedown', function (e) {
  dragging = true; lastX = e.clientX; lastY = e.clientY;
  viewport.style.cursor = 'grabbing';
});
window.addEventListener('mousemove', function (e) {
  if (!dragging) return;
  tx += e.clientX - lastX; ty += e.clientY - lastY;
  lastX = e.clientX; lastY = e.clientY;
  apply();
});
window.addEventListener('mouseup', function () {
  dragging = false;
  viewport.style.cursor = 'grab';
});
window.addEventListener('message', function (e) {
  if (e.data && e.data.type === 'fishbone-select') {
    console.log('selected', e.data.ref);
  }
});
</script>
</body>
</html>
`
