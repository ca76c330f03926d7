package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ishidiag/fishbone/pkg/pipeline"
)

type renderOpts struct {
	input    string
	name     string
	output   string
	formats  []string
	style    string
	view     string
	detailed bool
	width    float64
	height   float64
	scale    float64
	refresh  bool
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram to SVG, PNG, PDF, JSON, or DOT",
		Long: `Render a diagram document to one or more output formats.

The diagram comes from a JSON file argument or, with --name, from the
configured store. Layouts and artifacts are cached, so repeated renders
of an unchanged diagram are fast.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}
			return runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "render a diagram from the store instead of a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path, or base path when rendering multiple formats")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", []string{pipeline.FormatSVG}, "output formats (svg, png, pdf, json, dot)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style (simple, ink)")
	cmd.Flags().StringVar(&opts.view, "view", pipeline.ViewFishbone, "view (fishbone, causetree)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include bone ids in causetree labels")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "minimum canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "minimum canvas height")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster scale factor for png output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute instead of reading cached results")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts) error {
	if opts.input == "" && opts.name == "" {
		return fmt.Errorf("a diagram file or --name is required")
	}
	if opts.input != "" && opts.name != "" {
		return fmt.Errorf("pass either a diagram file or --name, not both")
	}

	logger := loggerFromContext(ctx)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.style == "" {
		opts.style = cfg.Style
	}
	if opts.width == 0 {
		opts.width = cfg.MinWidth
	}
	if opts.height == 0 {
		opts.height = cfg.MinHeight
	}
	if opts.scale == 0 {
		opts.scale = cfg.PNGScale
	}

	popts := pipeline.Options{
		Source:   opts.input,
		Formats:  opts.formats,
		Style:    opts.style,
		View:     opts.view,
		Detailed: opts.detailed,
		Width:    opts.width,
		Height:   opts.height,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
		Logger:   logger,
	}

	if opts.name != "" {
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close(ctx)
		d, err := st.Load(ctx, opts.name)
		if err != nil {
			return err
		}
		popts.Diagram = d
	}

	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := pipeline.NewRunner(openCache(ctx, cfg, logger), nil, logger)
	defer runner.Close()

	spin := newSpinner("Rendering")
	slow := needsConverter(popts.Formats)
	if slow {
		spin.Start()
	}
	start := time.Now()
	result, err := runner.Execute(ctx, popts)
	if slow {
		if err != nil {
			spin.StopWithError("Render failed")
		} else {
			spin.StopWithSuccess("Rendered")
		}
	}
	if err != nil {
		return err
	}

	base := renderBasePath(opts)
	for _, format := range popts.Formats {
		data := result.Artifacts[format]
		path := artifactPath(base, format, len(popts.Formats) > 1)
		if path == "" {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		printFile(path)
	}

	if base != "" {
		printStats(result.Stats.BoneCount, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
		printDetail("Finished in %s", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// renderBasePath picks the output base. Empty means stdout, which is only
// sensible for a single text format.
func renderBasePath(opts *renderOpts) string {
	if opts.output != "" {
		return opts.output
	}
	if len(opts.formats) == 1 && isTextFormat(opts.formats[0]) {
		return ""
	}
	if opts.input != "" {
		return strings.TrimSuffix(opts.input, filepath.Ext(opts.input))
	}
	return opts.name
}

// artifactPath derives the file path for one format. With multiple formats
// the base has the format extension appended; with one format an explicit
// extension on the base is respected.
func artifactPath(base, format string, multi bool) string {
	if base == "" {
		return ""
	}
	if !multi && filepath.Ext(base) != "" {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

func isTextFormat(format string) bool {
	switch format {
	case pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatDOT:
		return true
	}
	return false
}

// needsConverter reports whether any format shells out to rsvg-convert.
func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			return true
		}
	}
	return false
}
