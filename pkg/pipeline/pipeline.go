// Package pipeline provides the load → layout → render pipeline shared
// by the CLI and the preview server. Centralizing it keeps caching and
// validation behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode the diagram document
//  2. Layout: compute bone positions and the canvas
//  3. Render: generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "incidents.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/cache"
)

// Default values shared by the CLI and the preview server.
const (
	// DefaultWidth is the default minimum canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default minimum canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the default PNG raster scale.
	DefaultScale = 2.0

	// DefaultStyle is the default visual style.
	DefaultStyle = StyleSimple

	// DefaultView is the default visualization view.
	DefaultView = ViewFishbone
)

// Output format constants.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Visual style constants.
const (
	StyleSimple = "simple"
	StyleInk    = "ink"
)

// View constants.
const (
	// ViewFishbone is the classic fishbone drawing.
	ViewFishbone = "fishbone"

	// ViewCausetree is the Graphviz cause hierarchy.
	ViewCausetree = "causetree"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple: true,
	StyleInk:    true,
}

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewFishbone:  true,
	ViewCausetree: true,
}

// Options contains all configuration for a pipeline run. The struct
// serializes to JSON so the preview server can accept it in requests.
type Options struct {
	// Load options. Source is the path of a diagram document; Diagram
	// short-circuits loading when the caller already holds the tree.
	Source  string        `json:"source,omitempty"`
	Diagram *bone.Diagram `json:"-"`

	// Layout options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Style        string   `json:"style,omitempty"`
	View         string   `json:"view,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	Detailed     bool     `json:"detailed,omitempty"`
	EditOverlays bool     `json:"edit_overlays,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the loaded bone tree.
	Diagram *bone.Diagram

	// DiagramHash is the content hash of the diagram document.
	DiagramHash string

	// Layout contains the computed positions.
	Layout Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BoneCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: simple, ink)", style)
	}
	return nil
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return fmt.Errorf("invalid view: %q (must be one of: fishbone, causetree)", view)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults
// for the full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" && o.Diagram == nil {
		return fmt.Errorf("source or diagram is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateView(o.View); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if f == FormatDOT && o.View != ViewCausetree {
			return fmt.Errorf("dot output requires the causetree view")
		}
		if f == FormatJSON && o.View != ViewFishbone {
			return fmt.Errorf("json output requires the fishbone view")
		}
	}
	return nil
}

// IsFishbone returns true if this run draws the fishbone view.
func (o *Options) IsFishbone() bool {
	return o.View == "" || o.View == ViewFishbone
}

// IsCausetree returns true if this run draws the cause-tree view.
func (o *Options) IsCausetree() bool {
	return o.View == ViewCausetree
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		MinWidth:  o.Width,
		MinHeight: o.Height,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Style:        o.Style,
		Scale:        o.Scale,
		View:         o.View,
		Detailed:     o.Detailed,
		EditOverlays: o.EditOverlays,
	}
}
