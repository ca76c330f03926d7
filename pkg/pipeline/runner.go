package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/cache"
	"github.com/ishidiag/fishbone/pkg/observability"
)

// Runner encapsulates pipeline execution with caching. Both the CLI and
// the preview server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Source)
	d, hash, err := Load(ctx, opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Source, 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Diagram = d
	result.DiagramHash = hash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.BoneCount = d.BoneCount()
	observability.Pipeline().OnLoadComplete(ctx, opts.Source, d.BoneCount(), result.Stats.LoadTime, nil)

	r.Logger.Info("loaded diagram",
		"head", d.Head,
		"bones", d.BoneCount(),
		"duration", result.Stats.LoadTime)

	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, d.BoneCount())
	l, layoutHit, err := r.LayoutWithCacheInfo(ctx, d, hash, opts)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, time.Since(layoutStart), err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit
	observability.Pipeline().OnLayoutComplete(ctx, result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layout",
		"slots", len(l.Slots),
		"canvas", fmt.Sprintf("%.0fx%.0f", l.CanvasWidth, l.CanvasHeight),
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.View, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, d, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.View, opts.Formats, time.Since(renderStart), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	observability.Pipeline().OnRenderComplete(ctx, opts.View, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes a layout with caching and reports
// whether the result came from cache. diagramHash keys the cache entry;
// pass the hash Load returned.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, d *bone.Diagram, diagramHash string, opts Options) (Layout, bool, error) {
	opts.SetLayoutDefaults()
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(diagramHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Fall through and recompute on deserialization failure.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l := ComputeLayout(d, opts)

	if data, err := MarshalLayout(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, d *bone.Diagram, diagramHash string, opts Options) (Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, d, diagramHash, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and reports
// whether every requested format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l Layout, d *bone.Diagram, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered, err := RenderFromLayout(l, d, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l Layout, d *bone.Diagram, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, d, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
