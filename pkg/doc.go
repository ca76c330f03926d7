// Package pkg provides the core libraries for fishbone diagram layout.
//
// # Overview
//
// Fishbone turns a cause-and-effect tree into an Ishikawa diagram: a
// horizontal spine ending in a fish head, with causal categories branching
// off as 45° diagonals. The pkg directory is organized into:
//
//  1. [bone] - The diagram tree (head, big, mid and small bones) and its
//     mutation operations.
//  2. [layout] - Deterministic geometry: extents, spine placement, canvas
//     sizing.
//  3. [render] - Visualization sinks (fishbone SVG/PNG/PDF/JSON and a
//     Graphviz cause tree) plus visual styles.
//  4. [pipeline] - Orchestration (load → layout → render) with per-stage
//     caching, used by the CLI and the preview server.
//  5. Infrastructure: [cache], [store], [session], [config], [errors],
//     [fishio].
//
// # Quick Start
//
// Build a diagram and render it to SVG:
//
//	import (
//	    "github.com/ishidiag/fishbone/pkg/bone"
//	    "github.com/ishidiag/fishbone/pkg/layout"
//	    "github.com/ishidiag/fishbone/pkg/render/fish/sink"
//	)
//
//	d := bone.New("high error rate")
//	big := d.AddBig("deploys")
//	mid := d.AddMid(big.ID, "rollout speed")
//	d.AddSmall(big.ID, mid.ID, "no canary")
//
//	l := layout.Build(d, layout.WithMinSize(800, 600))
//	svg := sink.RenderSVG(l, d)
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "causes.json",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// [bone]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/bone
// [layout]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/layout
// [render]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/cache
// [store]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/store
// [session]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/session
// [config]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/config
// [errors]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/errors
// [fishio]: https://pkg.go.dev/github.com/ishidiag/fishbone/pkg/fishio
package pkg
