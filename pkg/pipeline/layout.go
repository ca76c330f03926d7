package pipeline

import (
	"encoding/json"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/layout"
)

// Layout is the pipeline's layout type, the fishbone layout computed by
// [layout.Build].
type Layout = layout.Layout

// ComputeLayout runs the layout stage.
func ComputeLayout(d *bone.Diagram, opts Options) Layout {
	opts.SetLayoutDefaults()
	return layout.Build(d, layout.WithMinSize(opts.Width, opts.Height))
}

// MarshalLayout serializes a layout for caching.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes a cached layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	err := json.Unmarshal(data, &l)
	return l, err
}
