package pipeline

import (
	"bytes"
	"context"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/cache"
	"github.com/ishidiag/fishbone/pkg/fishio"
)

// Load runs the load stage: it returns the diagram the options carry,
// or decodes the document at opts.Source. The second return value is
// the content hash of the diagram document, used as the layout cache
// key input.
func Load(ctx context.Context, opts Options) (*bone.Diagram, string, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", err
	}

	if opts.Diagram != nil {
		data, err := marshalDiagram(opts.Diagram)
		if err != nil {
			return nil, "", err
		}
		return opts.Diagram, cache.Hash(data), nil
	}

	d, err := fishio.Import(opts.Source)
	if err != nil {
		return nil, "", err
	}
	data, err := marshalDiagram(d)
	if err != nil {
		return nil, "", err
	}
	return d, cache.Hash(data), nil
}

// marshalDiagram renders the canonical document bytes for hashing, so
// in-memory diagrams and loaded files key identically.
func marshalDiagram(d *bone.Diagram) ([]byte, error) {
	var buf bytes.Buffer
	if err := fishio.Write(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
