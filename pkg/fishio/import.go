package fishio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ishidiag/fishbone/pkg/bone"
)

// Read decodes a JSON diagram from r into a bone tree.
//
// Identifiers are assigned from a fresh monotonic sequence and spine
// sides are re-derived by index parity; neither is read from the input.
// Read returns an error only for malformed JSON. It does not close r.
func Read(r io.Reader) (*bone.Diagram, error) {
	var data document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := bone.New(data.Head)
	for _, bb := range data.BigBones {
		big := d.AddBig(bb.Label)
		for _, mb := range bb.MidBones {
			mid := d.AddMid(big.ID, mb.Label)
			for _, sb := range mb.SmallBones {
				d.AddSmall(big.ID, mid.ID, sb.Label)
			}
		}
	}
	return d, nil
}

// Import reads a JSON file at path and returns the decoded diagram.
//
// Import opens the file, decodes it using [Read], and closes the file.
// Errors wrap the underlying cause with the file path for context.
func Import(path string) (*bone.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
