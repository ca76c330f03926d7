package fishio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ishidiag/fishbone/pkg/bone"
)

type document struct {
	Head     string    `json:"head"`
	BigBones []bigBone `json:"bigBones,omitempty"`
}

type bigBone struct {
	Label    string    `json:"label"`
	MidBones []midBone `json:"midBones,omitempty"`
}

type midBone struct {
	Label      string      `json:"label"`
	SmallBones []smallBone `json:"smallBones,omitempty"`
}

type smallBone struct {
	Label string `json:"label"`
}

func toDocument(d *bone.Diagram) document {
	out := document{Head: d.Head}
	for _, b := range d.Bones {
		bb := bigBone{Label: b.Label}
		for _, m := range b.MidBones {
			mb := midBone{Label: m.Label}
			for _, s := range m.SmallBones {
				mb.SmallBones = append(mb.SmallBones, smallBone{Label: s.Label})
			}
			bb.MidBones = append(bb.MidBones, mb)
		}
		out.BigBones = append(out.BigBones, bb)
	}
	return out
}

// Write encodes a diagram as indented JSON and writes it to w.
// The output can be re-imported with [Read] for round-trip editing.
func Write(d *bone.Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a diagram to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(d *bone.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}
