// Package bone defines the fishbone (Ishikawa) cause tree and its mutation
// operations.
//
// # Overview
//
// A diagram is a head statement plus an ordered list of big bones. Each big
// bone carries mid bones, each mid bone carries small bones. The tree depth
// is fixed at three levels; no level may be skipped.
//
// The tree is the single source of truth for diagram content. The layout
// engine ([pkg/layout]) receives a read-only view and never mutates it;
// every mutation here is followed by a full relayout on the caller's side.
//
// # Identifiers and sides
//
// Bone IDs come from a monotonically increasing sequence owned by the
// Diagram. IDs are unique across the whole tree, never reused, and reset
// only when a new Diagram is constructed.
//
// A big bone's Side (top or bottom of the spine) is derived from its index
// parity and re-assigned after every insertion or deletion at the big-bone
// level. It is never set directly.
//
// [pkg/layout]: github.com/ishidiag/fishbone/pkg/layout
package bone

// Side is the side of the spine a big bone points away from.
type Side int

const (
	// SideTop draws the bone's diagonal above the spine.
	SideTop Side = iota
	// SideBottom draws the bone's diagonal below the spine.
	SideBottom
)

// String returns "top" or "bottom".
func (s Side) String() string {
	if s == SideBottom {
		return "bottom"
	}
	return "top"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// SmallBone is a leaf-level cause.
type SmallBone struct {
	ID    int
	Label string
}

// MidBone is a sub-cause under a big bone. Small bones are ordered; the
// order determines their vertical stacking in the rendered diagram. There
// is no upper bound on the small bone count.
type MidBone struct {
	ID         int
	Label      string
	SmallBones []*SmallBone
}

// BigBone is a top-level causal category, drawn as a 45° diagonal off the
// spine. Mid bones are ordered; the earliest sits closest to the spine.
type BigBone struct {
	ID       int
	Label    string
	Side     Side
	MidBones []*MidBone
}

// Diagram is a whole fishbone tree: the head statement plus all big bones
// in creation order.
type Diagram struct {
	Head  string
	Bones []*BigBone

	nextID int
}

// New creates an empty diagram with the given head statement.
// The ID sequence starts fresh at 1.
func New(head string) *Diagram {
	return &Diagram{Head: head, nextID: 1}
}

// NextID returns the next identifier from the diagram's sequence and
// advances it. IDs are never reused within a diagram's lifetime.
func (d *Diagram) NextID() int {
	id := d.nextID
	d.nextID++
	return id
}

// MidCount returns the total number of mid bones across all big bones.
// The head/tail ornament scale grows with this count.
func (d *Diagram) MidCount() int {
	n := 0
	for _, b := range d.Bones {
		n += len(b.MidBones)
	}
	return n
}

// BoneCount returns the total number of bones at all three levels.
func (d *Diagram) BoneCount() int {
	n := len(d.Bones)
	for _, b := range d.Bones {
		n += len(b.MidBones)
		for _, m := range b.MidBones {
			n += len(m.SmallBones)
		}
	}
	return n
}
