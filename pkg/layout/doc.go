// Package layout computes the full geometry of a fishbone diagram.
//
// # Overview
//
// The engine is a pure function from a [bone.Diagram] to a [Layout]: one
// deterministic forward pass, no internal state, no incremental updates.
// Every mutation of the tree is followed by a complete rebuild; with tree
// sizes in the tens of nodes this is cheaper than maintaining a diffing
// layer and keeps the engine trivially testable.
//
// The computation runs in three stages:
//
//  1. Sizing: label boxes, small-bone group heights, mid-bone spans along
//     the 45° diagonal, and each big bone's diagonal length
//     ([Diagonal], [MidSpan], [SmallGroupHeight]).
//  2. Extents: each big bone's maximum horizontal envelope toward the tail
//     ([LeftExtent]) and the slot width reserved for it ([SlotWidth]).
//  3. Placement: big bones are paired into top/bottom groups, groups are
//     spaced from the head toward the tail, and the single head-side
//     anchor is solved as a max-reduction over every group's cumulative
//     demand, so even the tail-most group clears the tail boundary
//     ([Build]).
//
// # Coordinates
//
// Horizontal coordinates are absolute canvas X values: the tail ornament
// sits at the left edge and the spine grows rightward toward the head.
// Vertical coordinates are spine-relative (the spine is y=0, top-side
// content is negative) until [Layout.ShiftY] maps them onto the canvas.
// [Layout.ShiftX] is a safety net and is zero whenever the extent
// envelope is honest.
//
// # Renderer contract
//
// Build does not pre-flatten every line and box. It returns global
// placement (slots, spine, shifts, ornament scale) and the renderer calls
// the exported sizing helpers again during its draw pass to recover exact
// per-element coordinates. The helpers are total functions over any
// well-formed tree, so the two passes cannot disagree.
package layout
