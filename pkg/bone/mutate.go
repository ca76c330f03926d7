package bone

// Level identifies the tree depth a Path addresses.
type Level int

const (
	// LevelBig addresses a big bone by BigID.
	LevelBig Level = iota + 1
	// LevelMid addresses a mid bone by BigID and MidID.
	LevelMid
	// LevelSmall addresses a small bone by BigID, MidID and SmallID.
	LevelSmall
)

// Path addresses one bone in the tree. IDs below the addressed level are
// ignored (a LevelMid path reads BigID and MidID only).
type Path struct {
	Level   Level
	BigID   int
	MidID   int
	SmallID int
}

// AddBig appends a new big bone and re-assigns alternating sides across
// all big bones.
func (d *Diagram) AddBig(label string) *BigBone {
	b := &BigBone{ID: d.NextID(), Label: label}
	d.Bones = append(d.Bones, b)
	d.realternate()
	return b
}

// AddMid appends a new mid bone under the big bone with the given ID.
// Returns nil if no such big bone exists.
func (d *Diagram) AddMid(bigID int, label string) *MidBone {
	b := d.big(bigID)
	if b == nil {
		return nil
	}
	m := &MidBone{ID: d.NextID(), Label: label}
	b.MidBones = append(b.MidBones, m)
	return m
}

// AddSmall appends a new small bone under the addressed mid bone.
// Returns nil if the parent path does not resolve.
func (d *Diagram) AddSmall(bigID, midID int, label string) *SmallBone {
	m := d.mid(bigID, midID)
	if m == nil {
		return nil
	}
	s := &SmallBone{ID: d.NextID(), Label: label}
	m.SmallBones = append(m.SmallBones, s)
	return s
}

// Delete removes the bone addressed by p, including its subtree. Deleting
// a path that does not resolve is a no-op: deletions are idempotent by
// path. Removing a big bone re-assigns alternating sides across the
// remaining big bones.
//
// Delete reports whether anything was removed, so callers know whether a
// relayout is needed.
func (d *Diagram) Delete(p Path) bool {
	switch p.Level {
	case LevelBig:
		for i, b := range d.Bones {
			if b.ID == p.BigID {
				d.Bones = append(d.Bones[:i], d.Bones[i+1:]...)
				d.realternate()
				return true
			}
		}
	case LevelMid:
		b := d.big(p.BigID)
		if b == nil {
			return false
		}
		for i, m := range b.MidBones {
			if m.ID == p.MidID {
				b.MidBones = append(b.MidBones[:i], b.MidBones[i+1:]...)
				return true
			}
		}
	case LevelSmall:
		m := d.mid(p.BigID, p.MidID)
		if m == nil {
			return false
		}
		for i, s := range m.SmallBones {
			if s.ID == p.SmallID {
				m.SmallBones = append(m.SmallBones[:i], m.SmallBones[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Relabel updates the label of the bone addressed by p. Relabeling a path
// that does not resolve is a no-op. Reports whether a label changed.
//
// Label length limits are an input-boundary concern (see
// [pkg/errors.ValidateLabel]); Relabel stores whatever it is given.
//
// [pkg/errors.ValidateLabel]: github.com/ishidiag/fishbone/pkg/errors
func (d *Diagram) Relabel(p Path, label string) bool {
	switch p.Level {
	case LevelBig:
		if b := d.big(p.BigID); b != nil {
			b.Label = label
			return true
		}
	case LevelMid:
		if m := d.mid(p.BigID, p.MidID); m != nil {
			m.Label = label
			return true
		}
	case LevelSmall:
		if s := d.small(p.BigID, p.MidID, p.SmallID); s != nil {
			s.Label = label
			return true
		}
	}
	return false
}

// realternate re-derives every big bone's side from its index parity.
// Even indexes point top, odd indexes point bottom, so neither side is
// left disproportionately empty after an insert or delete.
func (d *Diagram) realternate() {
	for i, b := range d.Bones {
		if i%2 == 0 {
			b.Side = SideTop
		} else {
			b.Side = SideBottom
		}
	}
}

func (d *Diagram) big(id int) *BigBone {
	for _, b := range d.Bones {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (d *Diagram) mid(bigID, midID int) *MidBone {
	b := d.big(bigID)
	if b == nil {
		return nil
	}
	for _, m := range b.MidBones {
		if m.ID == midID {
			return m
		}
	}
	return nil
}

func (d *Diagram) small(bigID, midID, smallID int) *SmallBone {
	m := d.mid(bigID, midID)
	if m == nil {
		return nil
	}
	for _, s := range m.SmallBones {
		if s.ID == smallID {
			return s
		}
	}
	return nil
}
