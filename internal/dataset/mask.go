package dataset

import (
	"slices"
	"sort"
)

type maskKind int

const (
	noMask maskKind = iota
	singleMask
	setMask
)

// mask restricts which exercises the read accessors expose. The zero value
// is NoMask.
type mask struct {
	kind  maskKind
	name  string
	names map[string]struct{}
}

func single(name string) mask {
	return mask{kind: singleMask, name: name}
}

func set(names []string) mask {
	if len(names) == 0 {
		return mask{}
	}
	m := mask{kind: setMask, names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		m.names[n] = struct{}{}
	}
	return m
}

func (m mask) allows(exercise string) bool {
	switch m.kind {
	case singleMask:
		return exercise == m.name
	case setMask:
		_, ok := m.names[exercise]
		return ok
	default:
		return true
	}
}

// without removes names from the mask. A single-name mask is treated as a
// one-element set, and a set that ends up empty becomes NoMask.
func (m mask) without(names ...string) mask {
	switch m.kind {
	case singleMask:
		if slices.Contains(names, m.name) {
			return mask{}
		}
		return m
	case setMask:
		remaining := make([]string, 0, len(m.names))
		for n := range m.names {
			if !slices.Contains(names, n) {
				remaining = append(remaining, n)
			}
		}
		return set(remaining)
	default:
		return m
	}
}

// list returns the masked names in sorted order, nil for NoMask
func (m mask) list() []string {
	switch m.kind {
	case singleMask:
		return []string{m.name}
	case setMask:
		out := make([]string, 0, len(m.names))
		for n := range m.names {
			out = append(out, n)
		}
		sort.Strings(out)
		return out
	default:
		return nil
	}
}

// MaskForExercise restricts the visible exercises to name. A name that is
// not in the dataset matches nothing.
func (d *Dataset) MaskForExercise(name string) {
	d.mask = single(name)
	d.logger.Debug("Mask set", "mask", d.mask.list())
}

// MaskForExercises restricts the visible exercises to names. Calling it with
// no names clears the mask.
func (d *Dataset) MaskForExercises(names ...string) {
	d.mask = set(names)
	d.logger.Debug("Mask set", "mask", d.mask.list())
}

// Unmask clears the mask
func (d *Dataset) Unmask() {
	d.mask = mask{}
}

// UnmaskExercise clears a single-name mask equal to name, or removes name
// from a set mask. Anything else is left alone.
func (d *Dataset) UnmaskExercise(name string) {
	d.mask = d.mask.without(name)
}

// UnmaskExercises removes names from the mask
func (d *Dataset) UnmaskExercises(names ...string) {
	d.mask = d.mask.without(names...)
}

// Mask returns the masked exercise names, sorted, or nil when unmasked
func (d *Dataset) Mask() []string {
	return d.mask.list()
}
