// Package registry implements the append-only, multi-group registration
// table that collects tests and benchmarks declared across source files.
//
// A Table is written only during program initialization and read only once
// the runner starts; the two phases never overlap, so no locking is done.
package registry

import "strings"

// DefaultGroup names the unnamed group. It is always reported first and its
// name is never printed.
const DefaultGroup = "_"

// initialCapacity is the starting size of both the group array and each
// group's unit storage. Both grow by doubling.
const initialCapacity = 8

// Group is a named, ordered bucket of registered records.
type Group[T any] struct {
	Name  string
	units []T
}

// Units returns the group's records in registration order.
func (g *Group[T]) Units() []T {
	return g.units
}

// Len returns the number of records in the group.
func (g *Group[T]) Len() int {
	return len(g.units)
}

// IsDefault reports whether g is the unnamed group.
func (g *Group[T]) IsDefault() bool {
	return g.Name == DefaultGroup
}

func (g *Group[T]) add(rec T) int {
	if len(g.units) == cap(g.units) {
		g.units = grow(g.units)
	}
	g.units = append(g.units, rec)
	return len(g.units) - 1
}

// Table stores records of type T keyed by group name, preserving first-seen
// group order and registration order inside each group.
type Table[T any] struct {
	groups []Group[T]
	sealed bool
}

// Handle locates a stored record. It stays valid when backing storage is
// reallocated, which a raw pointer would not.
type Handle[T any] struct {
	table *Table[T]
	group int
	index int
}

// Ptr returns the address of the stored record in the current backing array.
// Callers must not retain it across further Add calls.
func (h Handle[T]) Ptr() *T {
	return &h.table.groups[h.group].units[h.index]
}

// Group returns the name of the group the record was stored in.
func (h Handle[T]) Group() string {
	return h.table.groups[h.group].Name
}

// Add copies rec into the named group, creating the group on first use, and
// returns a handle to the stored copy.
func (t *Table[T]) Add(group string, rec T) Handle[T] {
	if t.sealed {
		panic("registry: Add called after the table was sealed")
	}
	gi := t.find(group)
	if gi < 0 {
		if t.groups == nil {
			t.groups = make([]Group[T], 0, initialCapacity)
		} else if len(t.groups) == cap(t.groups) {
			t.groups = grow(t.groups)
		}
		t.groups = append(t.groups, Group[T]{
			Name:  group,
			units: make([]T, 0, initialCapacity),
		})
		gi = len(t.groups) - 1
	}
	idx := t.groups[gi].add(rec)
	return Handle[T]{table: t, group: gi, index: idx}
}

// find is a linear scan; tables hold tens of groups at most.
func (t *Table[T]) find(name string) int {
	for i := range t.groups {
		if t.groups[i].Name == name {
			return i
		}
	}
	return -1
}

// Groups returns the groups in report order: the unnamed group first, then
// named groups in the order their names were first registered.
func (t *Table[T]) Groups() []*Group[T] {
	out := make([]*Group[T], 0, len(t.groups))
	if i := t.find(DefaultGroup); i >= 0 {
		out = append(out, &t.groups[i])
	}
	for i := range t.groups {
		if t.groups[i].Name != DefaultGroup {
			out = append(out, &t.groups[i])
		}
	}
	return out
}

// Len returns the number of records across all groups.
func (t *Table[T]) Len() int {
	n := 0
	for i := range t.groups {
		n += len(t.groups[i].units)
	}
	return n
}

// Seal ends the registration phase. Further Add calls panic.
func (t *Table[T]) Seal() {
	t.sealed = true
}

// Sealed reports whether the table has entered its read-only phase.
func (t *Table[T]) Sealed() bool {
	return t.sealed
}

// Free releases every group's storage, then the group array. It is a no-op on
// a table that never had records added.
func (t *Table[T]) Free() {
	if t.groups == nil {
		return
	}
	for i := range t.groups {
		t.groups[i].units = nil
	}
	t.groups = nil
}

// SplitName splits a declared name of the form "group/name" into its group
// and unit name. Names without a slash belong to DefaultGroup.
func SplitName(full string) (group, name string) {
	group, name, ok := strings.Cut(full, "/")
	if !ok || group == "" {
		return DefaultGroup, strings.TrimPrefix(full, "/")
	}
	return group, name
}

func grow[E any](s []E) []E {
	next := make([]E, len(s), 2*cap(s))
	copy(next, s)
	return next
}
