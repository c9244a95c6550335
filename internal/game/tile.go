package game

import "strconv"

// MergeFailed is returned by MergeWith when the two tiles cannot merge.
const MergeFailed = -1

// Tile is a single numbered piece on the grid.
// A nil *Tile stands for an empty cell.
type Tile struct {
	value  int
	merged bool // Set when the tile absorbed a neighbour during the current move
}

// NewTile creates an unmerged tile with the given value.
func NewTile(value int) *Tile {
	return &Tile{value: value}
}

// Value returns the tile's number.
func (t *Tile) Value() int {
	return t.value
}

// Merged reports whether the tile already merged during the current move.
func (t *Tile) Merged() bool {
	return t.merged
}

// SetMerged sets the per-move merged flag.
func (t *Tile) SetMerged(merged bool) {
	t.merged = merged
}

// CanMergeWith returns true if other is present, has the same value,
// and neither tile has merged yet this move.
func (t *Tile) CanMergeWith(other *Tile) bool {
	if t == nil || other == nil {
		return false
	}
	return t.value == other.value && !t.merged && !other.merged
}

// MergeWith absorbs other into t.
// On success t doubles, is marked merged, and the new value is returned.
// On failure MergeFailed is returned and neither tile is touched.
// The caller is responsible for removing other from the grid.
func (t *Tile) MergeWith(other *Tile) int {
	if !t.CanMergeWith(other) {
		return MergeFailed
	}
	t.value *= 2
	t.merged = true
	return t.value
}

// Equal reports whether other is a tile with the same value.
// The merged flag is not part of a tile's identity.
func (t *Tile) Equal(other any) bool {
	if t == nil {
		return false
	}
	switch o := other.(type) {
	case *Tile:
		return o != nil && o.value == t.value
	case Tile:
		return o.value == t.value
	default:
		return false
	}
}

// clone returns a detached copy of the tile, or nil for an empty cell.
func (t *Tile) clone() *Tile {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// String returns the tile's value in decimal.
func (t *Tile) String() string {
	if t == nil {
		return ""
	}
	return strconv.Itoa(t.value)
}
