package game

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, values [][]int) *Grid {
	t.Helper()
	g, err := NewGridFromValues(values)
	if err != nil {
		t.Fatalf("NewGridFromValues: %v", err)
	}
	return g
}

func valuesOf(tiles []*Tile) []int {
	out := make([]int, len(tiles))
	for i, tile := range tiles {
		if tile != nil {
			out[i] = tile.Value()
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGridSize(t *testing.T) {
	g := NewGrid(DefaultRules().Size)
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
}

func TestGridDefaultEmpty(t *testing.T) {
	g := NewGrid(4)
	for row := range g.Size() {
		for col := range g.Size() {
			tile, err := g.Tile(row, col)
			if err != nil {
				t.Fatalf("Tile(%d,%d): %v", row, col, err)
			}
			if tile != nil {
				t.Errorf("Tile(%d,%d) = %v, want empty", row, col, tile)
			}
		}
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d, want 0", g.Count())
	}
}

func TestGridSetTileAt(t *testing.T) {
	g := NewGrid(4)
	if err := g.SetTileAt(2, NewTile(4)); err != nil {
		t.Fatalf("SetTileAt: %v", err)
	}

	tile, err := g.TileAt(2)
	if err != nil {
		t.Fatalf("TileAt: %v", err)
	}
	if !tile.Equal(NewTile(4)) {
		t.Errorf("TileAt(2) = %v, want 4", tile)
	}

	// Index 2 is row 0, column 2 in row-major order.
	same, _ := g.Tile(0, 2)
	if same != tile {
		t.Error("Tile(0,2) and TileAt(2) should be the same cell")
	}
}

func TestGridSetTileRoundTrip(t *testing.T) {
	g := NewGrid(4)
	for row := range 4 {
		for col := range 4 {
			tile := NewTile(2 << (row + col))
			if err := g.SetTile(row, col, tile); err != nil {
				t.Fatalf("SetTile(%d,%d): %v", row, col, err)
			}
			got, err := g.Tile(row, col)
			if err != nil {
				t.Fatalf("Tile(%d,%d): %v", row, col, err)
			}
			if got != tile {
				t.Errorf("Tile(%d,%d) = %v, want %v", row, col, got, tile)
			}
		}
	}
}

func TestGridSetTileNilClears(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {0, 0}})
	if err := g.SetTile(0, 0, nil); err != nil {
		t.Fatalf("SetTile: %v", err)
	}
	if tile, _ := g.Tile(0, 0); tile != nil {
		t.Errorf("Tile(0,0) = %v, want empty", tile)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(4)

	checks := []struct {
		name string
		err  error
	}{
		{"Tile row -1", func() error { _, err := g.Tile(-1, 0); return err }()},
		{"Tile col 4", func() error { _, err := g.Tile(0, 4); return err }()},
		{"TileAt 16", func() error { _, err := g.TileAt(16); return err }()},
		{"TileAt -1", func() error { _, err := g.TileAt(-1); return err }()},
		{"SetTile 4,4", g.SetTile(4, 4, NewTile(2))},
		{"SetTileAt 16", g.SetTileAt(16, NewTile(2))},
		{"Row 4", func() error { _, err := g.Row(4); return err }()},
		{"Col -1", func() error { _, err := g.Col(-1); return err }()},
	}

	for _, c := range checks {
		if !errors.Is(c.err, ErrOutOfBounds) {
			t.Errorf("%s: err = %v, want ErrOutOfBounds", c.name, c.err)
		}
	}
}

func TestGridFromTiles(t *testing.T) {
	tiles := make([][]*Tile, 4)
	values := make([][]int, 4)
	for i := range 4 {
		tiles[i] = make([]*Tile, 4)
		values[i] = make([]int, 4)
		for j := range 4 {
			v := 2 << (i * j % 8)
			tiles[i][j] = NewTile(v)
			values[i][j] = v
		}
	}

	g, err := NewGridFromTiles(tiles)
	if err != nil {
		t.Fatalf("NewGridFromTiles: %v", err)
	}

	for i := range g.Size() {
		row, err := g.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		if !equalInts(valuesOf(row), values[i]) {
			t.Errorf("Row(%d) = %v, want %v", i, valuesOf(row), values[i])
		}
	}

	// Seed tiles are copied, not shared.
	tiles[0][0].SetMerged(true)
	if tile, _ := g.Tile(0, 0); tile.Merged() {
		t.Error("grid should not alias the seed tiles")
	}
}

func TestGridFromTilesInvalid(t *testing.T) {
	tests := []struct {
		name  string
		tiles [][]*Tile
	}{
		{name: "empty", tiles: nil},
		{name: "not square", tiles: [][]*Tile{{nil, nil}, {nil}}},
		{name: "not power of two", tiles: [][]*Tile{{NewTile(3), nil}, {nil, nil}}},
		{name: "value one", tiles: [][]*Tile{{NewTile(1), nil}, {nil, nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGridFromTiles(tt.tiles); !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("err = %v, want ErrInvalidGrid", err)
			}
		})
	}
}

func TestGridGetCol(t *testing.T) {
	g := NewGrid(4)
	values := make([]int, 4)
	for j := range 4 {
		v := 2 << j
		if err := g.SetTileAt(4*j, NewTile(v)); err != nil {
			t.Fatalf("SetTileAt: %v", err)
		}
		values[j] = v
	}

	col, err := g.Col(0)
	if err != nil {
		t.Fatalf("Col: %v", err)
	}
	if !equalInts(valuesOf(col), values) {
		t.Errorf("Col(0) = %v, want %v", valuesOf(col), values)
	}
}

func TestGridGetRow(t *testing.T) {
	g := NewGrid(4)
	values := make([]int, 4)
	for j := range 4 {
		v := 2 << j
		if err := g.SetTileAt(j, NewTile(v)); err != nil {
			t.Fatalf("SetTileAt: %v", err)
		}
		values[j] = v
	}

	row, err := g.Row(0)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	if !equalInts(valuesOf(row), values) {
		t.Errorf("Row(0) = %v, want %v", valuesOf(row), values)
	}
}

func TestGridRowIsSnapshot(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 4}, {8, 16}})
	row, _ := g.Row(0)
	col, _ := g.Col(1)

	if err := g.SetTile(0, 0, nil); err != nil {
		t.Fatalf("SetTile: %v", err)
	}
	if row[0] == nil || row[0].Value() != 2 {
		t.Errorf("snapshot changed after grid mutation: %v", valuesOf(row))
	}

	// Writing through the snapshot must not reach the grid.
	row[1].SetMerged(true)
	col[1].SetMerged(true)
	for _, pos := range []Pos{{0, 1}, {1, 1}} {
		if tile, _ := g.Tile(pos.Row, pos.Col); tile.Merged() {
			t.Errorf("Tile(%d,%d) picked up a flag set on a snapshot", pos.Row, pos.Col)
		}
	}
}

func TestGridRowSurvivesMerge(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 1024, 1024},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	row, _ := g.Row(0)
	col, _ := g.Col(3)

	Slide(g, DirRight)

	if got, want := valuesOf(row), []int{0, 0, 1024, 1024}; !equalInts(got, want) {
		t.Errorf("row snapshot after merge = %v, want %v", got, want)
	}
	if got, want := valuesOf(col), []int{1024, 0, 0, 0}; !equalInts(got, want) {
		t.Errorf("column snapshot after merge = %v, want %v", got, want)
	}
	if row[3].Merged() {
		t.Error("row snapshot should not see the merged flag")
	}
}

func TestGridSetTileRejectsInvalidValues(t *testing.T) {
	g := NewGrid(4)

	for _, v := range []int{0, 1, 3, 6, -2} {
		if err := g.SetTile(0, 0, NewTile(v)); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("SetTile(NewTile(%d)) err = %v, want ErrInvalidGrid", v, err)
		}
		if err := g.SetTileAt(5, NewTile(v)); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("SetTileAt(NewTile(%d)) err = %v, want ErrInvalidGrid", v, err)
		}
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d after rejected writes, want 0", g.Count())
	}

	// Out of bounds wins over a bad value.
	if err := g.SetTile(4, 0, NewTile(3)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetTile(4,0) err = %v, want ErrOutOfBounds", err)
	}
}

func TestGridClearMerged(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 8, 16},
		{4, 8, 16, 32},
		{8, 16, 32, 64},
		{16, 32, 64, 128},
	})

	tile, _ := g.Tile(2, 2)
	tile.SetMerged(true)
	if !tile.Merged() {
		t.Fatal("tile should be merged before clearing")
	}

	g.ClearMerged()
	g.ClearMerged() // idempotent

	for i := range g.Size() {
		row, _ := g.Row(i)
		for _, tile := range row {
			if tile.Merged() {
				t.Errorf("row %d still has merged tile %v", i, tile)
			}
		}
	}
}

func TestGridClearMergedEmpty(t *testing.T) {
	g := NewGrid(4)
	g.ClearMerged()
	if g.Count() != 0 {
		t.Errorf("Count() = %d, want 0", g.Count())
	}
}

func TestGridClearMergedAllMerged(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 2},
		{4, 2, 4},
		{2, 4, 2},
	})
	for i := range g.Size() * g.Size() {
		tile, _ := g.TileAt(i)
		tile.SetMerged(true)
	}

	g.ClearMerged()

	for i := range g.Size() * g.Size() {
		if tile, _ := g.TileAt(i); tile.Merged() {
			t.Errorf("TileAt(%d) still merged", i)
		}
	}
}

func TestGridEmptyCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Pos{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %v, want (0,1)", cells[0])
	}
	if g.IsFull() {
		t.Error("IsFull() = true for a grid with gaps")
	}
}

func TestGridHasAdjacentEqual(t *testing.T) {
	tests := []struct {
		name   string
		values [][]int
		want   bool
	}{
		{
			name:   "checkerboard",
			values: [][]int{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
			want:   false,
		},
		{
			name:   "horizontal pair",
			values: [][]int{{2, 2, 8, 16}, {32, 64, 128, 256}, {512, 1024, 2048, 4096}, {8192, 16384, 32768, 65536}},
			want:   true,
		},
		{
			name:   "vertical pair in last column",
			values: [][]int{{2, 4, 8, 16}, {32, 64, 128, 16}, {512, 1024, 2048, 4096}, {8192, 16384, 32768, 65536}},
			want:   true,
		},
		{
			name:   "empty cells are not neighbours",
			values: [][]int{{0, 0}, {0, 0}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.values)
			if got := g.HasAdjacentEqual(); got != tt.want {
				t.Errorf("HasAdjacentEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridMaxValue(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := g.MaxValue(); got != 2048 {
		t.Errorf("MaxValue() = %d, want 2048", got)
	}
}

func TestGridClone(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {0, 4}})
	c := g.Clone()

	if err := c.SetTile(0, 1, NewTile(8)); err != nil {
		t.Fatalf("SetTile: %v", err)
	}
	if tile, _ := g.Tile(0, 1); tile != nil {
		t.Error("clone should not share cells with the original")
	}
}
