package game

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a row, column or index lies outside the grid.
	ErrOutOfBounds = errors.New("game: position out of bounds")

	// ErrInvalidGrid is returned when seed tiles do not form a valid square grid.
	ErrInvalidGrid = errors.New("game: invalid grid")
)

// Pos is a cell coordinate on the grid.
type Pos struct {
	Row int
	Col int
}

// Grid is a fixed-size square board of optional tiles stored in row-major order.
type Grid struct {
	size  int
	cells []*Tile
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]*Tile, size*size),
	}
}

// NewGridFromTiles seeds a grid from a square 2-D slice of tiles.
// Nil entries are empty cells. Tiles are copied, so later changes to
// the input do not reach the grid.
func NewGridFromTiles(tiles [][]*Tile) (*Grid, error) {
	size := len(tiles)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}

	g := NewGrid(size)
	for row, line := range tiles {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, row, len(line), size)
		}
		for col, t := range line {
			if err := checkTile(t); err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, row, col)
			}
			g.cells[row*size+col] = t.clone()
		}
	}
	return g, nil
}

// NewGridFromValues seeds a grid from tile values, where 0 is an empty cell.
func NewGridFromValues(values [][]int) (*Grid, error) {
	tiles := make([][]*Tile, len(values))
	for row, line := range values {
		tiles[row] = make([]*Tile, len(line))
		for col, v := range line {
			if v != 0 {
				tiles[row][col] = NewTile(v)
			}
		}
	}
	return NewGridFromTiles(tiles)
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.size, g.size)
	}
	return row*g.size + col, nil
}

func (g *Grid) checkIndex(i int) error {
	if i < 0 || i >= len(g.cells) {
		return fmt.Errorf("%w: index %d on %dx%d grid", ErrOutOfBounds, i, g.size, g.size)
	}
	return nil
}

// Tile returns the tile at (row, col), or nil if the cell is empty.
func (g *Grid) Tile(row, col int) (*Tile, error) {
	i, err := g.index(row, col)
	if err != nil {
		return nil, err
	}
	return g.cells[i], nil
}

// TileAt returns the tile at the row-major linear index.
func (g *Grid) TileAt(i int) (*Tile, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	return g.cells[i], nil
}

// SetTile places t at (row, col). A nil tile clears the cell.
// Tiles whose value is not a power of two are rejected with ErrInvalidGrid.
func (g *Grid) SetTile(row, col int, t *Tile) error {
	i, err := g.index(row, col)
	if err != nil {
		return err
	}
	if err := checkTile(t); err != nil {
		return fmt.Errorf("%w at (%d,%d)", err, row, col)
	}
	g.cells[i] = t
	return nil
}

// SetTileAt places t at the row-major linear index.
func (g *Grid) SetTileAt(i int, t *Tile) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	if err := checkTile(t); err != nil {
		return fmt.Errorf("%w at index %d", err, i)
	}
	g.cells[i] = t
	return nil
}

func checkTile(t *Tile) error {
	if t != nil && !isPowerOfTwo(t.value) {
		return fmt.Errorf("%w: tile %d is not a power of two", ErrInvalidGrid, t.value)
	}
	return nil
}

// Row returns a snapshot of row i, left to right.
// The tiles are copies; later moves do not change them.
func (g *Grid) Row(i int) ([]*Tile, error) {
	if i < 0 || i >= g.size {
		return nil, fmt.Errorf("%w: row %d on %dx%d grid", ErrOutOfBounds, i, g.size, g.size)
	}
	row := make([]*Tile, g.size)
	for j := range g.size {
		row[j] = g.cells[i*g.size+j].clone()
	}
	return row, nil
}

// Col returns a snapshot of column j, top to bottom, with copied tiles.
func (g *Grid) Col(j int) ([]*Tile, error) {
	if j < 0 || j >= g.size {
		return nil, fmt.Errorf("%w: column %d on %dx%d grid", ErrOutOfBounds, j, g.size, g.size)
	}
	col := make([]*Tile, g.size)
	for i := range g.size {
		col[i] = g.cells[i*g.size+j].clone()
	}
	return col, nil
}

// ClearMerged resets the merged flag on every tile.
func (g *Grid) ClearMerged() {
	for _, t := range g.cells {
		if t != nil {
			t.merged = false
		}
	}
}

// EmptyCells returns the empty cells in row-major order.
func (g *Grid) EmptyCells() []Pos {
	var cells []Pos
	for i, t := range g.cells {
		if t == nil {
			cells = append(cells, Pos{Row: i / g.size, Col: i % g.size})
		}
	}
	return cells
}

// IsFull returns true if no cell is empty.
func (g *Grid) IsFull() bool {
	for _, t := range g.cells {
		if t == nil {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, t := range g.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// MaxValue returns the largest tile value on the grid, or 0 if it is empty.
func (g *Grid) MaxValue() int {
	maxVal := 0
	for _, t := range g.cells {
		if t != nil && t.value > maxVal {
			maxVal = t.value
		}
	}
	return maxVal
}

// HasAdjacentEqual returns true if any two orthogonal neighbours share a value.
// Checking the right and lower neighbour of every cell covers all four directions.
func (g *Grid) HasAdjacentEqual() bool {
	for row := range g.size {
		for col := range g.size {
			t := g.cells[row*g.size+col]
			if t == nil {
				continue
			}
			if col < g.size-1 {
				if right := g.cells[row*g.size+col+1]; right != nil && right.value == t.value {
					return true
				}
			}
			if row < g.size-1 {
				if below := g.cells[(row+1)*g.size+col]; below != nil && below.value == t.value {
					return true
				}
			}
		}
	}
	return false
}

// Values returns the tile values row by row, with 0 for empty cells.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.size)
	for row := range g.size {
		values[row] = make([]int, g.size)
		for col := range g.size {
			if t := g.cells[row*g.size+col]; t != nil {
				values[row][col] = t.value
			}
		}
	}
	return values
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.size)
	for i, t := range g.cells {
		c.cells[i] = t.clone()
	}
	return c
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
