package game

// MoveResult describes what a single slide did to the grid.
type MoveResult struct {
	Moved     bool // At least one cell changed value or position
	Gained    int  // Sum of the values produced by merges
	Merges    int  // Number of merges performed
	MaxMerged int  // Largest value produced by a merge, 0 if none
}

// Slide moves every tile of g in direction dir, merging equal neighbours.
// Each row (left/right) or column (up/down) is handled independently:
// the line is read in the direction of travel, compacted, merged from the
// destination end, compacted again and padded back to full length.
// The grid is updated in place. Merged flags are left set; the caller
// clears them once the move is complete.
func Slide(g *Grid, dir Direction) MoveResult {
	before := g.Values()
	var res MoveResult

	for i := range g.size {
		line := g.line(i, dir)
		merged, gained, merges, maxMerged := slideLine(line)
		res.Gained += gained
		res.Merges += merges
		if maxMerged > res.MaxMerged {
			res.MaxMerged = maxMerged
		}
		g.setLine(i, dir, merged)
	}

	res.Moved = !sameValues(before, g.Values())
	return res
}

// slideLine compacts and merges a line whose first element is the destination end.
// It returns a new line of the same length.
func slideLine(line []*Tile) (result []*Tile, gained, merges, maxMerged int) {
	tiles := compact(line)

	for i := 0; i < len(tiles)-1; i++ {
		v := tiles[i].MergeWith(tiles[i+1])
		if v == MergeFailed {
			continue
		}
		gained += v
		merges++
		if v > maxMerged {
			maxMerged = v
		}
		// The absorbed tile leaves the line; the merged one stays put
		// and cannot take part in another merge this move.
		tiles[i+1] = nil
		i++
	}

	tiles = compact(tiles)
	result = make([]*Tile, len(line))
	copy(result, tiles)
	return result, gained, merges, maxMerged
}

// compact drops empty cells while keeping tile order.
func compact(line []*Tile) []*Tile {
	out := make([]*Tile, 0, len(line))
	for _, t := range line {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// line reads line i ordered so that index 0 is the end tiles travel towards.
func (g *Grid) line(i int, dir Direction) []*Tile {
	out := make([]*Tile, g.size)
	for k := range g.size {
		out[k] = g.cells[g.lineCell(i, k, dir)]
	}
	return out
}

// setLine writes a line produced by line/slideLine back in grid orientation.
func (g *Grid) setLine(i int, dir Direction, tiles []*Tile) {
	for k, t := range tiles {
		g.cells[g.lineCell(i, k, dir)] = t
	}
}

// lineCell maps the k-th element of line i in travel order to a cell index.
func (g *Grid) lineCell(i, k int, dir Direction) int {
	if dir.towardsEnd() {
		k = g.size - 1 - k
	}
	if dir.vertical() {
		return k*g.size + i
	}
	return i*g.size + k
}

func sameValues(a, b [][]int) bool {
	for row := range a {
		for col := range a[row] {
			if a[row][col] != b[row][col] {
				return false
			}
		}
	}
	return true
}
