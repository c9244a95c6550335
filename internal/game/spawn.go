package game

import (
	"fmt"
	"strings"
)

// Source is the randomness used for spawning. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// SpawnMode selects how a tile is added after a successful move.
type SpawnMode int

const (
	// SpawnRandom places a 2 or 4 on a uniformly chosen empty cell.
	SpawnRandom SpawnMode = iota
	// SpawnFixed places a tile on the first empty cell in row-major order.
	// The very first tile of a game is a 4, every later one a 2.
	SpawnFixed
	// SpawnNone adds no tile.
	SpawnNone
)

// String returns the name of the spawn mode.
func (m SpawnMode) String() string {
	switch m {
	case SpawnRandom:
		return "random"
	case SpawnFixed:
		return "fixed"
	case SpawnNone:
		return "none"
	default:
		return "unknown"
	}
}

// spawnRandom places one tile on a random empty cell.
// Returns false if the grid is full.
func spawnRandom(g *Grid, src Source, spawn4Prob float64) (Pos, int, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Pos{}, 0, false
	}

	cell := empty[src.Intn(len(empty))]

	// 90% 2, 10% 4 by default
	value := 2
	if src.Float64() < spawn4Prob {
		value = 4
	}

	g.cells[cell.Row*g.size+cell.Col] = NewTile(value)
	return cell, value, true
}

// spawnFixed places one tile on the first empty cell in row-major order.
// added is the number of tiles spawned so far in this game.
func spawnFixed(g *Grid, added int) (Pos, int, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Pos{}, 0, false
	}

	cell := empty[0]
	value := 2
	if added == 0 {
		value = 4
	}

	g.cells[cell.Row*g.size+cell.Col] = NewTile(value)
	return cell, value, true
}

// ParseSpawnMode accepts "random", "fixed" or "none".
func ParseSpawnMode(s string) (SpawnMode, error) {
	for _, m := range []SpawnMode{SpawnRandom, SpawnFixed, SpawnNone} {
		if m.String() == strings.ToLower(s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("game: unknown spawn mode %q", s)
}
