package game

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	State        State   `yaml:"state"`
	Score        int     `yaml:"score"`
	HighestScore int     `yaml:"highest_score"`
	MaxTile      int     `yaml:"max_tile"` // Highest tile on board
	Moves        int     `yaml:"moves"`
	TilesAdded   int     `yaml:"tiles_added"`
	Target       int     `yaml:"target"`
	Board        [][]int `yaml:"board"`
}

// Snapshot returns a copy of the current game state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:        c.state,
		Score:        c.score,
		HighestScore: c.highestScore,
		MaxTile:      c.grid.MaxValue(),
		Moves:        c.moves,
		TilesAdded:   c.tilesAdded,
		Target:       c.rules.WinTarget,
		Board:        c.grid.Values(),
	}
}
