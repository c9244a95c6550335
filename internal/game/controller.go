// Package game implements the rules of the 2048 sliding-tile puzzle:
// tiles, the grid, the movement engine and the game state machine.
// It performs no I/O of its own; randomness and logging are injected.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Rules are the fixed parameters of a game.
type Rules struct {
	Size       int     // Side length of the grid
	WinTarget  int     // Tile value that wins the game
	Spawn4Prob float64 // Probability of spawning a 4 instead of a 2
}

// DefaultRules returns classic 4x4 rules with a 2048 target.
func DefaultRules() Rules {
	return Rules{
		Size:       4,
		WinTarget:  2048,
		Spawn4Prob: 0.10,
	}
}

// Controller runs a single game. It is not safe for concurrent use;
// callers serialize access per instance.
type Controller struct {
	rules  Rules
	src    Source
	logger *log.Logger

	grid         *Grid
	state        State
	score        int
	highestScore int
	tilesAdded   int
	moves        int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSource sets the randomness used for spawning.
func WithSource(src Source) Option {
	return func(c *Controller) {
		c.src = src
	}
}

// WithSeed seeds a math/rand source for reproducible games.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller in the start state with an empty grid.
func NewController(rules Rules, opts ...Option) *Controller {
	c := &Controller{
		rules: rules,
		state: StateStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.grid = NewGrid(rules.Size)
	return c
}

// StartGame begins a game on a fresh grid with two fixed initial tiles:
// a 4 on the first cell and a 2 on the second.
func (c *Controller) StartGame() error {
	if err := c.transition(StateRunning); err != nil {
		return err
	}
	c.reset(NewGrid(c.rules.Size))
	c.spawn(SpawnFixed)
	c.spawn(SpawnFixed)
	c.logger.Debug("game started", "size", c.rules.Size, "target", c.rules.WinTarget)
	return nil
}

// StartGameWith begins a game on a grid seeded from tiles.
// No initial tiles are spawned.
func (c *Controller) StartGameWith(tiles [][]*Tile) error {
	g, err := NewGridFromTiles(tiles)
	if err != nil {
		return err
	}
	if g.Size() != c.rules.Size {
		return fmt.Errorf("%w: seed is %dx%d, rules want %dx%d", ErrInvalidGrid, g.Size(), g.Size(), c.rules.Size, c.rules.Size)
	}
	if err := c.transition(StateRunning); err != nil {
		return err
	}
	c.reset(g)
	c.logger.Debug("game started from preset", "tiles", g.Count())
	return nil
}

func (c *Controller) reset(g *Grid) {
	c.grid = g
	c.score = 0
	c.highestScore = 0
	c.tilesAdded = 0
	c.moves = 0
}

// Move slides the grid in dir and spawns a tile according to mode.
// Returns false without side effects if the game is not running or
// nothing would move.
func (c *Controller) Move(dir Direction, mode SpawnMode) bool {
	if c.state != StateRunning {
		return false
	}

	res := Slide(c.grid, dir)
	if !res.Moved {
		return false
	}

	c.grid.ClearMerged()
	c.moves++
	c.score += res.Gained
	if res.MaxMerged > c.highestScore {
		c.highestScore = res.MaxMerged
	}
	c.logger.Debug("move", "dir", dir, "gained", res.Gained, "merges", res.Merges, "score", c.score)

	c.spawn(mode)
	c.evaluate()
	return true
}

// MoveUp moves up. spawnRandom selects random spawning; false spawns
// deterministically on the first empty cell.
func (c *Controller) MoveUp(spawnRandom bool) bool {
	return c.Move(DirUp, spawnModeFor(spawnRandom))
}

// MoveDown moves down.
func (c *Controller) MoveDown(spawnRandom bool) bool {
	return c.Move(DirDown, spawnModeFor(spawnRandom))
}

// MoveLeft moves left.
func (c *Controller) MoveLeft(spawnRandom bool) bool {
	return c.Move(DirLeft, spawnModeFor(spawnRandom))
}

// MoveRight moves right.
func (c *Controller) MoveRight(spawnRandom bool) bool {
	return c.Move(DirRight, spawnModeFor(spawnRandom))
}

func spawnModeFor(random bool) SpawnMode {
	if random {
		return SpawnRandom
	}
	return SpawnFixed
}

func (c *Controller) spawn(mode SpawnMode) {
	var (
		pos   Pos
		value int
		ok    bool
	)
	switch mode {
	case SpawnRandom:
		pos, value, ok = spawnRandom(c.grid, c.src, c.rules.Spawn4Prob)
	case SpawnFixed:
		pos, value, ok = spawnFixed(c.grid, c.tilesAdded)
	default:
		return
	}
	if !ok {
		return
	}
	c.tilesAdded++
	c.logger.Debug("spawn", "mode", mode, "row", pos.Row, "col", pos.Col, "value", value)
}

// evaluate checks end conditions. A win takes precedence over game over.
func (c *Controller) evaluate() {
	switch {
	case c.grid.MaxValue() >= c.rules.WinTarget:
		c.mustTransition(StateWon)
	case !c.CanMove():
		c.mustTransition(StateOver)
	}
}

func (c *Controller) transition(to State) error {
	if !CanTransition(c.state, to) {
		return transitionError(c.state, to)
	}
	c.logger.Debug("state", "from", c.state, "to", to)
	c.state = to
	return nil
}

// mustTransition is used where the caller has already checked the source state.
func (c *Controller) mustTransition(to State) {
	if err := c.transition(to); err != nil {
		panic(err)
	}
}

// CanMove returns true if some direction would change the grid.
func (c *Controller) CanMove() bool {
	return !c.grid.IsFull() || c.grid.HasAdjacentEqual()
}

// State returns the current game state.
func (c *Controller) State() State {
	return c.state
}

// Grid returns a copy of the current grid.
func (c *Controller) Grid() *Grid {
	return c.grid.Clone()
}

// Score returns the sum of all merge values so far.
func (c *Controller) Score() int {
	return c.score
}

// HighestScore returns the largest tile value produced by a merge this game.
func (c *Controller) HighestScore() int {
	return c.highestScore
}

// TilesAdded returns how many tiles have been spawned this game.
func (c *Controller) TilesAdded() int {
	return c.tilesAdded
}

// Moves returns the number of successful moves this game.
func (c *Controller) Moves() int {
	return c.moves
}

// Rules returns the rules the controller was created with.
func (c *Controller) Rules() Rules {
	return c.rules
}
