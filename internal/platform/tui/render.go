package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

const (
	cellWidth  = 7 // Width of each tile, without borders
	cellHeight = 3 // Height of each tile
)

// Theme holds the styles used to draw the board.
type Theme struct {
	Title       lipgloss.Style
	HUDLabel    lipgloss.Style
	HUDValue    lipgloss.Style
	Board       lipgloss.Style
	EmptyCell   lipgloss.Style
	OverlayWon  lipgloss.Style
	OverlayOver lipgloss.Style
	Hint        lipgloss.Style

	// Tiles maps tile values to background/foreground pairs.
	Tiles map[int]lipgloss.Style
	// Big is used for tiles above the largest entry in Tiles.
	Big lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	tile := func(bg, fg string) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(fg)).
			Bold(true)
	}

	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		HUDLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Board:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		EmptyCell:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		OverlayWon:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayOver: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Tiles: map[int]lipgloss.Style{
			2:    tile("254", "238"),
			4:    tile("223", "238"),
			8:    tile("215", "255"),
			16:   tile("209", "255"),
			32:   tile("203", "255"),
			64:   tile("196", "255"),
			128:  tile("228", "238"),
			256:  tile("227", "238"),
			512:  tile("226", "238"),
			1024: tile("220", "238"),
			2048: tile("214", "255"),
		},
		Big: tile("93", "255"),
	}
}

// TileStyle returns the style for a tile value.
func (t Theme) TileStyle(value int) lipgloss.Style {
	if s, ok := t.Tiles[value]; ok {
		return s
	}
	return t.Big
}

// RenderCell draws one cell of the board.
func (t Theme) RenderCell(tile *game.Tile) string {
	style := t.EmptyCell
	text := ""
	if tile != nil {
		style = t.TileStyle(tile.Value())
		text = tile.String()
	}
	return style.
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

// RenderBoard draws the grid with one styled block per cell.
func (t Theme) RenderBoard(g *game.Grid) string {
	rows := make([]string, g.Size())
	for r := range g.Size() {
		line, err := g.Row(r)
		if err != nil {
			continue
		}
		cells := make([]string, len(line))
		for c, tile := range line {
			cells[c] = t.RenderCell(tile)
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return t.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderHUD draws the score line above the board.
func (t Theme) RenderHUD(snap game.Snapshot) string {
	item := func(label string, value int) string {
		return t.HUDLabel.Render(label+" ") + t.HUDValue.Render(fmt.Sprint(value))
	}
	return strings.Join([]string{
		item("Score", snap.Score),
		item("Best", snap.HighestScore),
		item("Target", snap.Target),
	}, "   ")
}

// RenderStatus returns the end-of-game banner, or "" while the game runs.
func (t Theme) RenderStatus(snap game.Snapshot) string {
	switch snap.State {
	case game.StateWon:
		return t.OverlayWon.Render(fmt.Sprintf("YOU WIN! %d reached", snap.Target)) + "\n" +
			t.Hint.Render("Press R to restart")
	case game.StateOver:
		return t.OverlayOver.Render(fmt.Sprintf("GAME OVER  Max tile: %d", snap.MaxTile)) + "\n" +
			t.Hint.Render("Press R to restart")
	}
	return ""
}

// RenderPlain draws the grid as fixed-width text without colour.
// Used for non-interactive output.
func RenderPlain(g *game.Grid) string {
	var sb strings.Builder
	values := g.Values()
	width := len(fmt.Sprint(g.MaxValue()))
	if width < 4 {
		width = 4
	}
	for _, row := range values {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteString(fmt.Sprintf("%*s", width, "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%*d", width, v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
