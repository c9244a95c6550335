package game

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts a direction name or its first letter, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, nil
	case "d", "down":
		return DirDown, nil
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("game: unknown direction %q", s)
}

// vertical reports whether the direction moves tiles along columns.
func (d Direction) vertical() bool {
	return d == DirUp || d == DirDown
}

// towardsEnd reports whether tiles travel to the high-index end of a line.
func (d Direction) towardsEnd() bool {
	return d == DirDown || d == DirRight
}

// ParseMoves parses a move script. Scripts are either single letters
// ("LLUR") or words separated by commas or spaces ("left, up").
func ParseMoves(script string) ([]Direction, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var dirs []Direction
	for _, f := range fields {
		if _, err := ParseDirection(f); err != nil && len(f) > 1 {
			// A run of letters such as "LLUR".
			for _, r := range f {
				d, err := ParseDirection(string(r))
				if err != nil {
					return nil, err
				}
				dirs = append(dirs, d)
			}
			continue
		}
		d, err := ParseDirection(f)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
