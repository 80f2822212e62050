package maze

import "strings"

// String renders the maze as ASCII art. Every cell is three characters
// wide; the start and goal cells are marked S and G.
func (m *Maze) String() string {
	var b strings.Builder
	rows, cols := m.Grid.Dimensions()

	for r := 0; r < rows; r++ {
		// Top edge of this row
		for c := 0; c < cols; c++ {
			b.WriteByte('+')
			if m.Grid.cells[r][c].Walls[North] {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		// Cell bodies and side walls
		for c := 0; c < cols; c++ {
			if m.Grid.cells[r][c].Walls[West] {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(m.cellBody(Position{Row: r, Col: c}))
		}
		if m.Grid.cells[r][cols-1].Walls[East] {
			b.WriteString("|\n")
		} else {
			b.WriteString(" \n")
		}
	}

	// Bottom edge of the last row
	for c := 0; c < cols; c++ {
		b.WriteByte('+')
		if m.Grid.cells[rows-1][c].Walls[South] {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")

	return b.String()
}

func (m *Maze) cellBody(p Position) string {
	switch p {
	case m.Start:
		return " S "
	case m.Goal:
		return " G "
	}
	return "   "
}
