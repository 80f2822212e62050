// Package game tracks a single run through a maze: the player's
// position, move count, breadcrumb trail, and elapsed time.
package game

import (
	"github.com/mazebound/mazebound/internal/maze"
)

// Trail records the cells walked through during a run. Stepping back
// onto the previous cell drops the newest crumb instead of appending,
// so the trail always traces a route without immediate backtracks.
type Trail struct {
	crumbs []maze.Position
}

// NewTrail starts a trail at the given cell.
func NewTrail(start maze.Position) *Trail {
	return &Trail{crumbs: []maze.Position{start}}
}

// Visit records movement onto p. Re-visiting the current cell is a
// no-op, and moving back to the crumb before it erases the newest one.
func (t *Trail) Visit(p maze.Position) {
	n := len(t.crumbs)
	if n == 0 {
		return
	}
	if t.crumbs[n-1] == p {
		return
	}
	if n >= 2 && t.crumbs[n-2] == p {
		t.crumbs = t.crumbs[:n-1]
		return
	}
	t.crumbs = append(t.crumbs, p)
}

// Path returns a copy of the crumbs from the start to the current cell.
func (t *Trail) Path() []maze.Position {
	path := make([]maze.Position, len(t.crumbs))
	copy(path, t.crumbs)
	return path
}

// Len returns the number of crumbs.
func (t *Trail) Len() int {
	return len(t.crumbs)
}

// Last returns the newest crumb, reporting false on an empty trail.
func (t *Trail) Last() (maze.Position, bool) {
	if len(t.crumbs) == 0 {
		return maze.Position{}, false
	}
	return t.crumbs[len(t.crumbs)-1], true
}
