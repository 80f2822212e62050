package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mazebound/mazebound/internal/logger"
	"github.com/mazebound/mazebound/internal/maze"
)

// Session is one player's run through a maze. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.RWMutex

	id       uuid.UUID
	maze     *maze.Maze
	position maze.Position
	moves    int
	trail    *Trail
	started  time.Time
	finished time.Time
	won      bool
}

// Snapshot is a point-in-time view of a session's progress.
type Snapshot struct {
	ID       uuid.UUID
	Level    string
	Position maze.Position
	Moves    int
	Elapsed  time.Duration
	Won      bool
}

// NewSession starts a run at the maze's start cell with the clock running.
func NewSession(m *maze.Maze) *Session {
	return &Session{
		id:       uuid.New(),
		maze:     m,
		position: m.Start,
		trail:    NewTrail(m.Start),
		started:  time.Now(),
	}
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Maze returns the maze being played.
func (s *Session) Maze() *maze.Maze {
	return s.maze
}

// Move attempts one step in the given direction and reports whether the
// step was taken. Walking into a wall or off the grid refuses the move;
// it is not an error. Finished runs refuse every move.
func (s *Session) Move(d maze.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.won {
		return false
	}
	if !s.maze.Grid.IsValidMove(s.position, d) {
		return false
	}

	s.position = s.position.Move(d)
	s.moves++
	s.trail.Visit(s.position)

	if s.position == s.maze.Goal {
		s.won = true
		s.finished = time.Now()
		logger.Info("Maze solved",
			"session", s.id.String(),
			"level", s.maze.Level.String(),
			"moves", s.moves,
			"elapsed", FormatElapsed(s.finished.Sub(s.started)))
	}

	return true
}

// Position returns the player's current cell.
func (s *Session) Position() maze.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// Moves returns the number of accepted moves so far.
func (s *Session) Moves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moves
}

// Won reports whether the goal has been reached.
func (s *Session) Won() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.won
}

// Elapsed returns the run time. Once the run is won the clock stops.
func (s *Session) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsedLocked()
}

func (s *Session) elapsedLocked() time.Duration {
	if s.won {
		return s.finished.Sub(s.started)
	}
	return time.Since(s.started)
}

// ElapsedText returns the run time formatted for the run clock.
func (s *Session) ElapsedText() string {
	return FormatElapsed(s.Elapsed())
}

// TrailPath returns a copy of the breadcrumb trail so far.
func (s *Session) TrailPath() []maze.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trail.Path()
}

// Snapshot returns a consistent view of the session's progress.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		ID:       s.id,
		Level:    s.maze.Level.String(),
		Position: s.position,
		Moves:    s.moves,
		Elapsed:  s.elapsedLocked(),
		Won:      s.won,
	}
}
