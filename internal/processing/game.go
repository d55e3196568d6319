// Package processing runs self-play games and analyses their move records.
package processing

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/hashing"
	"github.com/lgbarn/cpuchess-go/internal/output"
	"github.com/lgbarn/cpuchess-go/internal/search"
)

// Outcome is why a self-play game stopped.
type Outcome int

const (
	PlyLimit Outcome = iota
	NoMoves
	KingCaptured
	Repetition
)

func (o Outcome) String() string {
	switch o {
	case NoMoves:
		return "no moves"
	case KingCaptured:
		return "king captured"
	case Repetition:
		return "threefold repetition"
	default:
		return "ply limit"
	}
}

// PositionRecorder counts positions. hashing.ThreadSafeRepetitionTracker
// satisfies it and may be shared by games running concurrently.
type PositionRecorder interface {
	Record(board chess.Board, toMove chess.Colour) int
}

// Game alternates two players from a starting position.
type Game struct {
	ID          string
	Start       chess.Board
	StartToMove chess.Colour
	Board       chess.Board  // Current position
	ToMove      chess.Colour // Side to move in Board
	Moves       []chess.Move // Moves made so far

	players  [2]*search.CpuPlayer // indexed by chess.Colour
	maxPlies int
	tracker  *hashing.RepetitionTracker
	seen     PositionRecorder
	finished bool
	outcome  Outcome
}

// NewGame creates a game between white and black starting from board with
// toMove to play, stopping after at most maxPlies moves.
func NewGame(id string, white, black *search.CpuPlayer, board chess.Board, toMove chess.Colour, maxPlies int) *Game {
	return &Game{
		ID:          id,
		Start:       board,
		StartToMove: toMove,
		Board:       board,
		ToMove:      toMove,
		players:     [2]*search.CpuPlayer{white, black},
		maxPlies:    maxPlies,
		tracker:     hashing.NewRepetitionTracker(0),
	}
}

// Player returns the player for colour.
func (g *Game) Player(colour chess.Colour) *search.CpuPlayer {
	return g.players[colour]
}

// RecordPositionsTo also records every position the game reaches in r.
func (g *Game) RecordPositionsTo(r PositionRecorder) {
	g.seen = r
}

// Plies returns the number of moves made.
func (g *Game) Plies() int {
	return len(g.Moves)
}

// Run plays until an outcome is reached, writing every search to w.
// A game that has already stopped is not resumed.
func (g *Game) Run(w output.ResultWriter) (Outcome, error) {
	if g.finished {
		return g.outcome, nil
	}
	if g.tracker.UniqueCount() == 0 {
		g.record()
	}

	for g.Plies() < g.maxPlies {
		player := g.players[g.ToMove]
		res := player.Analyse(g.Board)

		rep := output.Report{GameID: g.ID, Ply: g.Plies() + 1, Colour: g.ToMove, Level: player.Level(), Result: res}
		if err := w.WriteResult(rep); err != nil {
			return PlyLimit, err
		}

		m, ok := res.Move()
		if !ok {
			return g.finish(NoMoves), nil
		}
		g.Board = res.Board
		g.Moves = append(g.Moves, m)
		if m.Captured.Kind() == chess.King {
			return g.finish(KingCaptured), nil
		}

		g.ToMove = g.ToMove.Opposite()
		if g.record() >= 3 {
			return g.finish(Repetition), nil
		}
	}
	return g.finish(PlyLimit), nil
}

func (g *Game) record() int {
	if g.seen != nil {
		g.seen.Record(g.Board, g.ToMove)
	}
	return g.tracker.Record(g.Board, g.ToMove)
}

func (g *Game) finish(o Outcome) Outcome {
	g.finished = true
	g.outcome = o
	return o
}
