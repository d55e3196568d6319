package testutil

import (
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Square is a piece placed at algebraic coordinates, e.g. {'e', 8, chess.WhiteKing}.
type Square struct {
	File  rune
	Rank  int
	Piece chess.PieceKind
}

// BoardWith returns an otherwise blank board holding the given pieces.
func BoardWith(squares ...Square) chess.Board {
	b := chess.NewBoard()
	for _, sq := range squares {
		f, r := chess.CoordsFromAN(sq.File, sq.Rank)
		b.Set(f, r, sq.Piece)
	}
	return b
}

// ContainsBoard reports whether want appears in boards.
func ContainsBoard(boards []chess.Board, want chess.Board) bool {
	for _, b := range boards {
		if b == want {
			return true
		}
	}
	return false
}

// Destinations returns the squares the piece on from reaches across moves.
func Destinations(moves []chess.Move, from chess.Coord) []chess.Coord {
	var to []chess.Coord
	for _, m := range moves {
		if m.From == from {
			to = append(to, m.To)
		}
	}
	return to
}

// AssertBoardEqual fails if got and want differ, printing both diagrams.
func AssertBoardEqual(t *testing.T, got, want chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got != want {
		report(t, "board mismatch\nwant:\n"+want.String()+"got:\n"+got.String(), msgAndArgs...)
	}
}
