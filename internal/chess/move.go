package chess

import "fmt"

// Move is a single pseudo-legal transition of one piece.
type Move struct {
	From     Coord
	To       Coord
	Piece    PieceKind
	Captured PieceKind // Blank when the destination was empty
}

// IsCapture reports whether the move lands on an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured.IsPiece()
}

// Apply returns a copy of b with the move made. b itself is not modified.
func (m Move) Apply(b Board) Board {
	next := b
	next.Set(m.From.File, m.From.Rank, Blank)
	next.Set(m.To.File, m.To.Rank, m.Piece)
	return next
}

// String returns the move in long algebraic form, e.g. "Nb8-c6" or "e7xd6".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	prefix := ""
	if kind := m.Piece.Kind(); kind != Pawn {
		prefix = string(kind.Letter())
	}
	return fmt.Sprintf("%s%s%s%s", prefix, m.From, sep, m.To)
}
