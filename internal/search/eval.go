package search

import "github.com/lgbarn/cpuchess-go/internal/chess"

// Evaluator scores a position from the point of view of side.
// Positive scores favour side.
type Evaluator interface {
	Evaluate(board chess.Board, side chess.Colour) int
}

// Material scores a position by summing piece values.
type Material struct {
	values [chess.King + 1]int
}

// DefaultValues are the material values used when none are configured.
var DefaultValues = map[chess.Piece]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// NewMaterial returns a material evaluator using values. Missing piece
// types are worth nothing.
func NewMaterial(values map[chess.Piece]int) *Material {
	m := &Material{}
	for piece, v := range values {
		if piece > chess.NoPiece && piece <= chess.King {
			m.values[piece] = v
		}
	}
	return m
}

// Evaluate returns side's material minus the opponent's.
func (m *Material) Evaluate(board chess.Board, side chess.Colour) int {
	score := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(file, rank)
			if !piece.IsPiece() {
				continue
			}
			v := m.values[piece.Kind()]
			if piece.BelongsTo(side) {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
