package engine

import "github.com/lgbarn/cpuchess-go/internal/chess"

// pawnMoves appends the pushes and captures of the pawn on from.
// There is no en passant and no promotion.
func pawnMoves(moves []chess.Move, board chess.Board, from chess.Coord, piece chess.PieceKind, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	one := from.Add(0, dir)
	if one.OnBoard() && board.At(one) == chess.Blank {
		moves = append(moves, chess.Move{From: from, To: one, Piece: piece, Captured: chess.Blank})

		two := one.Add(0, dir)
		if from.Rank == colour.PawnRank() && board.At(two) == chess.Blank {
			moves = append(moves, chess.Move{From: from, To: two, Piece: piece, Captured: chess.Blank})
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		to := from.Add(dc, dir)
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if target.IsPiece() && !target.BelongsTo(colour) {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}
