package engine

import "github.com/lgbarn/cpuchess-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// stepMoves appends single-step moves to each offset (knight and king).
func stepMoves(moves []chess.Move, board chess.Board, from chess.Coord, piece chess.PieceKind, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, offset := range offsets {
		to := from.Add(offset[0], offset[1])
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if canLand(target, colour) {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}
