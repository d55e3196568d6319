package engine

import "github.com/lgbarn/cpuchess-go/internal/chess"

var (
	straightRays = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalRays = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenRays    = append(append([][2]int{}, straightRays...), diagonalRays...)
)

// slideMoves appends the moves of a sliding piece along each ray. A ray
// stops at the first occupied square; an enemy there is captured, an own
// piece or the board edge is not.
func slideMoves(moves []chess.Move, board chess.Board, from chess.Coord, piece chess.PieceKind, colour chess.Colour, rays [][2]int) []chess.Move {
	for _, dir := range rays {
		to := from.Add(dir[0], dir[1])
		for to.OnBoard() {
			target := board.At(to)
			if target != chess.Blank {
				if canLand(target, colour) {
					moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: chess.Blank})
			to = to.Add(dir[0], dir[1])
		}
	}
	return moves
}
