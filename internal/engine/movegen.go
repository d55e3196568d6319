// Package engine generates pseudo-legal successor positions and converts
// boards to and from FEN placement strings.
package engine

import "github.com/lgbarn/cpuchess-go/internal/chess"

// Options restricts move generation.
// The zero value generates every piece type for both colours.
type Options struct {
	// WhiteOnly generates nothing when Black is to move.
	WhiteOnly bool

	// Pieces, when non-empty, limits generation to these piece types.
	Pieces []chess.Piece
}

// allows reports whether generation is enabled for piece.
func (o Options) allows(piece chess.Piece) bool {
	if len(o.Pieces) == 0 {
		return true
	}
	for _, p := range o.Pieces {
		if p == piece {
			return true
		}
	}
	return false
}

// Generator produces pseudo-legal moves for a side. King safety is not
// checked: a generated move may leave the mover's own king attacked.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

var defaultGenerator = NewGenerator(Options{})

// GeneratePositions returns every successor board reachable by moving one
// piece of colour, using the default generator.
func GeneratePositions(board chess.Board, colour chess.Colour) []chess.Board {
	return defaultGenerator.Positions(board, colour)
}

// GenerateMoves returns every pseudo-legal move of colour, using the default
// generator.
func GenerateMoves(board chess.Board, colour chess.Colour) []chess.Move {
	return defaultGenerator.Moves(board, colour)
}

// Positions returns one successor board per pseudo-legal move, in the same
// order as Moves.
func (g *Generator) Positions(board chess.Board, colour chess.Colour) []chess.Board {
	moves := g.Moves(board, colour)
	positions := make([]chess.Board, len(moves))
	for i, m := range moves {
		positions[i] = m.Apply(board)
	}
	return positions
}

// Moves returns every pseudo-legal move of colour. Squares are scanned rank
// by rank from index 0 and file by file within a rank, so the order is
// stable for a given board.
func (g *Generator) Moves(board chess.Board, colour chess.Colour) []chess.Move {
	if g.opts.WhiteOnly && colour == chess.Black {
		return nil
	}

	var moves []chess.Move
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(file, rank)
			if !piece.BelongsTo(colour) {
				continue
			}
			kind := piece.Kind()
			if !g.opts.allows(kind) {
				continue
			}
			from := chess.Coord{File: file, Rank: rank}
			moves = generatePieceMoves(moves, board, from, piece, colour)
		}
	}
	return moves
}

// generatePieceMoves appends the moves of the piece on from.
func generatePieceMoves(moves []chess.Move, board chess.Board, from chess.Coord, piece chess.PieceKind, colour chess.Colour) []chess.Move {
	switch piece.Kind() {
	case chess.Pawn:
		return pawnMoves(moves, board, from, piece, colour)
	case chess.Knight:
		return stepMoves(moves, board, from, piece, colour, knightOffsets)
	case chess.King:
		return stepMoves(moves, board, from, piece, colour, kingOffsets)
	case chess.Bishop:
		return slideMoves(moves, board, from, piece, colour, diagonalRays)
	case chess.Rook:
		return slideMoves(moves, board, from, piece, colour, straightRays)
	case chess.Queen:
		return slideMoves(moves, board, from, piece, colour, queenRays)
	}
	return moves
}

// canLand reports whether colour may move onto target: it must be Blank or
// hold an enemy piece. OffBoard and own pieces are rejected.
func canLand(target chess.PieceKind, colour chess.Colour) bool {
	if target == chess.Blank {
		return true
	}
	return target.IsPiece() && !target.BelongsTo(colour)
}
