package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Its rows map onto rank indices 0..7 in order, so it reads back as
// chess.StandardPosition.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN reads the placement and side-to-move fields of a FEN
// string. The first placement row fills rank index 0 and the last fills
// rank index 7, which puts White's uppercase pieces on the high rank indices
// they move away from. Castling, en passant and clock fields are ignored.
func NewBoardFromFEN(fen string) (chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, chess.White, &errors.PositionError{
			Err: errors.ErrInvalidFEN, FEN: fen, Field: "placement", Reason: "empty FEN string",
		}
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		err.FEN = fen
		return chess.Board{}, chess.White, err
	}

	colour, err := parseSideToMove(parts)
	if err != nil {
		err.FEN = fen
		return chess.Board{}, chess.White, err
	}

	return board, colour, nil
}

// MustBoardFromFEN is NewBoardFromFEN for trusted literals. It panics on a
// malformed string.
func MustBoardFromFEN(fen string) chess.Board {
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (chess.Board, *errors.PositionError) {
	board := chess.NewBoard()
	rank, file := 0, 0

	fail := func(offset int, format string, args ...interface{}) (chess.Board, *errors.PositionError) {
		return chess.Board{}, &errors.PositionError{
			Err:    errors.ErrInvalidFEN,
			Field:  "placement",
			Offset: offset,
			Reason: fmt.Sprintf(format, args...),
		}
	}

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fail(i, "row %d has %d squares", rank, file)
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fail(i, "row %d overflows", rank)
			}
		default:
			piece, ok := chess.PieceKindFromLetter(c)
			if !ok {
				return fail(i, "invalid piece character %q", c)
			}
			if file >= chess.BoardSize || rank >= chess.BoardSize {
				return fail(i, "position out of bounds")
			}
			board.Set(file, rank, piece)
			file++
		}
	}

	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return fail(len(positions), "expected 8 full rows")
	}
	return board, nil
}

// parseSideToMove parses the side to move field. A missing field means White.
func parseSideToMove(parts []string) (chess.Colour, *errors.PositionError) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, &errors.PositionError{
		Err:    errors.ErrInvalidFEN,
		Field:  "side to move",
		Reason: fmt.Sprintf("invalid side to move %q", parts[1]),
	}
}

// BoardToFEN converts a board and side to move to a FEN string with empty
// castling and en passant fields.
func BoardToFEN(board chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(file, rank)
			if piece == chess.Blank {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
