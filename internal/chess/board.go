package chess

import "strings"

// Board is an 8x8 grid of piece kinds addressed by (file, rank), each 0..7.
// Rank index 0 is Black's back rank and rank index 7 is White's.
//
// Board is a plain value: assigning it copies the whole position.
type Board struct {
	squares [BoardSize * BoardSize]PieceKind
}

// slot maps (file, rank) to an index into squares. The bound test accepts
// 0..8 on both axes; a component equal to 8 then resolves to the off-board
// sentinel so that it neither aliases the next rank nor reaches slot 64.
func slot(file, rank int) (int, bool) {
	if file < 0 || rank < 0 || file > BoardSize || rank > BoardSize {
		return 0, false
	}
	if file == BoardSize || rank == BoardSize {
		return 0, false
	}
	return file + BoardSize*rank, true
}

// NewBoard returns a board with every square Blank.
func NewBoard() Board {
	return Board{}
}

// DefaultPosition returns the engine's initial position.
//
// Pawns fill files a-g of rank indices 6 (White) and 1 (Black); the h-file
// pawns are not placed. StandardPosition fills all eight files.
func DefaultPosition() Board {
	var b Board

	for i := 0; i < BoardSize-1; i++ {
		b.Set(i, 6, WhitePawn)
		b.Set(i, 1, BlackPawn)
	}

	placeBackRank(&b, White, 8)
	placeBackRank(&b, Black, 1)

	return b
}

// StandardPosition returns DefaultPosition with the h-file pawns added.
func StandardPosition() Board {
	b := DefaultPosition()
	b.Set(BoardSize-1, 6, WhitePawn)
	b.Set(BoardSize-1, 1, BlackPawn)
	return b
}

// placeBackRank places a colour's rooks, knights, bishops, queen and king on
// the given algebraic rank.
func placeBackRank(b *Board, colour Colour, rank int) {
	backRank := []struct {
		file  rune
		piece Piece
	}{
		{'a', Rook}, {'h', Rook},
		{'b', Knight}, {'g', Knight},
		{'c', Bishop}, {'f', Bishop},
		{'d', Queen},
		{'e', King},
	}
	for _, sq := range backRank {
		f, r := CoordsFromAN(sq.file, rank)
		b.Set(f, r, MakePieceKind(colour, sq.piece))
	}
}

// Get returns the piece at (file, rank), or OffBoard for any coordinate
// outside the board.
func (b Board) Get(file, rank int) PieceKind {
	i, ok := slot(file, rank)
	if !ok {
		return OffBoard
	}
	return b.squares[i]
}

// Set places a piece at (file, rank). Writes to off-board coordinates are
// absorbed by the sentinel and leave the board unchanged.
func (b *Board) Set(file, rank int, piece PieceKind) {
	i, ok := slot(file, rank)
	if !ok {
		return
	}
	b.squares[i] = piece
}

// At returns the piece on c.
func (b Board) At(c Coord) PieceKind {
	return b.Get(c.File, c.Rank)
}

// Equal reports whether b and other hold the same pieces on every square.
func (b Board) Equal(other Board) bool {
	return b.squares == other.squares
}

// Count returns how many squares hold piece.
func (b Board) Count(piece PieceKind) int {
	n := 0
	for _, p := range b.squares {
		if p == piece {
			n++
		}
	}
	return n
}

// String renders the board as eight lines of FEN letters, rank index 0
// first, with '.' for Blank squares.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Get(file, rank).Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
