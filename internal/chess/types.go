// Package chess provides core chess types: colours, piece kinds, coordinates
// and the board itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank-index step a pawn of this colour moves by.
// White moves toward decreasing rank index, Black toward increasing.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

// ParseColour converts "white"/"w" or "black"/"b" (any case) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, true
	case "black", "Black", "BLACK", "b", "B":
		return Black, true
	}
	return White, false
}

// Piece is an uncoloured piece type.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceKind is the content of a square: one of the twelve coloured pieces,
// Blank, or the OffBoard sentinel. The zero value is Blank.
type PieceKind uint8

const (
	Blank PieceKind = iota
	WhitePawn
	BlackPawn
	WhiteBishop
	BlackBishop
	WhiteKnight
	BlackKnight
	WhiteRook
	BlackRook
	WhiteKing
	BlackKing
	WhiteQueen
	BlackQueen
	OffBoard
)

type kindInfo struct {
	piece  Piece
	colour Colour
	name   string
	letter byte
}

// kinds is indexed by PieceKind. Colour is looked up here rather than
// derived from the numeric value.
var kinds = [...]kindInfo{
	Blank:       {NoPiece, White, "Blank", '.'},
	WhitePawn:   {Pawn, White, "WhitePawn", 'P'},
	BlackPawn:   {Pawn, Black, "BlackPawn", 'p'},
	WhiteBishop: {Bishop, White, "WhiteBishop", 'B'},
	BlackBishop: {Bishop, Black, "BlackBishop", 'b'},
	WhiteKnight: {Knight, White, "WhiteKnight", 'N'},
	BlackKnight: {Knight, Black, "BlackKnight", 'n'},
	WhiteRook:   {Rook, White, "WhiteRook", 'R'},
	BlackRook:   {Rook, Black, "BlackRook", 'r'},
	WhiteKing:   {King, White, "WhiteKing", 'K'},
	BlackKing:   {King, Black, "BlackKing", 'k'},
	WhiteQueen:  {Queen, White, "WhiteQueen", 'Q'},
	BlackQueen:  {Queen, Black, "BlackQueen", 'q'},
	OffBoard:    {NoPiece, White, "OffBoard", '#'},
}

// MakePieceKind returns the PieceKind for a coloured piece.
// NoPiece yields Blank.
func MakePieceKind(colour Colour, piece Piece) PieceKind {
	for k, info := range kinds {
		if info.piece == piece && info.colour == colour && piece != NoPiece {
			return PieceKind(k)
		}
	}
	return Blank
}

// IsPiece reports whether the square holds a piece of either colour.
func (k PieceKind) IsPiece() bool {
	return k > Blank && k < OffBoard
}

// IsWhite reports whether k is a white piece.
func (k PieceKind) IsWhite() bool {
	return k.IsPiece() && kinds[k].colour == White
}

// IsBlack reports whether k is a black piece.
func (k PieceKind) IsBlack() bool {
	return k.IsPiece() && kinds[k].colour == Black
}

// Colour returns the owning colour. ok is false for Blank and OffBoard.
func (k PieceKind) Colour() (c Colour, ok bool) {
	if !k.IsPiece() {
		return White, false
	}
	return kinds[k].colour, true
}

// BelongsTo reports whether k is a piece owned by colour.
func (k PieceKind) BelongsTo(colour Colour) bool {
	c, ok := k.Colour()
	return ok && c == colour
}

// Kind returns the uncoloured piece type, or NoPiece.
func (k PieceKind) Kind() Piece {
	if !k.IsPiece() {
		return NoPiece
	}
	return kinds[k].piece
}

// Letter returns the FEN letter for k: uppercase for White, lowercase for
// Black, '.' for Blank and '#' for OffBoard.
func (k PieceKind) Letter() byte {
	if int(k) < len(kinds) {
		return kinds[k].letter
	}
	return '?'
}

// String returns the name of the piece kind.
func (k PieceKind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return "Unknown"
}

// PieceKindFromLetter converts a FEN letter to a PieceKind.
func PieceKindFromLetter(c byte) (PieceKind, bool) {
	for k := WhitePawn; k < OffBoard; k++ {
		if kinds[k].letter == c {
			return k, true
		}
	}
	return Blank, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// OffFile is the file index CoordsFromAN yields for an unknown letter.
	OffFile = BoardSize
)
