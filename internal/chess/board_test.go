package chess

import (
	"testing"
)

func TestCoordsFromAN(t *testing.T) {
	tests := []struct {
		file     rune
		rank     int
		wantFile int
		wantRank int
	}{
		{'e', 1, 4, 0},
		{'a', 8, 0, 7},
		{'h', 1, 7, 0},
		{'H', 8, 7, 7},
		{'C', 4, 2, 3},
		{'z', 3, OffFile, 2},
		{'i', 1, OffFile, 0},
		{'1', 5, OffFile, 4},
		{'a', 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.file), func(t *testing.T) {
			f, r := CoordsFromAN(tt.file, tt.rank)
			if f != tt.wantFile || r != tt.wantRank {
				t.Errorf("CoordsFromAN(%c, %d) = (%d, %d); want (%d, %d)",
					tt.file, tt.rank, f, r, tt.wantFile, tt.wantRank)
			}
		})
	}
}

func TestCoordsFromANAllSquares(t *testing.T) {
	for file := 'a'; file <= 'h'; file++ {
		for rank := 1; rank <= 8; rank++ {
			f, r := CoordsFromAN(file, rank)
			if f != int(file-'a') || r != rank-1 {
				t.Errorf("CoordsFromAN(%c, %d) = (%d, %d)", file, rank, f, r)
			}
			upper := file - 'a' + 'A'
			if uf, ur := CoordsFromAN(upper, rank); uf != f || ur != r {
				t.Errorf("CoordsFromAN(%c, %d) = (%d, %d); want (%d, %d)", upper, rank, uf, ur, f, r)
			}
			if got := CoordFromAN(file, rank).String(); got != string(file)+string(rune('0'+rank)) {
				t.Errorf("Coord.String() = %q", got)
			}
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if got := b.Get(file, rank); got != Blank {
				t.Errorf("Get(%d, %d) = %v; want Blank", file, rank, got)
			}
		}
	}
}

func TestBoardBounds(t *testing.T) {
	b := DefaultPosition()
	before := b

	t.Run("reads outside the board", func(t *testing.T) {
		coords := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {8, 6}, {9, 0}, {0, 9}, {100, 100}}
		for _, c := range coords {
			if got := b.Get(c[0], c[1]); got != OffBoard {
				t.Errorf("Get(%d, %d) = %v; want OffBoard", c[0], c[1], got)
			}
		}
	})

	t.Run("file 8 does not alias the next rank", func(t *testing.T) {
		// (8, 6) would be slot 56 = (0, 7), the white rook, if it aliased.
		if b.Get(0, 7) != WhiteRook {
			t.Fatalf("setup: Get(0, 7) = %v", b.Get(0, 7))
		}
		if got := b.Get(8, 6); got != OffBoard {
			t.Errorf("Get(8, 6) = %v; want OffBoard", got)
		}
	})

	t.Run("writes outside the board are absorbed", func(t *testing.T) {
		b.Set(8, 0, WhiteQueen)
		b.Set(8, 6, BlackQueen)
		b.Set(0, 8, WhiteKing)
		b.Set(-1, 3, WhitePawn)
		b.Set(3, 42, BlackPawn)
		if b != before {
			t.Errorf("off-board writes changed the board:\n%s", b)
		}
		if got := b.Get(8, 0); got != OffBoard {
			t.Errorf("Get(8, 0) after write = %v; want OffBoard", got)
		}
	})
}

func TestDefaultPosition(t *testing.T) {
	b := DefaultPosition()

	tests := []struct {
		name  string
		file  int
		rank  int
		piece PieceKind
	}{
		{"white rook a8", 0, 7, WhiteRook},
		{"white rook h8", 7, 7, WhiteRook},
		{"white knight b8", 1, 7, WhiteKnight},
		{"white knight g8", 6, 7, WhiteKnight},
		{"white bishop c8", 2, 7, WhiteBishop},
		{"white bishop f8", 5, 7, WhiteBishop},
		{"white queen d8", 3, 7, WhiteQueen},
		{"white king e8", 4, 7, WhiteKing},
		{"black rook a1", 0, 0, BlackRook},
		{"black rook h1", 7, 0, BlackRook},
		{"black knight b1", 1, 0, BlackKnight},
		{"black queen d1", 3, 0, BlackQueen},
		{"black king e1", 4, 0, BlackKing},
		{"white pawn a", 0, 6, WhitePawn},
		{"white pawn g", 6, 6, WhitePawn},
		{"black pawn a", 0, 1, BlackPawn},
		{"black pawn g", 6, 1, BlackPawn},
		{"no white pawn on h", 7, 6, Blank},
		{"no black pawn on h", 7, 1, Blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.file, tt.rank); got != tt.piece {
				t.Errorf("Get(%d, %d) = %v; want %v", tt.file, tt.rank, got, tt.piece)
			}
		})
	}

	t.Run("middle ranks blank", func(t *testing.T) {
		for rank := 2; rank <= 5; rank++ {
			for file := 0; file < BoardSize; file++ {
				if got := b.Get(file, rank); got != Blank {
					t.Errorf("Get(%d, %d) = %v; want Blank", file, rank, got)
				}
			}
		}
	})

	t.Run("one king per colour", func(t *testing.T) {
		if n := b.Count(WhiteKing); n != 1 {
			t.Errorf("white kings = %d; want 1", n)
		}
		if n := b.Count(BlackKing); n != 1 {
			t.Errorf("black kings = %d; want 1", n)
		}
	})

	t.Run("pawn counts", func(t *testing.T) {
		if n := b.Count(WhitePawn); n != 7 {
			t.Errorf("white pawns = %d; want 7", n)
		}
		if n := StandardPosition().Count(BlackPawn); n != 8 {
			t.Errorf("standard black pawns = %d; want 8", n)
		}
	})
}

func TestBoardIsValue(t *testing.T) {
	a := DefaultPosition()
	b := a
	b.Set(4, 4, WhiteQueen)
	if a.Get(4, 4) != Blank {
		t.Error("modifying a copy changed the original")
	}
	if a == b {
		t.Error("boards with different squares compare equal")
	}
}

func TestPieceKindColour(t *testing.T) {
	tests := []struct {
		kind   PieceKind
		white  bool
		black  bool
		piece  Piece
		letter byte
	}{
		{WhitePawn, true, false, Pawn, 'P'},
		{BlackPawn, false, true, Pawn, 'p'},
		{WhiteBishop, true, false, Bishop, 'B'},
		{BlackKnight, false, true, Knight, 'n'},
		{WhiteRook, true, false, Rook, 'R'},
		{BlackKing, false, true, King, 'k'},
		{WhiteQueen, true, false, Queen, 'Q'},
		{Blank, false, false, NoPiece, '.'},
		{OffBoard, false, false, NoPiece, '#'},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsWhite(); got != tt.white {
				t.Errorf("IsWhite() = %v; want %v", got, tt.white)
			}
			if got := tt.kind.IsBlack(); got != tt.black {
				t.Errorf("IsBlack() = %v; want %v", got, tt.black)
			}
			if got := tt.kind.Kind(); got != tt.piece {
				t.Errorf("Kind() = %v; want %v", got, tt.piece)
			}
			if got := tt.kind.Letter(); got != tt.letter {
				t.Errorf("Letter() = %c; want %c", got, tt.letter)
			}
			if tt.kind.IsPiece() {
				c, _ := tt.kind.Colour()
				if MakePieceKind(c, tt.piece) != tt.kind {
					t.Errorf("MakePieceKind(%v, %v) = %v", c, tt.piece, MakePieceKind(c, tt.piece))
				}
				if k, ok := PieceKindFromLetter(tt.letter); !ok || k != tt.kind {
					t.Errorf("PieceKindFromLetter(%c) = %v, %v", tt.letter, k, ok)
				}
			}
		})
	}
}

func TestMoveApply(t *testing.T) {
	b := DefaultPosition()
	m := Move{
		From:  Coord{File: 1, Rank: 7},
		To:    Coord{File: 2, Rank: 5},
		Piece: WhiteKnight,
	}
	next := m.Apply(b)

	if next.Get(1, 7) != Blank || next.Get(2, 5) != WhiteKnight {
		t.Errorf("Apply did not move the knight:\n%s", next)
	}
	if b.Get(1, 7) != WhiteKnight {
		t.Error("Apply modified the parent board")
	}
	if got := m.String(); got != "Nb8-c6" {
		t.Errorf("String() = %q; want %q", got, "Nb8-c6")
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is wrong")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Error("Forward() is wrong")
	}
	if c, ok := ParseColour("black"); !ok || c != Black {
		t.Errorf("ParseColour(black) = %v, %v", c, ok)
	}
	if _, ok := ParseColour("green"); ok {
		t.Error("ParseColour(green) succeeded")
	}
}

func TestBoardEqual(t *testing.T) {
	a := DefaultPosition()
	b := DefaultPosition()
	if !a.Equal(b) {
		t.Error("identical positions reported unequal")
	}

	b.Set(0, 6, Blank)
	if a.Equal(b) {
		t.Error("boards differing by a pawn reported equal")
	}
}
