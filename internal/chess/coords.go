package chess

import "fmt"

// Coord is a zero-based (file, rank) pair.
type Coord struct {
	File int
	Rank int
}

// CoordsFromAN converts an algebraic file letter and rank number to
// zero-based (file, rank). Letters outside a-h/A-H give OffFile. The rank is
// not checked, so rank 0 or 9 come back as -1 or 8 and read as off-board.
func CoordsFromAN(file rune, rank int) (int, int) {
	f := OffFile
	switch {
	case file >= 'a' && file <= 'h':
		f = int(file - 'a')
	case file >= 'A' && file <= 'H':
		f = int(file - 'A')
	}
	return f, rank - 1
}

// CoordFromAN is CoordsFromAN returning a Coord.
func CoordFromAN(file rune, rank int) Coord {
	f, r := CoordsFromAN(file, rank)
	return Coord{File: f, Rank: r}
}

// OnBoard reports whether the coordinate names one of the 64 real squares.
func (c Coord) OnBoard() bool {
	return OnBoard(c.File, c.Rank)
}

// Add returns c offset by (df, dr).
func (c Coord) Add(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// String renders the coordinate in the algebraic form CoordsFromAN reads.
func (c Coord) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+c.File, c.Rank+1)
}

// OnBoard reports whether file and rank are both in 0..7.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}
