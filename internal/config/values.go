package config

import (
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// PieceValues holds the material value of each piece type in centipawns.
type PieceValues struct {
	Pawn   int `yaml:"pawn"`
	Knight int `yaml:"knight"`
	Bishop int `yaml:"bishop"`
	Rook   int `yaml:"rook"`
	Queen  int `yaml:"queen"`
	King   int `yaml:"king"`
}

// NewPieceValues returns the default piece values. The king outweighs all
// other material combined so that losing it decides the evaluation.
func NewPieceValues() PieceValues {
	return PieceValues{
		Pawn:   100,
		Knight: 320,
		Bishop: 330,
		Rook:   500,
		Queen:  900,
		King:   20000,
	}
}

// Map returns the values keyed by piece type.
func (v PieceValues) Map() map[chess.Piece]int {
	return map[chess.Piece]int{
		chess.Pawn:   v.Pawn,
		chess.Knight: v.Knight,
		chess.Bishop: v.Bishop,
		chess.Rook:   v.Rook,
		chess.Queen:  v.Queen,
		chess.King:   v.King,
	}
}

// pieceOrder fixes the order in which values are checked.
var pieceOrder = []chess.Piece{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}

// Validate rejects negative values, reporting the first in pieceOrder.
func (v PieceValues) Validate() error {
	values := v.Map()
	for _, piece := range pieceOrder {
		if value := values[piece]; value < 0 {
			return invalid("values."+strings.ToLower(piece.String()), value)
		}
	}
	return nil
}
