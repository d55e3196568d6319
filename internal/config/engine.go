package config

import (
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// EngineConfig holds settings for the computer player and move generator.
type EngineConfig struct {
	// Level is the skill level, clamped to 1..10 by the player.
	Level int `yaml:"level"`

	// Colour is the side the engine plays: "white" or "black".
	Colour string `yaml:"colour"`

	// Workers is the number of goroutines scoring root candidates.
	Workers int `yaml:"workers"`

	// MaxDepth caps the search depth derived from Level (0 = no cap).
	MaxDepth int `yaml:"max_depth" split_words:"true"`

	// Seed drives the skew choice among near-best moves (0 = time based).
	Seed int64 `yaml:"seed"`

	// WhiteOnly disables move generation for Black.
	WhiteOnly bool `yaml:"white_only" split_words:"true"`

	// Pieces restricts generation to these piece letters, e.g. "pnr"
	// (empty = all pieces).
	Pieces string `yaml:"pieces"`
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() EngineConfig {
	return EngineConfig{
		Level:   3,
		Colour:  "white",
		Workers: 1,
	}
}

// SideColour parses Colour.
func (e EngineConfig) SideColour() (chess.Colour, error) {
	c, ok := chess.ParseColour(e.Colour)
	if !ok {
		return chess.White, errors.Wrapf(errors.ErrInvalidColour, "%q", e.Colour)
	}
	return c, nil
}

// PieceFilter parses Pieces into piece types. An empty string yields nil,
// meaning every piece type.
func (e EngineConfig) PieceFilter() ([]chess.Piece, error) {
	return ParsePieces(e.Pieces)
}

// ParsePieces converts piece letters (any case) to piece types.
func ParsePieces(letters string) ([]chess.Piece, error) {
	var pieces []chess.Piece
	for _, c := range strings.ToUpper(letters) {
		var p chess.Piece
		switch c {
		case 'P':
			p = chess.Pawn
		case 'N':
			p = chess.Knight
		case 'B':
			p = chess.Bishop
		case 'R':
			p = chess.Rook
		case 'Q':
			p = chess.Queen
		case 'K':
			p = chess.King
		default:
			return nil, errors.Wrapf(errors.ErrInvalidPieces, "letter %q", c)
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}
