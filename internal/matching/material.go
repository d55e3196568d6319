// Package matching selects positions by their material.
package matching

import (
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.Piece]int
	blackPieces map[chess.Piece]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
// With exact set, pieces absent from the pattern must be absent from the
// board; otherwise the pattern is a minimum.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.Piece]int),
		blackPieces: make(map[chess.Piece]int),
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return errors.Wrapf(errors.ErrInvalidPieces, "material pattern %q has more than one ':'", pattern)
	}
	if err := parseSide(parts[0], chess.White, mm.whitePieces); err != nil {
		return errors.Wrapf(err, "material pattern %q", pattern)
	}
	if len(parts) == 2 {
		if err := parseSide(parts[1], chess.Black, mm.blackPieces); err != nil {
			return errors.Wrapf(err, "material pattern %q", pattern)
		}
	}
	return nil
}

// parseSide counts the pieces of one side. Letters must use that side's
// case: uppercase for White, lowercase for Black.
func parseSide(s string, colour chess.Colour, counts map[chess.Piece]int) error {
	for i := 0; i < len(s); i++ {
		kind, ok := chess.PieceKindFromLetter(s[i])
		if !ok || !kind.BelongsTo(colour) {
			return errors.Wrapf(errors.ErrInvalidPieces, "unexpected %q for %s", s[i], colour)
		}
		counts[kind.Kind()]++
	}
	return nil
}

// MatchBoard checks whether board matches the material pattern.
func (mm *MaterialMatcher) MatchBoard(board chess.Board) bool {
	whiteCounts := make(map[chess.Piece]int)
	blackCounts := make(map[chess.Piece]int)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(file, rank)
			if !piece.IsPiece() {
				continue
			}
			if piece.IsWhite() {
				whiteCounts[piece.Kind()]++
			} else {
				blackCounts[piece.Kind()]++
			}
		}
	}

	if mm.exactMatch {
		return mm.exactMaterialMatch(whiteCounts, blackCounts)
	}
	return mm.minimalMaterialMatch(whiteCounts, blackCounts)
}

// Filter returns the boards that match, in their original order.
func (mm *MaterialMatcher) Filter(boards []chess.Board) []chess.Board {
	var matched []chess.Board
	for _, b := range boards {
		if mm.MatchBoard(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

// exactMaterialMatch checks for exact material match.
func (mm *MaterialMatcher) exactMaterialMatch(whiteCounts, blackCounts map[chess.Piece]int) bool {
	allPieces := []chess.Piece{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}
	for _, piece := range allPieces {
		if whiteCounts[piece] != mm.whitePieces[piece] || blackCounts[piece] != mm.blackPieces[piece] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(whiteCounts, blackCounts map[chess.Piece]int) bool {
	// White must have at least the specified pieces
	for piece, count := range mm.whitePieces {
		if whiteCounts[piece] < count {
			return false
		}
	}

	// Black must have at least the specified pieces
	for piece, count := range mm.blackPieces {
		if blackCounts[piece] < count {
			return false
		}
	}

	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
