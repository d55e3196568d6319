package processing

import (
	"fmt"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a move record.
type GameAnalysis struct {
	FinalBoard     chess.Board
	FinalToMove    chess.Colour
	Plies          int
	Captures       [2]int // Captures made, indexed by the capturing colour
	KingCaptured   bool
	HasRepetition  bool     // Some position occurred three times
	MaxOccurrences int      // Highest occurrence count of any position
	Positions      []uint64 // Zobrist hashes, starting position first
}

// RepetitionDetected returns true if the record has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// ValidationResult holds the result of record validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// AnalyzeGame replays moves from start and reports captures and repetitions.
// Moves are applied as given; use ValidateGame to check them first.
func AnalyzeGame(start chess.Board, toMove chess.Colour, moves []chess.Move) *GameAnalysis {
	analysis := &GameAnalysis{}
	board := start
	tracker := hashing.NewRepetitionTracker(0)

	record := func() {
		analysis.Positions = append(analysis.Positions, hashing.ZobristHash(board, toMove))
		if n := tracker.Record(board, toMove); n > analysis.MaxOccurrences {
			analysis.MaxOccurrences = n
		}
	}
	record()

	for _, m := range moves {
		if m.IsCapture() {
			analysis.Captures[toMove]++
			if m.Captured.Kind() == chess.King {
				analysis.KingCaptured = true
			}
		}
		board = m.Apply(board)
		toMove = toMove.Opposite()
		analysis.Plies++
		record()
	}

	analysis.HasRepetition = analysis.MaxOccurrences >= 3
	analysis.FinalBoard = board
	analysis.FinalToMove = toMove
	return analysis
}

// ValidateGame checks that every move is one gen produces for the side to
// move, and that nothing follows a king capture.
func ValidateGame(start chess.Board, toMove chess.Colour, moves []chess.Move, gen *engine.Generator) *ValidationResult {
	result := &ValidationResult{Valid: true}
	board := start

	for i, m := range moves {
		ply := i + 1
		if !containsMove(gen.Moves(board, toMove), m) {
			result.Valid = false
			result.ErrorPly = ply
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", ply, m)
			return result
		}
		if m.Captured.Kind() == chess.King && ply < len(moves) {
			result.Valid = false
			result.ErrorPly = ply + 1
			result.ErrorMsg = fmt.Sprintf("move after king capture at ply %d", ply+1)
			return result
		}
		board = m.Apply(board)
		toMove = toMove.Opposite()
	}
	return result
}

func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
