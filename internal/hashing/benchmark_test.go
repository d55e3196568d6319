package hashing

import (
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
}

func BenchmarkZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board := engine.MustBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ZobristHash(board, chess.White)
			}
		})
	}
}

func BenchmarkRepetitionTracker_Record(b *testing.B) {
	positions := engine.GeneratePositions(chess.StandardPosition(), chess.White)

	b.Run("Unique", func(b *testing.B) {
		tracker := NewRepetitionTracker(0)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tracker.Record(positions[i%len(positions)], chess.Black)
		}
	})

	b.Run("Repeated", func(b *testing.B) {
		tracker := NewRepetitionTracker(0)
		board := chess.StandardPosition()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tracker.Record(board, chess.White)
		}
	})
}
