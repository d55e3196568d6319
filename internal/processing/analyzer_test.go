package processing

import (
	"io"
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/hashing"
	"github.com/lgbarn/cpuchess-go/internal/output"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

func TestAnalyzeGameRepetition(t *testing.T) {
	g := newTestGame(t, shuttleFEN, 50)
	if _, err := g.Run(output.NewTextWriter(io.Discard, false)); err != nil {
		t.Fatal(err)
	}

	analysis := AnalyzeGame(g.Start, g.StartToMove, g.Moves)
	testutil.AssertEqual(t, analysis.Plies, 8)
	testutil.AssertTrue(t, analysis.RepetitionDetected(), "threefold repetition")
	testutil.AssertEqual(t, analysis.MaxOccurrences, 3)
	testutil.AssertEqual(t, analysis.Captures, [2]int{0, 0})
	testutil.AssertEqual(t, len(analysis.Positions), 9)
	testutil.AssertEqual(t, analysis.Positions[0], analysis.Positions[8])
	testutil.AssertEqual(t, analysis.Positions[0], hashing.ZobristHash(g.Start, chess.White))
	testutil.AssertBoardEqual(t, analysis.FinalBoard, g.Board)
	testutil.AssertEqual(t, analysis.FinalToMove, g.ToMove)
}

func TestAnalyzeGameCaptures(t *testing.T) {
	g := newTestGame(t, "Q7/k7/8/8/8/8/8/8 w - - 0 1", 10)
	if _, err := g.Run(output.NewTextWriter(io.Discard, false)); err != nil {
		t.Fatal(err)
	}

	analysis := AnalyzeGame(g.Start, g.StartToMove, g.Moves)
	testutil.AssertEqual(t, analysis.Captures, [2]int{1, 0})
	testutil.AssertTrue(t, analysis.KingCaptured, "king captured")
	testutil.AssertTrue(t, !analysis.HasRepetition, "no repetition")
	testutil.AssertEqual(t, analysis.FinalToMove, chess.Black)
}

func TestAnalyzeGameEmpty(t *testing.T) {
	start := chess.StandardPosition()
	analysis := AnalyzeGame(start, chess.White, nil)

	testutil.AssertEqual(t, analysis.Plies, 0)
	testutil.AssertEqual(t, analysis.MaxOccurrences, 1)
	testutil.AssertBoardEqual(t, analysis.FinalBoard, start)
}

func TestValidateGame(t *testing.T) {
	gen := engine.NewGenerator(engine.Options{})
	start := chess.StandardPosition()
	first := engine.GenerateMoves(start, chess.White)[0]
	reply := engine.GenerateMoves(first.Apply(start), chess.Black)[0]

	t.Run("valid record", func(t *testing.T) {
		result := ValidateGame(start, chess.White, []chess.Move{first, reply}, gen)
		testutil.AssertTrue(t, result.Valid, result.ErrorMsg)
	})

	t.Run("wrong side", func(t *testing.T) {
		result := ValidateGame(start, chess.White, []chess.Move{first, first}, gen)
		testutil.AssertTrue(t, !result.Valid, "same move twice")
		testutil.AssertEqual(t, result.ErrorPly, 2)
		testutil.AssertContains(t, result.ErrorMsg, "illegal move at ply 2")
	})

	t.Run("restricted generator", func(t *testing.T) {
		whiteOnly := engine.NewGenerator(engine.Options{WhiteOnly: true})
		result := ValidateGame(start, chess.White, []chess.Move{first, reply}, whiteOnly)
		testutil.AssertEqual(t, result.ErrorPly, 2)
	})

	t.Run("move after king capture", func(t *testing.T) {
		b := engine.MustBoardFromFEN("Q7/k7/8/8/8/8/8/8 w - - 0 1")
		take := engine.GenerateMoves(b, chess.White)
		var capture chess.Move
		for _, m := range take {
			if m.Captured == chess.BlackKing {
				capture = m
			}
		}
		after := capture.Apply(b)
		next := engine.GenerateMoves(after, chess.White)[0]

		result := ValidateGame(b, chess.White, []chess.Move{capture}, gen)
		testutil.AssertTrue(t, result.Valid, result.ErrorMsg)

		// Black has nothing left, so any continuation is rejected.
		result = ValidateGame(b, chess.White, []chess.Move{capture, next}, gen)
		testutil.AssertTrue(t, !result.Valid, "continuation after king capture")
		testutil.AssertEqual(t, result.ErrorPly, 2)
	})
}
