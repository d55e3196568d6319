package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Failure paths cannot be observed without mocking *testing.T, so these
// cover the success paths and the message formatting.

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Coord{File: 1, Rank: 2}, chess.Coord{File: 1, Rank: 2}, "coord %d", 1)
	AssertNoError(t, nil)
	AssertContains(t, "hello world", "world")
	AssertTrue(t, len("hello") == 5)

	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardWith(t *testing.T) {
	b := BoardWith(
		Square{'e', 8, chess.WhiteKing},
		Square{'e', 1, chess.BlackKing},
	)
	AssertTrue(t, b.Get(4, 7) == chess.WhiteKing, "white king on (4,7)")
	AssertTrue(t, b.Get(4, 0) == chess.BlackKing, "black king on (4,0)")
	AssertEqual(t, b.Count(chess.Blank), 62)

	other := b
	AssertTrue(t, ContainsBoard([]chess.Board{chess.NewBoard(), other}, b))
	AssertBoardEqual(t, other, b)
}

func TestDestinations(t *testing.T) {
	from := chess.Coord{File: 0, Rank: 0}
	moves := []chess.Move{
		{From: from, To: chess.Coord{File: 0, Rank: 1}},
		{From: chess.Coord{File: 5, Rank: 5}, To: chess.Coord{File: 5, Rank: 4}},
		{From: from, To: chess.Coord{File: 1, Rank: 0}},
	}
	AssertEqual(t, Destinations(moves, from), []chess.Coord{{File: 0, Rank: 1}, {File: 1, Rank: 0}})
}
