package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/search"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

// captureReport returns the report of White's rook taking a hanging queen.
func captureReport(ply int) Report {
	b := testutil.BoardWith(
		testutil.Square{File: 'a', Rank: 1, Piece: chess.WhiteRook},
		testutil.Square{File: 'a', Rank: 5, Piece: chess.BlackQueen},
	)
	p := search.NewCpuPlayer(chess.White, 5, search.WithMaxDepth(2))
	return Report{GameID: "g1", Ply: ply, Colour: chess.White, Level: 5, Result: p.Analyse(b)}
}

func passReport() Report {
	b := chess.NewBoard()
	p := search.NewCpuPlayer(chess.Black, 2)
	return Report{Colour: chess.Black, Level: 2, Result: p.Analyse(b)}
}

func TestDiagram(t *testing.T) {
	want := "" +
		"1  r n b q k b n r\n" +
		"2  p p p p p p p .\n" +
		"3  . . . . . . . .\n" +
		"4  . . . . . . . .\n" +
		"5  . . . . . . . .\n" +
		"6  . . . . . . . .\n" +
		"7  P P P P P P P .\n" +
		"8  R N B Q K B N R\n" +
		"   a b c d e f g h\n"
	testutil.AssertEqual(t, Diagram(chess.DefaultPosition()), want)

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteDiagram(&buf, chess.DefaultPosition()))
	testutil.AssertEqual(t, buf.String(), want)
}

func TestResultToJSON(t *testing.T) {
	jr := ResultToJSON(captureReport(3), true)

	testutil.AssertEqual(t, jr.GameID, "g1")
	testutil.AssertEqual(t, jr.Ply, 3)
	testutil.AssertEqual(t, jr.Colour, "white")
	testutil.AssertEqual(t, jr.Depth, 2)
	testutil.AssertEqual(t, jr.Score, 500)
	testutil.AssertEqual(t, jr.FEN, "8/8/8/8/R7/8/8/8 b - - 0 1")
	testutil.AssertEqual(t, *jr.Move, JSONMove{Text: "Ra1xa5", From: "a1", To: "a5", Piece: "rook", Captured: "queen"})
	testutil.AssertEqual(t, jr.Candidates[0].Move.Text, "Ra1xa5")
	testutil.AssertEqual(t, len(jr.Candidates), 11)

	testutil.AssertEqual(t, len(ResultToJSON(captureReport(3), false).Candidates), 0)

	passed := ResultToJSON(passReport(), false)
	testutil.AssertTrue(t, passed.Passed, "passed")
	testutil.AssertTrue(t, passed.Move == nil, "no move")
	testutil.AssertEqual(t, passed.Colour, "black")
}

func TestTextWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, false)

	testutil.AssertNoError(t, writer.WriteResult(captureReport(1)))
	testutil.AssertNoError(t, writer.WriteResult(passReport()))
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertNoError(t, writer.Close())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	testutil.AssertContains(t, lines[0], "  1. White (level 5): Ra1xa5 score 500")
	testutil.AssertEqual(t, lines[1], "Black (level 2): no moves")
}

func TestTextWriter_Diagram(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, true)
	testutil.AssertNoError(t, writer.WriteResult(captureReport(1)))

	testutil.AssertContains(t, buf.String(), "5  R . . . . . . .\n")
	testutil.AssertContains(t, buf.String(), "   a b c d e f g h\n")
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, false)

	testutil.AssertNoError(t, writer.WriteResult(captureReport(1)))
	testutil.AssertNoError(t, writer.WriteResult(passReport()))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Close")
	testutil.AssertNoError(t, writer.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Results), 2)
	testutil.AssertEqual(t, out.Results[0].Move.Text, "Ra1xa5")
	testutil.AssertTrue(t, out.Results[1].Passed, "second result passed")

	buf.Reset()
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertEqual(t, buf.Len(), 0, "buffer cleared after flush")
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, true)

	testutil.AssertNoError(t, writer.WriteResult(captureReport(1)))
	testutil.AssertTrue(t, buf.Len() > 0, "written immediately")
	testutil.AssertContains(t, buf.String(), `"candidates"`)
	testutil.AssertContains(t, buf.String(), `"gameId": "g1"`)
	testutil.AssertNoError(t, writer.Close())
}

// TestResultWriter_Interface verifies that writers implement the interface
func TestResultWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ ResultWriter = NewTextWriter(&buf, false)
	var _ ResultWriter = NewJSONWriter(&buf, false)
}
