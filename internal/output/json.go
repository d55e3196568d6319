package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/engine"
)

// JSONResult represents one search in JSON format.
type JSONResult struct {
	GameID     string          `json:"gameId,omitempty"`
	Ply        int             `json:"ply,omitempty"`
	Colour     string          `json:"colour"`
	Level      int             `json:"level"`
	Depth      int             `json:"depth"`
	Passed     bool            `json:"passed,omitempty"`
	Move       *JSONMove       `json:"move,omitempty"`
	Score      int             `json:"score"`
	Nodes      int64           `json:"nodes"`
	FEN        string          `json:"fen"`
	Candidates []JSONCandidate `json:"candidates,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Text     string `json:"text"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
}

// JSONCandidate is a ranked root move.
type JSONCandidate struct {
	Move  JSONMove `json:"move"`
	Score int      `json:"score"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a report to JSON format. Candidates are included
// only when withCandidates is set.
func ResultToJSON(rep Report, withCandidates bool) *JSONResult {
	res := rep.Result
	jr := &JSONResult{
		GameID: rep.GameID,
		Ply:    rep.Ply,
		Colour: strings.ToLower(rep.Colour.String()),
		Level:  rep.Level,
		Depth:  res.Depth,
		Passed: res.Passed,
		Score:  res.Score,
		Nodes:  res.Nodes,
		FEN:    engine.BoardToFEN(res.Board, rep.Colour.Opposite()),
	}

	if m, ok := res.Move(); ok {
		jm := moveToJSON(m)
		jr.Move = &jm
	}

	if withCandidates {
		jr.Candidates = make([]JSONCandidate, len(res.Candidates))
		for i, c := range res.Candidates {
			jr.Candidates[i] = JSONCandidate{Move: moveToJSON(c.Move), Score: c.Score}
		}
	}
	return jr
}

// moveToJSON converts a single move to JSON format.
func moveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		Text:  m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(m.Piece.Kind()),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Kind())
	}
	return jm
}

// encodeJSON writes v as indented JSON.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
