package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/search"
)

// Report is one search result with the context it was produced in.
type Report struct {
	GameID string // Empty outside self-play
	Ply    int    // 1-based half-move number, 0 outside self-play
	Colour chess.Colour
	Level  int
	Result search.Result
}

// ResultWriter is the interface for writing search results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(rep Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one summary line per result, optionally followed by a
// diagram of the resulting board.
type TextWriter struct {
	w       io.Writer
	diagram bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, diagram bool) *TextWriter {
	return &TextWriter{w: w, diagram: diagram}
}

// WriteResult writes a result as text.
func (tw *TextWriter) WriteResult(rep Report) error {
	prefix := ""
	if rep.Ply > 0 {
		prefix = fmt.Sprintf("%3d. ", rep.Ply)
	}

	var err error
	if m, ok := rep.Result.Move(); ok {
		_, err = fmt.Fprintf(tw.w, "%s%s (level %d): %s score %d nodes %d\n",
			prefix, rep.Colour, rep.Level, m, rep.Result.Score, rep.Result.Nodes)
	} else {
		_, err = fmt.Fprintf(tw.w, "%s%s (level %d): no moves\n", prefix, rep.Colour, rep.Level)
	}
	if err != nil || !tw.diagram {
		return err
	}
	return WriteDiagram(tw.w, rep.Result.Board)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w              io.Writer
	results        []*JSONResult
	single         bool // If true, write each result immediately instead of batching
	withCandidates bool
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, withCandidates bool) *JSONWriter {
	return &JSONWriter{
		w:              w,
		results:        make([]*JSONResult, 0),
		withCandidates: withCandidates,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, withCandidates bool) *JSONWriter {
	return &JSONWriter{
		w:              w,
		single:         true,
		withCandidates: withCandidates,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(rep Report) error {
	jr := ResultToJSON(rep, jw.withCandidates)
	if jw.single {
		return encodeJSON(jw.w, jr)
	}
	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	err := encodeJSON(jw.w, &JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
