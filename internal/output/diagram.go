// Package output renders boards and search results as text diagrams and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Diagram returns board as a labelled grid, rank index 0 at the top.
func Diagram(board chess.Board) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(board.Get(file, rank).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// WriteDiagram writes Diagram(board) to w.
func WriteDiagram(w io.Writer, board chess.Board) error {
	_, err := io.WriteString(w, Diagram(board))
	return err
}
