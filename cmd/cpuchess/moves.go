package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/matching"
	"github.com/lgbarn/cpuchess-go/internal/output"
)

func newMovesCmd(a *app) *cobra.Command {
	var (
		pos       positionFlags
		whiteOnly bool
		pieces    string
		diagram   bool
		fen       bool
		material  string
		exact     bool
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List every successor position of a position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("white-only") {
				a.cfg.Engine.WhiteOnly = whiteOnly
			}
			if cmd.Flags().Changed("pieces") {
				a.cfg.Engine.Pieces = pieces
			}

			board, colour, err := pos.resolve(a)
			if err != nil {
				return a.fail(err)
			}
			gen, err := a.generator()
			if err != nil {
				return a.fail(err)
			}

			mm, err := matching.NewMaterialMatcher(material, exact)
			if err != nil {
				return a.fail(err)
			}

			moves := gen.Moves(board, colour)
			w := a.cfg.OutputFile
			shown := 0
			for _, m := range moves {
				next := m.Apply(board)
				if mm.HasCriteria() && !mm.MatchBoard(next) {
					continue
				}
				shown++
				switch {
				case fen:
					fmt.Fprintf(w, "%s\t%s\n", m, engine.BoardToFEN(next, colour.Opposite()))
				default:
					fmt.Fprintln(w, m)
				}
				if diagram {
					if err := output.WriteDiagram(w, next); err != nil {
						return a.fail(err)
					}
				}
			}
			if shown != len(moves) {
				a.cfg.Logf(1, "%d of %d moves for %s match material %q", shown, len(moves), colour, material)
			} else {
				a.cfg.Logf(1, "%d moves for %s", len(moves), colour)
			}
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().BoolVar(&whiteOnly, "white-only", false, "Generate no moves for Black")
	cmd.Flags().StringVar(&pieces, "pieces", "", "Only move these piece types, e.g. pnr")
	cmd.Flags().BoolVar(&diagram, "diagram", false, "Print a diagram of each successor")
	cmd.Flags().BoolVar(&fen, "fen-out", false, "Print the FEN of each successor after the move")
	cmd.Flags().StringVar(&material, "material", "", "Only list successors with at least this material, e.g. QR:qrr")
	cmd.Flags().BoolVar(&exact, "exact-material", false, "Require the material to match exactly")
	return cmd
}
