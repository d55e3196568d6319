package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/cpuchess-go/internal/output"
)

// levelUsage warns that high levels search deep full-width trees.
const levelUsage = " (searches level+max(level/2,1) plies; above 6 use --max-depth to bound the time)"

func newBestCmd(a *app) *cobra.Command {
	var (
		pos        positionFlags
		level      int
		jsonOut    bool
		candidates bool
		diagram    bool
	)

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Search a position and print the move the engine chooses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("level") {
				a.cfg.Engine.Level = level
			}

			board, colour, err := pos.resolve(a)
			if err != nil {
				return a.fail(err)
			}
			player, err := a.newPlayer(colour, a.cfg.Engine.Level, 0)
			if err != nil {
				return a.fail(err)
			}

			var writer output.ResultWriter
			if jsonOut {
				writer = output.NewJSONWriterSingle(a.cfg.OutputFile, candidates)
			} else {
				writer = output.NewTextWriter(a.cfg.OutputFile, diagram)
			}

			rep := output.Report{Colour: colour, Level: player.Level(), Result: player.Analyse(board)}
			if err := writer.WriteResult(rep); err != nil {
				return a.fail(err)
			}
			return writer.Close()
		},
	}

	pos.register(cmd)
	cmd.Flags().IntVar(&level, "level", 3, "Skill level 1-10"+levelUsage)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&candidates, "candidates", false, "Include every ranked root move in JSON output")
	cmd.Flags().BoolVar(&diagram, "diagram", false, "Print a diagram of the chosen position")
	return cmd
}
