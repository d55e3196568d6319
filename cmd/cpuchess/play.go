package main

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
	"github.com/lgbarn/cpuchess-go/internal/hashing"
	"github.com/lgbarn/cpuchess-go/internal/output"
	"github.com/lgbarn/cpuchess-go/internal/processing"
	"github.com/lgbarn/cpuchess-go/internal/search"
)

// playedGame is one finished self-play game and its buffered output.
type playedGame struct {
	game    *processing.Game
	outcome processing.Outcome
	out     bytes.Buffer
	err     error
}

func newPlayCmd(a *app) *cobra.Command {
	var (
		pos        positionFlags
		whiteLevel int
		blackLevel int
		plies      int
		games      int
		jsonOut    bool
		diagram    bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the engine against itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if plies < 1 {
				return a.fail(fmt.Errorf("--plies must be at least 1, got %d", plies))
			}
			if games < 1 {
				return a.fail(fmt.Errorf("--games must be at least 1, got %d", games))
			}
			board, toMove, err := pos.resolve(a)
			if err != nil {
				return a.fail(err)
			}
			if !cmd.Flags().Changed("white-level") {
				whiteLevel = a.cfg.Engine.Level
			}
			if !cmd.Flags().Changed("black-level") {
				blackLevel = a.cfg.Engine.Level
			}
			if games > 1 && a.cfg.LogFile != nil {
				a.cfg.LogFile = &lockedWriter{w: a.cfg.LogFile}
			}

			seen := hashing.NewThreadSafeRepetitionTracker(0)
			played := make([]*playedGame, games)
			for n := range played {
				var players [2]*search.CpuPlayer
				for i, level := range []int{whiteLevel, blackLevel} {
					colour := chess.Colour(i)
					if players[colour], err = a.newPlayer(colour, level, int64(2*n+i)); err != nil {
						return a.fail(err)
					}
				}
				g := processing.NewGame(uuid.New().String(), players[chess.White], players[chess.Black], board, toMove, plies)
				g.RecordPositionsTo(seen)
				played[n] = &playedGame{game: g}
			}

			var wg sync.WaitGroup
			for _, pg := range played {
				wg.Add(1)
				go func(pg *playedGame) {
					defer wg.Done()
					pg.outcome, pg.err = playGame(a, pg.game, &pg.out, jsonOut, diagram)
				}(pg)
			}
			wg.Wait()

			for _, pg := range played {
				if pg.err != nil {
					return a.fail(pg.err)
				}
				if _, err := pg.out.WriteTo(a.cfg.OutputFile); err != nil {
					return a.fail(err)
				}
			}
			if games > 1 {
				a.cfg.Logf(1, "%d games reached %d distinct positions, %d repeated",
					games, seen.UniqueCount(), seen.Repetitions())
			}
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().IntVar(&whiteLevel, "white-level", 3, "Skill level 1-10 for White, default config level"+levelUsage)
	cmd.Flags().IntVar(&blackLevel, "black-level", 3, "Skill level 1-10 for Black, default config level"+levelUsage)
	cmd.Flags().IntVar(&plies, "plies", 100, "Maximum number of half-moves")
	cmd.Flags().IntVar(&games, "games", 1, "Number of games to play concurrently")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format, one document per game")
	cmd.Flags().BoolVar(&diagram, "diagram", false, "Print a diagram after every move")
	return cmd
}

// playGame runs g to completion, writing its moves and result to w.
func playGame(a *app, g *processing.Game, w io.Writer, jsonOut, diagram bool) (processing.Outcome, error) {
	var writer output.ResultWriter
	if jsonOut {
		writer = output.NewJSONWriter(w, false)
	} else {
		writer = output.NewTextWriter(w, diagram)
	}

	white, black := g.Player(chess.White), g.Player(chess.Black)
	a.cfg.Logf(1, "game %s: White level %d, Black level %d, %s to move",
		g.ID, white.Level(), black.Level(), g.StartToMove)

	outcome, err := g.Run(writer)
	if err != nil {
		return outcome, errors.Wrap(err, "game "+g.ID)
	}
	if err := writer.Close(); err != nil {
		return outcome, err
	}

	a.cfg.Logf(1, "game %s: %s after %d plies", g.ID, outcome, g.Plies())
	if a.cfg.Verbosity >= 2 {
		analysis := processing.AnalyzeGame(g.Start, g.StartToMove, g.Moves)
		a.cfg.Logf(2, "game %s: captures White %d Black %d, most repeated position seen %d times",
			g.ID, analysis.Captures[chess.White], analysis.Captures[chess.Black], analysis.MaxOccurrences)
		gen, err := a.generator()
		if err != nil {
			return outcome, err
		}
		if v := processing.ValidateGame(g.Start, g.StartToMove, g.Moves, gen); !v.Valid {
			return outcome, fmt.Errorf("game %s: %s", g.ID, v.ErrorMsg)
		}
	}
	if !jsonOut {
		fmt.Fprintf(w, "result: %s after %d plies\n", outcome, g.Plies())
	}
	return outcome, nil
}

// lockedWriter serialises writes from games running concurrently.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
