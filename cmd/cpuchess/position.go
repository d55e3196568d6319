package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// positionFlags select the starting position and the side to move.
type positionFlags struct {
	fen      string
	standard bool
	colour   string
}

func (p *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.fen, "fen", "", "Start from this FEN position instead of the default")
	cmd.Flags().BoolVar(&p.standard, "standard", false, "Start from the full standard position (h-file pawns included)")
	cmd.Flags().StringVarP(&p.colour, "colour", "c", "", "Side to move: white or black (default: FEN side, then config)")
}

// resolve returns the starting board and side to move. An explicit
// --colour wins over the FEN side-to-move field, which wins over the
// configured engine colour.
func (p *positionFlags) resolve(a *app) (chess.Board, chess.Colour, error) {
	colour, err := a.cfg.Engine.SideColour()
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	var board chess.Board
	switch {
	case p.fen != "":
		var fenColour chess.Colour
		board, fenColour, err = engine.NewBoardFromFEN(p.fen)
		if err != nil {
			return chess.Board{}, chess.White, err
		}
		colour = fenColour
	case p.standard:
		board = chess.StandardPosition()
	default:
		board = chess.DefaultPosition()
	}

	if p.colour != "" {
		c, ok := chess.ParseColour(p.colour)
		if !ok {
			return chess.Board{}, chess.White, errors.Wrapf(errors.ErrInvalidColour, "%q", p.colour)
		}
		colour = c
	}
	return board, colour, nil
}
