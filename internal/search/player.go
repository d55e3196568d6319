// Package search implements the computer player: a fixed-depth negamax
// search with alpha-beta pruning over the successor positions produced by
// the engine package, with a skill-dependent handicap on move choice.
package search

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/engine"
)

// Skill level bounds.
const (
	MinLevel = 1
	MaxLevel = 10
)

// CpuPlayer chooses moves for one colour at a fixed skill level.
// Its settings do not change after construction; NextMove may be called
// from several goroutines.
type CpuPlayer struct {
	colour   chess.Colour
	level    int
	eval     Evaluator
	gen      *engine.Generator
	workers  int
	maxDepth int
	log      io.Writer
	verbose  int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures a CpuPlayer.
type Option func(*CpuPlayer)

// WithEvaluator replaces the material evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(p *CpuPlayer) {
		if e != nil {
			p.eval = e
		}
	}
}

// WithGenerator replaces the default move generator.
func WithGenerator(g *engine.Generator) Option {
	return func(p *CpuPlayer) {
		if g != nil {
			p.gen = g
		}
	}
}

// WithRand sets the random source used for skewed choices.
func WithRand(rng *rand.Rand) Option {
	return func(p *CpuPlayer) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// WithSeed seeds the random source used for skewed choices.
func WithSeed(seed int64) Option {
	return func(p *CpuPlayer) {
		p.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // G404: move choice, not security
	}
}

// WithWorkers scores root candidates on n goroutines.
func WithWorkers(n int) Option {
	return func(p *CpuPlayer) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithMaxDepth caps the search depth derived from the level. 0 removes the cap.
func WithMaxDepth(depth int) Option {
	return func(p *CpuPlayer) {
		if depth >= 0 {
			p.maxDepth = depth
		}
	}
}

// WithLogger writes a summary of each search to w at verbosity 1 and
// above, and every root candidate at 2 and above.
func WithLogger(w io.Writer, verbosity int) Option {
	return func(p *CpuPlayer) {
		p.log = w
		p.verbose = verbosity
	}
}

// NewCpuPlayer creates a player for colour. level is clamped to
// [MinLevel, MaxLevel].
func NewCpuPlayer(colour chess.Colour, level int, opts ...Option) *CpuPlayer {
	p := &CpuPlayer{
		colour:  colour,
		level:   max(min(level, MaxLevel), MinLevel),
		eval:    NewMaterial(DefaultValues),
		gen:     engine.NewGenerator(engine.Options{}),
		workers: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // G404: move choice, not security
	}
	return p
}

// Colour returns the side the player moves.
func (p *CpuPlayer) Colour() chess.Colour {
	return p.colour
}

// Level returns the clamped skill level.
func (p *CpuPlayer) Level() int {
	return p.level
}

// Depth returns the search horizon in plies: level + max(level/2, 1).
func (p *CpuPlayer) Depth() int {
	return p.level + max(p.level/2, 1)
}

// Skew returns how many places below the best candidate the player may
// choose: max(5 - level, 0).
func (p *CpuPlayer) Skew() int {
	return max(5-p.level, 0)
}

// searchDepth is Depth limited by the configured cap.
func (p *CpuPlayer) searchDepth() int {
	d := p.Depth()
	if p.maxDepth > 0 && p.maxDepth < d {
		return p.maxDepth
	}
	return d
}

// NextMove returns the successor of board the player chooses. When the
// player has no moves the board is returned unchanged.
func (p *CpuPlayer) NextMove(board chess.Board) chess.Board {
	return p.Analyse(board).Board
}

// pick draws a candidate rank in [0, min(skew, n-1)].
func (p *CpuPlayer) pick(n int) int {
	limit := min(p.Skew(), n-1)
	if limit <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(limit + 1)
}
