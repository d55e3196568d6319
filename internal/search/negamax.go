package search

import (
	"fmt"
	"sort"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/worker"
)

// inf bounds every reachable score and survives negation.
const inf = 1 << 30

// Candidate is one root move and its score for the moving side.
type Candidate struct {
	Move  chess.Move
	Board chess.Board
	Score int
}

// Result describes a completed search.
type Result struct {
	Board      chess.Board // Chosen successor, or the input board when Passed
	Score      int         // Score of the chosen candidate
	Candidates []Candidate // Root moves, best first
	Chosen     int         // Rank of the chosen candidate in Candidates
	Depth      int
	Nodes      int64
	Passed     bool // No candidate move existed
}

// Move returns the chosen move, or false when the player passed.
func (r Result) Move() (chess.Move, bool) {
	if r.Passed || r.Chosen >= len(r.Candidates) {
		return chess.Move{}, false
	}
	return r.Candidates[r.Chosen].Move, true
}

// Analyse searches board and reports every root candidate with its score
// along with the one the player picks.
func (p *CpuPlayer) Analyse(board chess.Board) Result {
	depth := p.searchDepth()
	moves := p.gen.Moves(board, p.colour)
	if len(moves) == 0 {
		p.logf(1, "search: %s has no moves, passing\n", p.colour)
		return Result{
			Board:  board,
			Score:  p.eval.Evaluate(board, p.colour),
			Depth:  depth,
			Passed: true,
		}
	}

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: m.Apply(board), ToMove: p.colour.Opposite(), Index: i}
	}
	results := p.scoreAll(moves, items, depth)

	candidates := make([]Candidate, len(moves))
	var nodes int64
	for i, r := range results {
		candidates[i] = Candidate{Move: moves[i], Board: items[i].Board, Score: r.Score}
		nodes += r.Nodes
	}
	// Equal scores keep generation order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	chosen := p.pick(len(candidates))
	res := Result{
		Board:      candidates[chosen].Board,
		Score:      candidates[chosen].Score,
		Candidates: candidates,
		Chosen:     chosen,
		Depth:      depth,
		Nodes:      nodes + 1,
	}
	for i, c := range candidates {
		p.logf(2, "  #%-2d %-8s %d\n", i, c.Move, c.Score)
	}
	p.logf(1, "search: %s level=%d depth=%d skew=%d candidates=%d chosen=%d (%s, score %d) nodes=%d\n",
		p.colour, p.level, depth, p.Skew(), len(candidates), chosen,
		candidates[chosen].Move, res.Score, res.Nodes)
	return res
}

// scoreAll searches each root successor with a full window so every
// candidate gets an exact score. items[i] is the board after moves[i].
func (p *CpuPlayer) scoreAll(moves []chess.Move, items []worker.WorkItem, depth int) []worker.ProcessResult {
	process := func(item worker.WorkItem) worker.ProcessResult {
		s := &searcher{eval: p.eval, gen: p.gen}
		score := s.child(moves[item.Index], item.Board, p.colour, depth-1, -inf, inf)
		return worker.ProcessResult{Index: item.Index, Board: item.Board, Score: score, Nodes: s.nodes}
	}

	if p.workers <= 1 || len(items) == 1 {
		results := make([]worker.ProcessResult, len(items))
		for i, item := range items {
			results[i] = process(item)
		}
		return results
	}

	pool := worker.NewPool(process,
		worker.WithWorkers(min(p.workers, len(items))),
		worker.WithBufferSize(len(items)))
	return pool.RunAll(items)
}

func (p *CpuPlayer) logf(level int, format string, args ...interface{}) {
	if p.log != nil && p.verbose >= level {
		fmt.Fprintf(p.log, format, args...)
	}
}

// searcher holds the state of one sequential subtree search.
type searcher struct {
	eval  Evaluator
	gen   moveSource
	nodes int64
}

type moveSource interface {
	Moves(board chess.Board, colour chess.Colour) []chess.Move
}

// negamax returns the score of board for toMove looking depth plies ahead.
// A side with no moves is scored statically.
func (s *searcher) negamax(board chess.Board, toMove chess.Colour, depth, alpha, beta int) int {
	s.nodes++
	if depth <= 0 {
		return s.eval.Evaluate(board, toMove)
	}

	moves := s.gen.Moves(board, toMove)
	if len(moves) == 0 {
		return s.eval.Evaluate(board, toMove)
	}
	orderMoves(moves)

	best := -inf
	for _, m := range moves {
		score := s.child(m, m.Apply(board), toMove, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// child scores next, the board after mover played m, for mover. Taking a
// king ends the line: the game stops there, so there is no reply.
func (s *searcher) child(m chess.Move, next chess.Board, mover chess.Colour, depth, alpha, beta int) int {
	if m.Captured.Kind() == chess.King {
		s.nodes++
		return s.eval.Evaluate(next, mover)
	}
	return -s.negamax(next, mover.Opposite(), depth, -beta, -alpha)
}

// victimOrder ranks captures so that the most valuable victims are tried
// first. Quiet moves rank 0.
var victimOrder = [chess.King + 1]int{
	chess.Pawn:   1,
	chess.Knight: 2,
	chess.Bishop: 3,
	chess.Rook:   4,
	chess.Queen:  5,
	chess.King:   6,
}

// orderMoves puts captures first, most valuable victim first. Moves of
// equal rank keep generation order.
func orderMoves(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return victimOrder[moves[i].Captured.Kind()] > victimOrder[moves[j].Captured.Kind()]
	})
}
