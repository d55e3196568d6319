// Package hashing provides position hashing and repetition tracking.
package hashing

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

const numKinds = int(chess.OffBoard)

var (
	pieceKeys [chess.BoardSize * chess.BoardSize][numKinds]uint64
	blackKey  uint64
)

func init() {
	// Fixed seed so hashes are stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for sq := range pieceKeys {
		for k := 1; k < numKinds; k++ {
			pieceKeys[sq][k] = next()
		}
	}
	blackKey = next()
}

// ZobristHash returns the Zobrist hash of board with toMove to play.
func ZobristHash(board chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if piece := board.Get(file, rank); piece.IsPiece() {
				hash ^= pieceKeys[rank*chess.BoardSize+file][piece]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// WeakHash returns a cheap secondary hash used to confirm Zobrist matches.
func WeakHash(board chess.Board) uint32 {
	var hash uint32
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if piece := board.Get(file, rank); piece.IsPiece() {
				hash += uint32(piece) * uint32(rank*chess.BoardSize+file+1)
			}
		}
	}
	return hash
}

// Signature identifies a position with its side to move.
type Signature struct {
	Hash   uint64
	Weak   uint32
	ToMove chess.Colour
}

// Sign returns the signature of board with toMove to play.
func Sign(board chess.Board, toMove chess.Colour) Signature {
	return Signature{Hash: ZobristHash(board, toMove), Weak: WeakHash(board), ToMove: toMove}
}

type entry struct {
	sig   Signature
	count int
}

// RepetitionTracker counts how often each position has occurred.
type RepetitionTracker struct {
	// hashTable stores seen positions by Zobrist hash
	hashTable   map[uint64][]entry
	repetitions int
	maxCapacity int // 0 means unlimited
	uniqueCount int
}

// NewRepetitionTracker creates a tracker. maxCapacity of 0 means unlimited;
// once full, new positions are no longer stored but known ones still count.
func NewRepetitionTracker(maxCapacity int) *RepetitionTracker {
	return &RepetitionTracker{
		hashTable:   make(map[uint64][]entry),
		maxCapacity: maxCapacity,
	}
}

// Record notes an occurrence of board with toMove to play and returns how
// many times the position has now been seen, this occurrence included.
func (t *RepetitionTracker) Record(board chess.Board, toMove chess.Colour) int {
	sig := Sign(board, toMove)

	entries := t.hashTable[sig.Hash]
	for i := range entries {
		if entries[i].sig == sig {
			entries[i].count++
			t.repetitions++
			return entries[i].count
		}
	}

	if t.IsFull() {
		return 1
	}
	t.hashTable[sig.Hash] = append(entries, entry{sig: sig, count: 1})
	t.uniqueCount++
	return 1
}

// Count returns how many times the position has been recorded.
func (t *RepetitionTracker) Count(board chess.Board, toMove chess.Colour) int {
	sig := Sign(board, toMove)
	for _, e := range t.hashTable[sig.Hash] {
		if e.sig == sig {
			return e.count
		}
	}
	return 0
}

// Repetitions returns the number of recorded occurrences that repeated an
// earlier position.
func (t *RepetitionTracker) Repetitions() int {
	return t.repetitions
}

// UniqueCount returns the number of distinct positions stored.
func (t *RepetitionTracker) UniqueCount() int {
	return t.uniqueCount
}

// IsFull returns true if the tracker has reached its capacity limit.
func (t *RepetitionTracker) IsFull() bool {
	return t.maxCapacity > 0 && t.uniqueCount >= t.maxCapacity
}

// Reset clears the tracker.
func (t *RepetitionTracker) Reset() {
	t.hashTable = make(map[uint64][]entry)
	t.repetitions = 0
	t.uniqueCount = 0
}
