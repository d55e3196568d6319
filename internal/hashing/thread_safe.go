package hashing

import (
	"sync"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// ThreadSafeRepetitionTracker wraps RepetitionTracker with mutex protection
// for concurrent access.
type ThreadSafeRepetitionTracker struct {
	tracker *RepetitionTracker
	mu      sync.RWMutex
}

// NewThreadSafeRepetitionTracker creates a new thread-safe tracker.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeRepetitionTracker(maxCapacity int) *ThreadSafeRepetitionTracker {
	return &ThreadSafeRepetitionTracker{
		tracker: NewRepetitionTracker(maxCapacity),
	}
}

// Record atomically records a position and returns its occurrence count.
func (t *ThreadSafeRepetitionTracker) Record(board chess.Board, toMove chess.Colour) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracker.Record(board, toMove)
}

// Count returns how many times the position has been recorded.
func (t *ThreadSafeRepetitionTracker) Count(board chess.Board, toMove chess.Colour) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.Count(board, toMove)
}

// Repetitions returns the number of repeated occurrences.
func (t *ThreadSafeRepetitionTracker) Repetitions() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.Repetitions()
}

// UniqueCount returns the number of distinct positions.
func (t *ThreadSafeRepetitionTracker) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.UniqueCount()
}

// IsFull returns true if the tracker has reached its capacity limit.
func (t *ThreadSafeRepetitionTracker) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.IsFull()
}

// Reset clears the tracker.
func (t *ThreadSafeRepetitionTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracker.Reset()
}
