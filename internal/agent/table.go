package agent

import "github.com/hailam/qchess/internal/board"

// Entry is one (move, value) pair of a state.
type Entry struct {
	Move  board.Move
	Value float64
}

// actionValues keeps a state's actions in first-recorded order so that
// the first maximal entry is well defined.
type actionValues struct {
	index   map[board.Move]int
	entries []Entry
}

// ValueTable maps a board configuration to per-move value estimates.
// Entries are created on first update; anything absent reads as 0.
// It is not safe for concurrent use.
type ValueTable struct {
	states map[board.StateKey]*actionValues
}

// NewValueTable creates an empty table.
func NewValueTable() *ValueTable {
	return &ValueTable{states: make(map[board.StateKey]*actionValues)}
}

// Has returns true if anything has been recorded for the state.
func (t *ValueTable) Has(state board.StateKey) bool {
	_, ok := t.states[state]
	return ok
}

// Get returns the estimate for the move in the state, 0 if absent.
func (t *ValueTable) Get(state board.StateKey, m board.Move) float64 {
	av, ok := t.states[state]
	if !ok {
		return 0
	}
	i, ok := av.index[m]
	if !ok {
		return 0
	}
	return av.entries[i].Value
}

// Set stores the estimate, creating the state and action on first use.
func (t *ValueTable) Set(state board.StateKey, m board.Move, v float64) {
	av, ok := t.states[state]
	if !ok {
		av = &actionValues{index: make(map[board.Move]int)}
		t.states[state] = av
	}
	if i, ok := av.index[m]; ok {
		av.entries[i].Value = v
		return
	}
	av.index[m] = len(av.entries)
	av.entries = append(av.entries, Entry{Move: m, Value: v})
}

// Best returns the highest-valued move recorded for the state.
// Ties go to the move recorded first. ok is false for an unseen state.
func (t *ValueTable) Best(state board.StateKey) (m board.Move, ok bool) {
	av, found := t.states[state]
	if !found || len(av.entries) == 0 {
		return board.Move{}, false
	}
	best := av.entries[0]
	for _, e := range av.entries[1:] {
		if e.Value > best.Value {
			best = e
		}
	}
	return best.Move, true
}

// MaxValue returns the largest estimate recorded for the state,
// or 0 when nothing is recorded.
func (t *ValueTable) MaxValue(state board.StateKey) float64 {
	av, ok := t.states[state]
	if !ok || len(av.entries) == 0 {
		return 0
	}
	maxV := av.entries[0].Value
	for _, e := range av.entries[1:] {
		maxV = max(maxV, e.Value)
	}
	return maxV
}

// Entries returns a copy of the state's entries in recorded order.
func (t *ValueTable) Entries(state board.StateKey) []Entry {
	av, ok := t.states[state]
	if !ok {
		return nil
	}
	return append([]Entry(nil), av.entries...)
}

// States returns the number of states with at least one entry.
func (t *ValueTable) States() int {
	return len(t.states)
}

// Size returns the total number of (state, move) entries.
func (t *ValueTable) Size() int {
	n := 0
	for _, av := range t.states {
		n += len(av.entries)
	}
	return n
}
