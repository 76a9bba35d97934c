package main

import "log"

// ActionKind tells the driver what to do next.
type ActionKind int

const (
	ActionSwap ActionKind = iota
	ActionUndo
	ActionGiveUp
)

type Action struct {
	Kind ActionKind
	Move Move
}

// SystematicStrategy runs a depth-first search over the swap tree using the
// server as the oracle. At each depth it tries every adjacent pair in a fixed
// order; accepted swaps descend a level, and when all candidates at a depth
// are exhausted it backtracks with an undo. The server rejects swaps that
// form no word, so the strategy needs no knowledge of the word list.
type SystematicStrategy struct {
	rows, cols int
	candidates []Move

	// cursor[d] is the index of the next candidate to try at depth d.
	// applied[d] is the candidate index that succeeded at depth d, so the
	// reverse of the parent's swap can be skipped cheaply.
	cursor  []int
	applied []int
}

func NewSystematicStrategy(state *GameState) *SystematicStrategy {
	s := &SystematicStrategy{
		rows: len(state.Grid),
	}
	if s.rows > 0 {
		s.cols = len(state.Grid[0])
	}

	// Enumerate every orthogonally adjacent pair once, row-major
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if c+1 < s.cols {
				s.candidates = append(s.candidates, Move{From: Coord{r, c}, To: Coord{r, c + 1}})
			}
			if r+1 < s.rows {
				s.candidates = append(s.candidates, Move{From: Coord{r, c}, To: Coord{r + 1, c}})
			}
		}
	}

	log.Printf("📊 Systematic strategy: %dx%d grid, %d candidate swaps per depth",
		s.rows, s.cols, len(s.candidates))

	s.Reset()
	return s
}

// Reset clears the search state for a fresh attempt from depth zero.
func (s *SystematicStrategy) Reset() {
	s.cursor = []int{0}
	s.applied = nil
}

// NextAction returns the next request to issue. The caller must report the
// outcome via ObserveSwap or ObserveUndo before asking again.
func (s *SystematicStrategy) NextAction(state *GameState) Action {
	depth := len(s.applied)

	// A stuck position rejects every swap; skip straight to backtracking
	if state.GameOver && !state.Completed {
		s.cursor[depth] = len(s.candidates)
	}

	for s.cursor[depth] < len(s.candidates) {
		idx := s.cursor[depth]
		// The reverse of the swap that got us here can never be accepted
		if depth > 0 && idx == s.applied[depth-1] {
			s.cursor[depth]++
			continue
		}
		return Action{Kind: ActionSwap, Move: s.candidates[idx]}
	}

	if depth == 0 {
		return Action{Kind: ActionGiveUp}
	}
	return Action{Kind: ActionUndo}
}

// ObserveSwap records the server's verdict on the swap just issued.
func (s *SystematicStrategy) ObserveSwap(success bool) {
	depth := len(s.applied)
	if success {
		s.applied = append(s.applied, s.cursor[depth])
		s.cursor = append(s.cursor, 0)
	} else {
		s.cursor[depth]++
	}
}

// ObserveUndo records a completed backtrack: the parent resumes after the
// candidate it had applied.
func (s *SystematicStrategy) ObserveUndo() {
	depth := len(s.applied)
	s.cursor = s.cursor[:depth]
	idx := s.applied[depth-1]
	s.applied = s.applied[:depth-1]
	s.cursor[depth-1] = idx + 1
}
