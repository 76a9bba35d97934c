package main

import "testing"

func testState() *GameState {
	return &GameState{
		Grid: [][]string{
			{"a", "c", "t"},
			{"a", "r", "t"},
		},
	}
}

func TestNewSystematicStrategy_Candidates(t *testing.T) {
	s := NewSystematicStrategy(testState())

	// 2x3 grid: 4 horizontal pairs + 3 vertical pairs
	if len(s.candidates) != 7 {
		t.Errorf("Expected 7 candidate swaps, got %d", len(s.candidates))
	}

	first := s.candidates[0]
	if first.From != (Coord{0, 0}) || first.To != (Coord{0, 1}) {
		t.Errorf("Expected first candidate (0,0)->(0,1), got %v", first)
	}
}

func TestStrategy_AdvancesOnRejection(t *testing.T) {
	s := NewSystematicStrategy(testState())
	state := testState()

	a1 := s.NextAction(state)
	if a1.Kind != ActionSwap {
		t.Fatalf("Expected swap action, got %v", a1.Kind)
	}
	s.ObserveSwap(false)

	a2 := s.NextAction(state)
	if a2.Kind != ActionSwap {
		t.Fatalf("Expected swap action, got %v", a2.Kind)
	}
	if a2.Move == a1.Move {
		t.Error("Expected a different candidate after rejection")
	}
}

func TestStrategy_DescendsOnSuccess(t *testing.T) {
	s := NewSystematicStrategy(testState())
	state := testState()

	first := s.NextAction(state)
	s.ObserveSwap(true)

	// At the new depth the search restarts from the first candidate,
	// skipping only the reverse of the swap just made
	next := s.NextAction(state)
	if next.Kind != ActionSwap {
		t.Fatalf("Expected swap action, got %v", next.Kind)
	}
	if next.Move == first.Move {
		t.Error("Expected the reverse of the applied swap to be skipped")
	}
}

func TestStrategy_BacktracksWhenExhausted(t *testing.T) {
	s := NewSystematicStrategy(testState())
	state := testState()

	// Accept the first swap, then reject everything at depth 1
	s.NextAction(state)
	s.ObserveSwap(true)
	for {
		action := s.NextAction(state)
		if action.Kind == ActionUndo {
			break
		}
		if action.Kind != ActionSwap {
			t.Fatalf("Expected swap or undo, got %v", action.Kind)
		}
		s.ObserveSwap(false)
	}

	s.ObserveUndo()

	// After backtracking the parent must move past its applied candidate
	action := s.NextAction(state)
	if action.Kind != ActionSwap {
		t.Fatalf("Expected swap action after undo, got %v", action.Kind)
	}
	if action.Move == s.candidates[0] {
		t.Errorf("Expected a candidate after the first, got %v", action.Move)
	}
}

func TestStrategy_GivesUpAtRootExhaustion(t *testing.T) {
	s := NewSystematicStrategy(testState())
	state := testState()

	for {
		action := s.NextAction(state)
		if action.Kind == ActionGiveUp {
			return
		}
		if action.Kind != ActionSwap {
			t.Fatalf("Expected swap or give up, got %v", action.Kind)
		}
		s.ObserveSwap(false)
	}
}

func TestStrategy_SkipsAheadWhenStuck(t *testing.T) {
	s := NewSystematicStrategy(testState())
	state := testState()

	s.NextAction(state)
	s.ObserveSwap(true)

	stuck := testState()
	stuck.GameOver = true
	stuck.Completed = false

	action := s.NextAction(stuck)
	if action.Kind != ActionUndo {
		t.Errorf("Expected immediate undo from a stuck position, got %v", action.Kind)
	}
}

func TestStrategy_Reset(t *testing.T) {
	s := NewSystematicStrategy(testState())
	state := testState()

	s.NextAction(state)
	s.ObserveSwap(true)
	s.Reset()

	action := s.NextAction(state)
	if action.Kind != ActionSwap {
		t.Fatalf("Expected swap action after reset, got %v", action.Kind)
	}
	if action.Move != s.candidates[0] {
		t.Errorf("Expected search to restart at the first candidate, got %v", action.Move)
	}
}
