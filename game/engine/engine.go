package engine

import "fmt"

// Engine provides the main interface for puzzle progression
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	IsCompleted() bool
	CurrentDepth() int

	// Move operations
	PerformSwap(a, b Coord) *SwapResult
	UndoLastMove() *UndoResult
	GetPossibleMoves() []Move

	// Level access
	GetLevel() *Level

	// History
	GetHistory() []HistoryEntry
	GetLastMove() *HistoryEntry
}

// GameEngine implements the Engine interface. It owns one session's mutable
// state and consumes the level's exploration tree read-only.
type GameEngine struct {
	level *Level
	state *GameState
}

// NewEngine creates a new engine for the provided level. The level is
// validated once here; transitions afterwards assume structurally sound
// input per the level data contract.
func NewEngine(level *Level) (*GameEngine, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	e := &GameEngine{level: level}
	e.state = initialState(level)
	return e, nil
}

// initialState builds the depth-0 state: initial grid, tree roots as the
// candidate set, empty history.
func initialState(level *Level) *GameState {
	state := &GameState{
		Grid:          cloneGrid(level.InitialGrid),
		PossibleMoves: level.ExplorationTree,
		History:       []HistoryEntry{},
	}
	state.recomputeGameOver(level)
	return state
}

// GetState returns the current game state.
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState replaces the engine's state wholesale. Used by persistence
// loading; the caller is responsible for a state consistent with the level
// (RestoreProgress is the safe path for snapshots).
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// GetLevel returns the immutable level this engine plays.
func (e *GameEngine) GetLevel() *Level {
	return e.level
}

// IsGameOver reports whether the session is terminal.
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// IsCompleted reports whether the session reached the level's optimum depth.
func (e *GameEngine) IsCompleted() bool {
	return e.state.Completed
}

// CurrentDepth returns the number of moves played so far.
func (e *GameEngine) CurrentDepth() int {
	return e.state.CurrentDepth
}

// PerformSwap attempts to swap two cells. Both orders of the pair are
// equivalent. A declined swap increments the turn's failed-attempt counter
// and leaves everything else untouched.
func (e *GameEngine) PerformSwap(a, b Coord) *SwapResult {
	if e.state.GameOver {
		return &SwapResult{Success: false, Message: MsgGameOver}
	}

	if !a.IsAdjacent(b) {
		e.state.TurnFailedAttempts++
		return &SwapResult{Success: false, Message: MsgNotAdjacent}
	}

	attempted := Move{From: a, To: b}
	node := findNode(e.state.PossibleMoves, attempted)
	if node == nil {
		e.state.TurnFailedAttempts++
		return &SwapResult{Success: false, Message: MsgNoWordFormed}
	}

	// Snapshot the pre-move state so undo can restore it exactly.
	entry := HistoryEntry{
		Grid:                 cloneGrid(e.state.Grid),
		PossibleMoves:        e.state.PossibleMoves,
		DepthBeforeMove:      e.state.CurrentDepth,
		MoveMade:             *node.Move,
		WordsFormedByMove:    node.WordsFormed,
		FailedAttemptsBefore: e.state.TurnFailedAttempts,
		WasDeviatedBefore:    e.state.HasDeviated,
	}
	e.state.History = append(e.state.History, entry)

	swapCells(e.state.Grid, node.Move.From, node.Move.To)
	e.state.CurrentDepth++
	e.state.PossibleMoves = node.NextMoves

	// A move is suboptimal when the depth reached plus the best remaining
	// depth falls short of the level optimum. One suboptimal move marks the
	// whole path as deviated until undone past it.
	if e.state.CurrentDepth+node.MaxDepthReached < e.level.MaxDepthReached {
		e.state.HasDeviated = true
	}

	e.state.TurnFailedAttempts = 0
	e.state.recomputeGameOver(e.level)

	return &SwapResult{
		Success:     true,
		Message:     e.state.Message,
		WordsFormed: node.WordsFormed,
		Move:        node.Move,
	}
}

// UndoLastMove pops the most recent history entry and restores the exact
// pre-move state it captured. The returned move has its endpoints reversed.
func (e *GameEngine) UndoLastMove() *UndoResult {
	if len(e.state.History) == 0 {
		return &UndoResult{Success: false}
	}

	last := e.state.History[len(e.state.History)-1]
	e.state.History = e.state.History[:len(e.state.History)-1]

	e.state.Grid = last.Grid
	e.state.PossibleMoves = last.PossibleMoves
	e.state.CurrentDepth = last.DepthBeforeMove
	e.state.HasDeviated = last.WasDeviatedBefore
	e.state.TurnFailedAttempts = last.FailedAttemptsBefore
	e.state.recomputeGameOver(e.level)

	reversed := last.MoveMade.Reversed()
	return &UndoResult{Success: true, UndoneMove: &reversed}
}

// Reset discards all progress and returns to the initial grid at depth 0.
func (e *GameEngine) Reset() *GameState {
	e.state = initialState(e.level)
	return e.state
}

// GetPossibleMoves returns the moves playable from the current position.
func (e *GameEngine) GetPossibleMoves() []Move {
	moves := make([]Move, 0, len(e.state.PossibleMoves))
	for _, node := range e.state.PossibleMoves {
		if node.Move != nil {
			moves = append(moves, *node.Move)
		}
	}
	return moves
}

// GetHistory returns the moves played so far, oldest first.
func (e *GameEngine) GetHistory() []HistoryEntry {
	return e.state.History
}

// GetLastMove returns the most recent history entry, or nil before any move.
func (e *GameEngine) GetLastMove() *HistoryEntry {
	if len(e.state.History) == 0 {
		return nil
	}
	return &e.state.History[len(e.state.History)-1]
}

// RestoreProgress loads a persisted session into the engine. The grid,
// history, depth, deviation flag and failed-attempt counter are restored
// directly; the candidate sets are re-derived by replaying the history
// against the exploration tree. If a history entry fails to match a node,
// the snapshot is stale relative to this tree: the trail still loads so the
// player can see it, but the candidate set becomes empty rather than the
// whole load failing.
func (e *GameEngine) RestoreProgress(grid [][]string, history []HistoryEntry, depth, failedAttempts int, hasDeviated bool) {
	state := &GameState{
		Grid:               cloneGrid(grid),
		History:            history,
		CurrentDepth:       depth,
		TurnFailedAttempts: failedAttempts,
		HasDeviated:        hasDeviated,
	}

	candidates := e.level.ExplorationTree
	matched := true
	for i := range state.History {
		entry := &state.History[i]
		entry.PossibleMoves = candidates
		node := findNode(candidates, entry.MoveMade)
		if node == nil {
			matched = false
			break
		}
		candidates = node.NextMoves
	}

	if matched {
		state.PossibleMoves = candidates
	} else {
		state.PossibleMoves = nil
	}

	state.recomputeGameOver(e.level)
	e.state = state
}
