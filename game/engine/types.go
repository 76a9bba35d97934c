package engine

import (
	"encoding/json"
	"fmt"
)

const (
	// Validation constants
	MinGridSize = 2
	MaxGridSize = 12

	// Result messages returned on declined swaps
	MsgNotAdjacent  = "must swap adjacent cells"
	MsgNoWordFormed = "invalid move, no new word found"
	MsgGameOver     = "game is already over"
	MsgCompleted    = "puzzle completed"
	MsgStuck        = "no further moves available"
)

// Coord identifies a grid cell by row and column.
//
// Level files encode coordinates as two-element [row, col] arrays, so Coord
// marshals to and from that form rather than an object.
type Coord struct {
	Row int
	Col int
}

// MarshalJSON encodes the coordinate as [row, col].
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] array.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var arr [2]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("coord must be a [row, col] array: %w", err)
	}
	c.Row, c.Col = arr[0], arr[1]
	return nil
}

// String returns a compact "(row,col)" form for logs and messages.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// IsAdjacent reports whether the other cell is orthogonally adjacent.
func (c Coord) IsAdjacent(other Coord) bool {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Move is an unordered pair of adjacent cells to swap. {A,B} and {B,A}
// denote the same move.
type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// Equals reports whether both moves swap the same pair of cells,
// regardless of which cell is listed first.
func (m Move) Equals(other Move) bool {
	if m.From == other.From && m.To == other.To {
		return true
	}
	return m.From == other.To && m.To == other.From
}

// Reversed returns the move with its endpoints flipped. Callers driving
// reverse animations after an undo consume this form.
func (m Move) Reversed() Move {
	return Move{From: m.To, To: m.From}
}

// String returns "(r,c)<->(r,c)" for logs and messages.
func (m Move) String() string {
	return fmt.Sprintf("%s<->%s", m.From, m.To)
}

// ExplorationNode is one move in the precomputed exploration tree: the words
// that move forms, the best remaining depth when continuing optimally, and
// the moves playable afterwards.
//
// Move is nil only on a display-only root placeholder; every node reachable
// through Level.ExplorationTree or NextMoves carries a concrete move.
type ExplorationNode struct {
	Move            *Move              `json:"move,omitempty"`
	WordsFormed     []string           `json:"wordsFormed"`
	MaxDepthReached int                `json:"maxDepthReached"`
	NextMoves       []*ExplorationNode `json:"nextMoves,omitempty"`
}

// Level is the immutable definition of one puzzle: the starting grid and the
// exploration tree enumerating every valid move sequence from it. Produced
// by an external generator and consumed read-only here.
type Level struct {
	Name            string             `json:"name,omitempty"`
	Difficulty      string             `json:"difficulty,omitempty"`
	InitialGrid     [][]string         `json:"initialGrid"`
	MinWordLength   int                `json:"minWordLength"`
	WordLength      int                `json:"wordLength"`
	MaxDepthReached int                `json:"maxDepthReached"`
	ExplorationTree []*ExplorationNode `json:"explorationTree"`
}

// Rows returns the grid height.
func (l *Level) Rows() int { return len(l.InitialGrid) }

// Cols returns the grid width (0 for an empty grid).
func (l *Level) Cols() int {
	if len(l.InitialGrid) == 0 {
		return 0
	}
	return len(l.InitialGrid[0])
}

// HistoryEntry snapshots the session immediately before a move was applied.
// It carries everything needed both to render the player's trail and to
// restore the exact pre-move state on undo.
//
// PossibleMoves is the candidate set the move was chosen from. It is a view
// into the exploration tree and is deliberately not serialized; restoring a
// persisted session re-derives it by replaying the history against the tree.
type HistoryEntry struct {
	Grid                 [][]string         `json:"grid"`
	PossibleMoves        []*ExplorationNode `json:"-"`
	DepthBeforeMove      int                `json:"depthBeforeMove"`
	MoveMade             Move               `json:"moveMade"`
	WordsFormedByMove    []string           `json:"wordsFormedByMove"`
	FailedAttemptsBefore int                `json:"failedAttemptsBeforeMove"`
	WasDeviatedBefore    bool               `json:"wasDeviatedBeforeMove"`
}

// GameState is the mutable state of one play session. It is owned by exactly
// one engine and never shared across levels.
//
// GameOver and Completed are derived from the primary fields; every
// transition recomputes them via recomputeGameOver so they cannot drift.
type GameState struct {
	Grid               [][]string         `json:"grid"`
	PossibleMoves      []*ExplorationNode `json:"-"`
	CurrentDepth       int                `json:"current_depth"`
	History            []HistoryEntry     `json:"history"`
	HasDeviated        bool               `json:"has_deviated"`
	TurnFailedAttempts int                `json:"turn_failed_attempts"`
	GameOver           bool               `json:"game_over"`
	Completed          bool               `json:"completed"`
	Message            string             `json:"message,omitempty"`
}

// SwapResult reports the outcome of a single swap attempt. Declined swaps
// are ordinary results, not errors.
type SwapResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message,omitempty"`
	WordsFormed []string `json:"words_formed,omitempty"`
	Move        *Move    `json:"move,omitempty"`
}

// UndoResult reports the outcome of an undo attempt. UndoneMove has its
// endpoints reversed relative to the original move.
type UndoResult struct {
	Success    bool  `json:"success"`
	UndoneMove *Move `json:"undone_move,omitempty"`
}
