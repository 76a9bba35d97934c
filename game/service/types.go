package service

import (
	"time"

	"github.com/sudorandom/wordchain/game/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string            `json:"id"`
	LevelID        string            `json:"level_id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Level          *LevelInfo        `json:"level"`
}

// SwapResult contains the result of a swap operation
type SwapResult struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	WordsFormed   []string          `json:"words_formed,omitempty"`
	Move          *engine.Move      `json:"move,omitempty"`
	GameState     *engine.GameState `json:"game_state"`
	Completed     bool              `json:"completed"`
	GameOver      bool              `json:"game_over"`
	DailyRecorded bool              `json:"daily_recorded,omitempty"`
}

// UndoResult contains the result of an undo operation
type UndoResult struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	UndoneMove *engine.Move      `json:"undone_move,omitempty"`
	GameState  *engine.GameState `json:"game_state"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.HistoryEntry `json:"moves"`
	TotalMoves  int                   `json:"total_moves"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	TotalPages  int                   `json:"total_pages"`
	HasNext     bool                  `json:"has_next"`
	HasPrevious bool                  `json:"has_previous"`
}

// LevelInfo provides information about an available level
type LevelInfo struct {
	Filename        string `json:"filename"`
	LevelID         string `json:"level_id"` // The identifier to use for session creation
	Name            string `json:"name"`     // Display name
	Difficulty      string `json:"difficulty"`
	Rows            int    `json:"rows"`
	Cols            int    `json:"cols"`
	WordLength      int    `json:"word_length"`
	MaxDepthReached int    `json:"max_depth_reached"`
}

// LevelAnalysis summarizes the solution space of a level
type LevelAnalysis struct {
	LevelID           string            `json:"level_id"`
	Name              string            `json:"name"`
	Difficulty        string            `json:"difficulty"`
	MaxDepthReached   int               `json:"max_depth_reached"`
	TreeNodeCount     int               `json:"tree_node_count"`
	OptimalPathCount  int               `json:"optimal_path_count"`
	OptimalPaths      []engine.MovePath `json:"optimal_paths,omitempty"`
	TerminalPathCount int               `json:"terminal_path_count"`
	ShortestTerminal  int               `json:"shortest_terminal"`
	UniqueWordCount   int               `json:"unique_word_count"`
	OptimalPathWords  []string          `json:"optimal_path_words,omitempty"`
}

// Guidance points a player at the best continuation from their
// current position.
type Guidance struct {
	OnOptimalPath  bool             `json:"on_optimal_path"`
	HasDeviated    bool             `json:"has_deviated"`
	NextMove       *engine.Move     `json:"next_move,omitempty"`
	NextWords      []string         `json:"next_words,omitempty"`
	SuggestedPath  *engine.MovePath `json:"suggested_path,omitempty"`
	MatchedPrefix  int              `json:"matched_prefix"`
	RemainingMoves int              `json:"remaining_moves"`
}
