package session

import (
	"time"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// SavedProgress is the replayable portion of a snapshot. Candidate move
// sets are not stored; they are re-derived from the level's exploration
// tree when the snapshot is loaded.
type SavedProgress struct {
	LastGrid           [][]string            `json:"lastGrid"`
	History            []engine.HistoryEntry `json:"history"`
	CurrentDepth       int                   `json:"currentDepth"`
	TurnFailedAttempts int                   `json:"turnFailedAttempts"`
	HasDeviated        bool                  `json:"hasDeviated"`
}

// SavedSession is the JSON structure for persisted sessions. ContentHash
// and SourceDifficulty tie the snapshot to the exact level file it was
// played against; when either no longer matches, the snapshot is stale
// and is ignored on load.
type SavedSession struct {
	ID               string        `json:"id"`
	LevelID          string        `json:"levelId"`
	CreatedAt        time.Time     `json:"createdAt"`
	LastAccessedAt   time.Time     `json:"lastAccessedAt"`
	ContentHash      uint32        `json:"contentHash"`
	SourceDifficulty string        `json:"sourceDifficulty"`
	Progress         SavedProgress `json:"progress"`
}
