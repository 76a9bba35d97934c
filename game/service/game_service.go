package service

import (
	"context"
	"time"

	"github.com/sudorandom/wordchain/game/daily"
	"github.com/sudorandom/wordchain/game/engine"
)

// GameService defines all puzzle-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, levelID string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Swap(ctx context.Context, sessionID string, from, to engine.Coord) (*SwapResult, error)
	Undo(ctx context.Context, sessionID string) (*UndoResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)
	GetGuidance(ctx context.Context, sessionID string) (*Guidance, error)

	// Levels
	ListLevels(ctx context.Context) ([]*LevelInfo, error)
	LoadLevel(ctx context.Context, levelID string) (*engine.Level, error)
	SaveLevel(ctx context.Context, levelID string, level *engine.Level) error
	AnalyzeLevel(ctx context.Context, levelID string) (*LevelAnalysis, error)

	// Daily Progress
	GetDailyRecord(ctx context.Context, date, difficulty string) (*daily.Record, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, levelID string, level *engine.Level) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id, levelID string, level *engine.Level) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// LevelManager handles level file loading
type LevelManager interface {
	LoadLevel(name string) (*engine.Level, error)
	ListLevels() ([]*LevelInfo, error)
	GetDefault() *engine.Level
	SaveLevel(name string, level *engine.Level) error
	LevelHash(name string) (uint32, error)
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Level          *engine.Level
	LevelID        string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
