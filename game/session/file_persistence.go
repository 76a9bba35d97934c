package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/levels"
	"github.com/sudorandom/wordchain/game/service"
)

// ErrStaleSnapshot marks a snapshot whose source level file has changed
// since the snapshot was written. Stale snapshots are ignored, never
// deleted; regenerating the original level file makes them loadable again.
var ErrStaleSnapshot = errors.New("snapshot is stale")

// FilePersistence implements SessionPersistence using file system storage
type FilePersistence struct {
	sessionsDir  string
	levelManager service.LevelManager
}

// NewFilePersistence creates a new file-based session persistence layer
func NewFilePersistence(sessionsDir string, levelManager service.LevelManager) (*FilePersistence, error) {
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &FilePersistence{
		sessionsDir:  sessionsDir,
		levelManager: levelManager,
	}, nil
}

// Save persists a session to a JSON file
func (fp *FilePersistence) Save(session *service.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	level := session.Engine.GetLevel()
	hash, err := fp.levelHash(session.LevelID, level)
	if err != nil {
		return fmt.Errorf("failed to hash level: %w", err)
	}

	state := session.Engine.GetState()
	data := SavedSession{
		ID:               session.ID,
		LevelID:          session.LevelID,
		CreatedAt:        session.CreatedAt,
		LastAccessedAt:   session.LastAccessedAt,
		ContentHash:      hash,
		SourceDifficulty: level.Difficulty,
		Progress: SavedProgress{
			LastGrid:           state.Grid,
			History:            state.History,
			CurrentDepth:       state.CurrentDepth,
			TurnFailedAttempts: state.TurnFailedAttempts,
			HasDeviated:        state.HasDeviated,
		},
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	filePath := fp.getFilePath(session.ID)
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load retrieves a session from a JSON file. Snapshots written against a
// level file that has since changed content or difficulty return
// ErrStaleSnapshot and are left on disk untouched.
func (fp *FilePersistence) Load(id string) (*service.Session, error) {
	filePath := fp.getFilePath(id)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, ErrSessionNotFound
	}

	jsonData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var data SavedSession
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	level, err := fp.loadLevel(data.LevelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load level '%s': %w", data.LevelID, err)
	}

	hash, err := fp.levelHash(data.LevelID, level)
	if err != nil {
		return nil, fmt.Errorf("failed to hash level: %w", err)
	}
	if hash != data.ContentHash || level.Difficulty != data.SourceDifficulty {
		return nil, fmt.Errorf("%w: level '%s' changed since snapshot", ErrStaleSnapshot, data.LevelID)
	}

	gameEngine, err := engine.NewEngine(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create game engine: %w", err)
	}

	gameEngine.RestoreProgress(
		data.Progress.LastGrid,
		data.Progress.History,
		data.Progress.CurrentDepth,
		data.Progress.TurnFailedAttempts,
		data.Progress.HasDeviated,
	)

	return &service.Session{
		ID:             data.ID,
		Engine:         gameEngine,
		Level:          level,
		LevelID:        data.LevelID,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}, nil
}

// Delete removes a session file
func (fp *FilePersistence) Delete(id string) error {
	filePath := fp.getFilePath(id)

	if !fp.Exists(id) {
		return ErrSessionNotFound
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

// ListAll returns all persisted session IDs
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var sessionIDs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			sessionIDs = append(sessionIDs, strings.TrimSuffix(name, ".json"))
		}
	}

	return sessionIDs, nil
}

// Exists checks if a session file exists
func (fp *FilePersistence) Exists(id string) bool {
	filePath := fp.getFilePath(id)
	_, err := os.Stat(filePath)
	return err == nil
}

// getFilePath returns the full file path for a session ID
func (fp *FilePersistence) getFilePath(id string) string {
	return filepath.Join(fp.sessionsDir, fmt.Sprintf("%s.json", id))
}

// loadLevel resolves a level ID, falling back to the default level for
// sessions created without an explicit level.
func (fp *FilePersistence) loadLevel(levelID string) (*engine.Level, error) {
	if levelID == "" {
		return fp.levelManager.GetDefault(), nil
	}
	return fp.levelManager.LoadLevel(levelID)
}

// levelHash returns the content hash tying a snapshot to its level file.
// Sessions on the built-in default level have no file; their hash is taken
// over the serialized level instead.
func (fp *FilePersistence) levelHash(levelID string, level *engine.Level) (uint32, error) {
	if levelID != "" {
		return fp.levelManager.LevelHash(levelID)
	}
	data, err := json.Marshal(level)
	if err != nil {
		return 0, err
	}
	return levels.HashLevelBytes(data), nil
}
