package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/service"
)

// ErrLevelNotFound aliases the service-level sentinel so callers can
// errors.Is against either package.
var ErrLevelNotFound = service.ErrLevelNotFound

// ErrInvalidLevel marks level files that fail validation.
var ErrInvalidLevel = errors.New("invalid level file")

// cachedLevel pairs a parsed level with the FNV-1a hash of the raw file it
// was parsed from. The hash is persisted with session snapshots so a
// regenerated level file invalidates old progress.
type cachedLevel struct {
	level *engine.Level
	hash  uint32
}

// Manager handles level file loading and caching
type Manager struct {
	levelsDir    string
	defaultLevel *engine.Level
	levels       map[string]*cachedLevel
	mu           sync.RWMutex
}

// NewManager creates a new level manager
func NewManager(levelsDir string) (*Manager, error) {
	if _, err := os.Stat(levelsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("levels directory does not exist: %s", levelsDir)
	}

	m := &Manager{
		levelsDir: levelsDir,
		levels:    make(map[string]*cachedLevel),
	}

	if err := m.loadDefaultLevel(); err != nil {
		return nil, fmt.Errorf("failed to load default level: %w", err)
	}

	return m, nil
}

// LoadLevel loads a level by name
func (m *Manager) LoadLevel(name string) (*engine.Level, error) {
	m.mu.RLock()
	if cached, exists := m.levels[name]; exists {
		m.mu.RUnlock()
		return cached.level, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, exists := m.levels[name]; exists {
		return cached.level, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	levelPath := filepath.Join(m.levelsDir, filename)

	data, err := os.ReadFile(levelPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrLevelNotFound
		}
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	var level engine.Level
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	if err := engine.ValidateLevel(&level); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	if level.Name == "" {
		level.Name = name
	}

	m.levels[name] = &cachedLevel{level: &level, hash: HashLevelBytes(data)}
	return &level, nil
}

// LevelHash returns the content hash of a level file. The level is loaded
// (and cached) on first access.
func (m *Manager) LevelHash(name string) (uint32, error) {
	m.mu.RLock()
	if cached, exists := m.levels[name]; exists {
		m.mu.RUnlock()
		return cached.hash, nil
	}
	m.mu.RUnlock()

	if _, err := m.LoadLevel(name); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if cached, exists := m.levels[name]; exists {
		return cached.hash, nil
	}
	return 0, ErrLevelNotFound
}

// ListLevels returns information about all available levels
func (m *Manager) ListLevels() ([]*service.LevelInfo, error) {
	entries, err := os.ReadDir(m.levelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var infos []*service.LevelInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		level, err := m.LoadLevel(name)
		if err != nil {
			// Skip invalid levels
			continue
		}

		infos = append(infos, &service.LevelInfo{
			Filename:        entry.Name(),
			LevelID:         name,
			Name:            level.Name,
			Difficulty:      level.Difficulty,
			Rows:            level.Rows(),
			Cols:            level.Cols(),
			WordLength:      level.WordLength,
			MaxDepthReached: level.MaxDepthReached,
		})
	}

	return infos, nil
}

// GetDefault returns the default level
func (m *Manager) GetDefault() *engine.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLevel
}

// SetDefault sets the default level by name
func (m *Manager) SetDefault(name string) error {
	level, err := m.LoadLevel(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultLevel = level
	return nil
}

// RefreshCache drops all cached levels so regenerated files are re-read
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.levels = make(map[string]*cachedLevel)
	m.mu.Unlock()

	return m.loadDefaultLevel()
}

// SaveLevel writes a level to disk after validating it
func (m *Manager) SaveLevel(name string, level *engine.Level) error {
	if err := engine.ValidateLevel(level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	levelPath := filepath.Join(m.levelsDir, filename)

	data, err := json.MarshalIndent(level, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal level: %w", err)
	}

	if err := os.WriteFile(levelPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}

	m.mu.Lock()
	m.levels[name] = &cachedLevel{level: level, hash: HashLevelBytes(data)}
	m.mu.Unlock()

	return nil
}

// loadDefaultLevel selects the default level: "daily" if present, otherwise
// the first valid level on disk, otherwise the built-in starter.
func (m *Manager) loadDefaultLevel() error {
	level, err := m.LoadLevel("daily")
	if err != nil {
		level = nil
		if infos, listErr := m.ListLevels(); listErr == nil && len(infos) > 0 {
			level, _ = m.LoadLevel(infos[0].LevelID)
		}
		if level == nil {
			level = engine.DefaultLevel()
		}
	}

	m.mu.Lock()
	m.defaultLevel = level
	m.mu.Unlock()
	return nil
}

// HashLevelBytes computes the FNV-1a content hash of a raw level file.
func HashLevelBytes(data []byte) uint32 {
	h := fnv.New32a()
	h.Write(data)
	return h.Sum32()
}
