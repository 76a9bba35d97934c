package levels

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sudorandom/wordchain/game/engine"
)

func writeLevelFile(t *testing.T, dir, name string, level *engine.Level) {
	t.Helper()
	data, err := json.MarshalIndent(level, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal level: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}
}

func testLevel() *engine.Level {
	level := engine.DefaultLevel()
	level.Name = "Manager Test Level"
	level.Difficulty = "medium"
	return level
}

func TestNewManager_MissingDir(t *testing.T) {
	if _, err := NewManager("/non/existent/path"); err == nil {
		t.Error("Expected error for missing levels directory")
	}
}

func TestLoadLevel(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, dir, "medium", testLevel())

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	level, err := m.LoadLevel("medium")
	if err != nil {
		t.Fatalf("Failed to load level: %v", err)
	}
	if level.Name != "Manager Test Level" {
		t.Errorf("Unexpected level name: %s", level.Name)
	}

	// Second load hits the cache and returns the same instance.
	again, err := m.LoadLevel("medium")
	if err != nil {
		t.Fatalf("Cached load failed: %v", err)
	}
	if again != level {
		t.Error("Expected cached level instance")
	}
}

func TestLoadLevel_NotFound(t *testing.T) {
	m, _ := NewManager(t.TempDir())

	_, err := m.LoadLevel("missing")
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Expected ErrLevelNotFound, got %v", err)
	}
}

func TestLoadLevel_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	m, _ := NewManager(dir)
	if _, err := m.LoadLevel("broken"); err == nil {
		t.Error("Expected error for malformed level file")
	}
}

func TestLoadLevel_FailsValidation(t *testing.T) {
	dir := t.TempDir()
	bad := testLevel()
	bad.MaxDepthReached = 99
	writeLevelFile(t, dir, "bad", bad)

	m, _ := NewManager(dir)
	if _, err := m.LoadLevel("bad"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Expected ErrInvalidLevel, got %v", err)
	}
}

func TestLevelHash(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, dir, "medium", testLevel())

	m, _ := NewManager(dir)

	h1, err := m.LevelHash("medium")
	if err != nil {
		t.Fatalf("Failed to get hash: %v", err)
	}
	if h1 == 0 {
		t.Error("Expected non-zero content hash")
	}

	h2, _ := m.LevelHash("medium")
	if h1 != h2 {
		t.Errorf("Hash not stable: %d vs %d", h1, h2)
	}
}

func TestListLevels_SkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, dir, "good", testLevel())
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	m, _ := NewManager(dir)
	infos, err := m.ListLevels()
	if err != nil {
		t.Fatalf("Failed to list levels: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("Expected 1 valid level, got %d", len(infos))
	}
	if infos[0].LevelID != "good" {
		t.Errorf("Unexpected level ID: %s", infos[0].LevelID)
	}
	if infos[0].Difficulty != "medium" {
		t.Errorf("Unexpected difficulty: %s", infos[0].Difficulty)
	}
}

func TestSaveLevel(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, dir, "seed", testLevel())
	m, _ := NewManager(dir)

	saved := testLevel()
	saved.Name = "Saved Level"
	if err := m.SaveLevel("saved", saved); err != nil {
		t.Fatalf("Failed to save level: %v", err)
	}

	loaded, err := m.LoadLevel("saved")
	if err != nil {
		t.Fatalf("Failed to reload saved level: %v", err)
	}
	if loaded.Name != "Saved Level" {
		t.Errorf("Unexpected name after reload: %s", loaded.Name)
	}
}

func TestSaveLevel_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, dir, "seed", testLevel())
	m, _ := NewManager(dir)

	bad := testLevel()
	bad.InitialGrid = nil
	if err := m.SaveLevel("bad", bad); err == nil {
		t.Error("Expected save of invalid level to fail")
	}
}

func TestRefreshCache_ConcurrentGetDefault(t *testing.T) {
	dir := t.TempDir()
	writeLevelFile(t, dir, "daily", testLevel())

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Race refreshes against readers; the race detector flags any
	// unguarded write to the default level.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			if err := m.RefreshCache(); err != nil {
				t.Errorf("RefreshCache failed: %v", err)
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		if level := m.GetDefault(); level == nil {
			t.Fatal("Expected a default level at all times")
		}
	}
	<-done

	if m.GetDefault().Name != "Manager Test Level" {
		t.Errorf("Unexpected default after refresh: %s", m.GetDefault().Name)
	}
}

func TestGetDefault_FallsBackToBuiltin(t *testing.T) {
	// Empty directory: no daily level, nothing else on disk.
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	def := m.GetDefault()
	if def == nil {
		t.Fatal("Expected a default level")
	}
	if err := engine.ValidateLevel(def); err != nil {
		t.Errorf("Built-in default level invalid: %v", err)
	}
}
