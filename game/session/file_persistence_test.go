package session_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/service"
	"github.com/sudorandom/wordchain/game/session"
)

func newTestPersistence(t *testing.T) (*session.FilePersistence, *stubLevelManager, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "sessions")
	lm := &stubLevelManager{level: testLevel(), hash: 7}
	fp, err := session.NewFilePersistence(dir, lm)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	return fp, lm, dir
}

func playedSession(t *testing.T) *service.Session {
	t.Helper()
	level := testLevel()
	eng, err := engine.NewEngine(level)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	res := eng.PerformSwap(engine.Coord{Row: 0, Col: 0}, engine.Coord{Row: 0, Col: 1})
	if !res.Success {
		t.Fatalf("setup swap failed: %s", res.Message)
	}
	return &service.Session{
		ID:             "ab12",
		Engine:         eng,
		Level:          level,
		LevelID:        "test",
		CreatedAt:      time.Now().Add(-time.Minute),
		LastAccessedAt: time.Now(),
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fp, _, _ := newTestPersistence(t)
	sess := playedSession(t)

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fp.Load("ab12")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ID != "ab12" || loaded.LevelID != "test" {
		t.Errorf("identity mismatch: id=%s level=%s", loaded.ID, loaded.LevelID)
	}

	state := loaded.Engine.GetState()
	if state.CurrentDepth != 1 {
		t.Errorf("expected restored depth 1, got %d", state.CurrentDepth)
	}
	if len(state.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(state.History))
	}
	if state.Grid[0][0] != "c" || state.Grid[0][1] != "a" {
		t.Errorf("expected swapped grid restored, got row %v", state.Grid[0])
	}

	// Candidate moves are re-derived: the next optimal move must work
	res := loaded.Engine.PerformSwap(engine.Coord{Row: 1, Col: 0}, engine.Coord{Row: 1, Col: 1})
	if !res.Success {
		t.Errorf("expected swap to succeed after restore, got %s", res.Message)
	}

	// Undo works against replayed history
	loaded.Engine.UndoLastMove()
	undo := loaded.Engine.UndoLastMove()
	if !undo.Success {
		t.Error("expected undo to succeed after restore")
	}
	if loaded.Engine.GetState().CurrentDepth != 0 {
		t.Errorf("expected depth 0 after undoing everything, got %d", loaded.Engine.GetState().CurrentDepth)
	}
}

func TestLoad_Missing(t *testing.T) {
	fp, _, _ := newTestPersistence(t)

	if _, err := fp.Load("zzzz"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLoad_StaleContentHash(t *testing.T) {
	fp, lm, dir := newTestPersistence(t)
	sess := playedSession(t)

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Simulate the level file being regenerated with different content
	lm.hash = 8

	if _, err := fp.Load("ab12"); !errors.Is(err, session.ErrStaleSnapshot) {
		t.Fatalf("expected ErrStaleSnapshot, got %v", err)
	}

	// The stale snapshot stays on disk
	if _, err := os.Stat(filepath.Join(dir, "ab12.json")); err != nil {
		t.Errorf("expected stale snapshot file to remain: %v", err)
	}

	// Restoring the original level file makes the snapshot loadable again
	lm.hash = 7
	if _, err := fp.Load("ab12"); err != nil {
		t.Errorf("expected snapshot to load after hash restored: %v", err)
	}
}

func TestLoad_StaleDifficulty(t *testing.T) {
	fp, lm, _ := newTestPersistence(t)
	sess := playedSession(t)

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	changed := testLevel()
	changed.Difficulty = "hard"
	lm.level = changed

	if _, err := fp.Load("ab12"); !errors.Is(err, session.ErrStaleSnapshot) {
		t.Errorf("expected ErrStaleSnapshot on difficulty change, got %v", err)
	}
}

func TestDeletePersisted(t *testing.T) {
	fp, _, dir := newTestPersistence(t)
	sess := playedSession(t)

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := fp.Delete("ab12"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ab12.json")); !os.IsNotExist(err) {
		t.Error("expected session file removed")
	}
	if err := fp.Delete("ab12"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestListAllAndExists(t *testing.T) {
	fp, _, _ := newTestPersistence(t)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no sessions, got %v", ids)
	}

	sess := playedSession(t)
	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ids, err = fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "ab12" {
		t.Errorf("expected [ab12], got %v", ids)
	}
	if !fp.Exists("ab12") {
		t.Error("expected Exists to report saved session")
	}
	if fp.Exists("zzzz") {
		t.Error("expected Exists to be false for unknown ID")
	}
}
