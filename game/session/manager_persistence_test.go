package session_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/session"
)

func TestManager_ReloadsFromDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	lm := &stubLevelManager{level: testLevel(), hash: 7}

	fp, err := session.NewFilePersistence(dir, lm)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}

	first := session.NewManagerWithPersistence(fp)
	sess, err := first.Create("ab12", "test", testLevel())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	sess.Engine.PerformSwap(engine.Coord{Row: 0, Col: 0}, engine.Coord{Row: 0, Col: 1})
	if err := first.Save("ab12"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh manager sharing the directory finds the session on demand
	second := session.NewManagerWithPersistence(fp)
	restored, err := second.Get("ab12")
	if err != nil {
		t.Fatalf("Get from fresh manager failed: %v", err)
	}
	if restored.Engine.GetState().CurrentDepth != 1 {
		t.Errorf("expected restored depth 1, got %d", restored.Engine.GetState().CurrentDepth)
	}
}

func TestManager_LoadPersistedSessions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	lm := &stubLevelManager{level: testLevel(), hash: 7}

	fp, err := session.NewFilePersistence(dir, lm)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}

	seed := session.NewManagerWithPersistence(fp)
	seed.Create("aaaa", "test", testLevel())
	seed.Create("bbbb", "test", testLevel())

	fresh := session.NewManagerWithPersistence(fp)
	if err := fresh.LoadPersistedSessions(); err != nil {
		t.Fatalf("LoadPersistedSessions failed: %v", err)
	}
	if fresh.Count() != 2 {
		t.Errorf("expected 2 sessions loaded, got %d", fresh.Count())
	}
}

func TestManager_LoadSkipsStaleSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	lm := &stubLevelManager{level: testLevel(), hash: 7}

	fp, err := session.NewFilePersistence(dir, lm)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}

	seed := session.NewManagerWithPersistence(fp)
	seed.Create("aaaa", "test", testLevel())

	// Level file changes after the snapshot was written
	lm.hash = 8

	fresh := session.NewManagerWithPersistence(fp)
	if err := fresh.LoadPersistedSessions(); err != nil {
		t.Fatalf("LoadPersistedSessions failed: %v", err)
	}
	if fresh.Count() != 0 {
		t.Errorf("expected stale snapshot skipped, got %d sessions", fresh.Count())
	}

	// On-demand lookup treats it as not found, not as an error
	if _, err := fresh.Get("aaaa"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for stale snapshot, got %v", err)
	}

	// The snapshot survives and loads once the level file is restored
	lm.hash = 7
	if _, err := fresh.Get("aaaa"); err != nil {
		t.Errorf("expected snapshot to load after level restored: %v", err)
	}
}

func TestManager_DeleteRemovesSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	lm := &stubLevelManager{level: testLevel(), hash: 7}

	fp, err := session.NewFilePersistence(dir, lm)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}

	manager := session.NewManagerWithPersistence(fp)
	manager.Create("ab12", "test", testLevel())

	if err := manager.Delete("ab12"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists("ab12") {
		t.Error("expected snapshot removed with session")
	}
}

func TestManager_SaveAllSessions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	lm := &stubLevelManager{level: testLevel(), hash: 7}

	fp, err := session.NewFilePersistence(dir, lm)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}

	manager := session.NewManagerWithPersistence(fp)
	a, _ := manager.Create("aaaa", "test", testLevel())
	manager.Create("bbbb", "test", testLevel())
	a.Engine.PerformSwap(engine.Coord{Row: 0, Col: 0}, engine.Coord{Row: 0, Col: 1})

	if err := manager.SaveAllSessions(); err != nil {
		t.Fatalf("SaveAllSessions failed: %v", err)
	}

	restored, err := fp.Load("aaaa")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored.Engine.GetState().CurrentDepth != 1 {
		t.Errorf("expected saved progress at depth 1, got %d", restored.Engine.GetState().CurrentDepth)
	}
}
