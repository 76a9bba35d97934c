package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sudorandom/wordchain/game/engine"
)

func writeTempLevel(t *testing.T, level *engine.Level) string {
	t.Helper()

	data, err := json.Marshal(level)
	if err != nil {
		t.Fatalf("Failed to marshal level: %v", err)
	}

	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}
	return path
}

func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}

func TestValidateLevel_Valid(t *testing.T) {
	path := writeTempLevel(t, engine.DefaultLevel())

	result := validateLevel(path)
	if !result.Valid {
		t.Errorf("Expected valid level, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	if !hasError(result, "✓ Name: Starter") {
		t.Errorf("Expected name summary in output, got: %v", result.Errors)
	}
	if !hasError(result, "✓ Optimal depth: 2") {
		t.Errorf("Expected depth summary in output, got: %v", result.Errors)
	}
	if !hasError(result, "dead ends") {
		t.Errorf("Expected dead end summary in output, got: %v", result.Errors)
	}
}

func TestValidateLevel_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "test", invalid json}`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result := validateLevel(path)
	if result.Valid {
		t.Error("Expected invalid level due to bad JSON")
	}
	if !hasError(result, "Invalid JSON") {
		t.Errorf("Expected 'Invalid JSON' error, got: %v", result.Errors)
	}
}

func TestValidateLevel_MissingFile(t *testing.T) {
	result := validateLevel("/non/existent/level.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasError(result, "Failed to read file") {
		t.Errorf("Expected read error, got: %v", result.Errors)
	}
}

func TestValidateLevel_DepthMismatch(t *testing.T) {
	level := engine.DefaultLevel()
	level.MaxDepthReached = 7

	result := validateLevel(writeTempLevel(t, level))
	if result.Valid {
		t.Error("Expected invalid level for depth mismatch")
	}
	if !hasError(result, "maxDepthReached") {
		t.Errorf("Expected depth error, got: %v", result.Errors)
	}
}

func TestValidateLevel_UppercaseGridCell(t *testing.T) {
	level := engine.DefaultLevel()
	level.InitialGrid[0][0] = "A"

	result := validateLevel(writeTempLevel(t, level))
	if result.Valid {
		t.Error("Expected invalid level for uppercase grid cell")
	}
	if !hasError(result, "must be a lowercase letter") {
		t.Errorf("Expected lowercase error, got: %v", result.Errors)
	}
}

func TestValidateLevel_WordLengthBounds(t *testing.T) {
	level := engine.DefaultLevel()
	level.ExplorationTree[0].WordsFormed = []string{"ca"}

	result := validateLevel(writeTempLevel(t, level))
	if result.Valid {
		t.Error("Expected invalid level for out-of-bounds word length")
	}
	if !hasError(result, "violates length bounds") {
		t.Errorf("Expected length bounds error, got: %v", result.Errors)
	}
}

func TestValidateLevel_DuplicateSiblingSwap(t *testing.T) {
	level := engine.DefaultLevel()
	// The reversed orientation of an existing child is still the same swap
	first := level.ExplorationTree[0]
	first.NextMoves = append(first.NextMoves, &engine.ExplorationNode{
		Move:            &engine.Move{From: engine.Coord{Row: 1, Col: 1}, To: engine.Coord{Row: 1, Col: 0}},
		WordsFormed:     []string{"rat"},
		MaxDepthReached: 0,
	})

	result := validateLevel(writeTempLevel(t, level))
	if result.Valid {
		t.Error("Expected invalid level for duplicate sibling swap")
	}
	if !hasError(result, "duplicate swap") {
		t.Errorf("Expected duplicate swap error, got: %v", result.Errors)
	}
}
