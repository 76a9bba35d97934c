// Command validate provides a small CLI that validates puzzle level JSON
// files in a levels directory. It checks:
//   - JSON structure and the engine's level contract (grid shape, tree
//     annotations, word length bounds)
//   - Grid cells are lowercase letters
//   - Words in the exploration tree respect the level's length bounds
//   - No node offers the same swap twice
//   - Dead ends: terminal paths shorter than the optimal depth are reported
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sudorandom/wordchain/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateLevel loads and validates a single level JSON file. It runs the
// engine's structural validation first, then the file-level checks the
// engine does not care about.
func validateLevel(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var level engine.Level
	if err := json.Unmarshal(data, &level); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateLevel(&level); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Grid cells must be lowercase letters
	for i, row := range level.InitialGrid {
		for j, cell := range row {
			ch := cell[0]
			if ch < 'a' || ch > 'z' {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid character %q at position [%d,%d]: must be a lowercase letter", cell, i+1, j+1))
			}
		}
	}

	// Tree-level checks the engine contract leaves open
	wordCount := 0
	for i, root := range level.ExplorationTree {
		errs := checkNode(root, &level, fmt.Sprintf("explorationTree[%d]", i), &wordCount)
		if len(errs) > 0 {
			result.Valid = false
			result.Errors = append(result.Errors, errs...)
		}
	}

	// Dead end report is informational, not an error
	terminal := engine.TerminalPaths(&level)
	deadEnds := 0
	for _, path := range terminal {
		if len(path) < level.MaxDepthReached {
			deadEnds++
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", level.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", level.Rows(), level.Cols()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Optimal depth: %d", level.MaxDepthReached))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Tree nodes: %d (%d word entries)", engine.CountTreeNodes(level.ExplorationTree), wordCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Terminal paths: %d (%d dead ends)", len(terminal), deadEnds))
		if level.Difficulty != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Difficulty: %s", level.Difficulty))
		}
	}

	return result
}

// checkNode validates one exploration node's words and children against the
// level's word length bounds, and rejects duplicate sibling swaps.
func checkNode(node *engine.ExplorationNode, level *engine.Level, path string, wordCount *int) []string {
	var errs []string

	for _, word := range node.WordsFormed {
		*wordCount++
		if len(word) < level.MinWordLength || len(word) > level.WordLength {
			errs = append(errs, fmt.Sprintf("%s: word %q violates length bounds [%d,%d]",
				path, word, level.MinWordLength, level.WordLength))
		}
		if word != strings.ToLower(word) {
			errs = append(errs, fmt.Sprintf("%s: word %q must be lowercase", path, word))
		}
	}

	for i, child := range node.NextMoves {
		for j := 0; j < i; j++ {
			if child.Move.Equals(*node.NextMoves[j].Move) {
				errs = append(errs, fmt.Sprintf("%s: duplicate swap %s among children", path, child.Move))
			}
		}
		errs = append(errs, checkNode(child, level, fmt.Sprintf("%s.nextMoves[%d]", path, i), wordCount)...)
	}

	return errs
}

// main scans the levels directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	levelsDir := "levels"
	if len(os.Args) > 1 {
		levelsDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(levelsDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding level files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No level files found in %s\n", levelsDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateLevel(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All levels are valid!")
	} else {
		fmt.Println("❌ Some levels have errors")
		os.Exit(1)
	}
}
