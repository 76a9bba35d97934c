package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLevel = errors.New("invalid level data")
)

// ValidateLevel checks a level against the data contract before an engine is
// built on it. The engine itself assumes validated input; this is the single
// gate for the structural invariants.
func ValidateLevel(level *Level) error {
	if level == nil {
		return fmt.Errorf("%w: level is nil", ErrInvalidLevel)
	}

	if len(level.InitialGrid) == 0 {
		return fmt.Errorf("%w: initialGrid is missing or empty", ErrInvalidLevel)
	}
	if level.ExplorationTree == nil {
		return fmt.Errorf("%w: explorationTree is missing", ErrInvalidLevel)
	}

	rows := level.Rows()
	cols := level.Cols()
	if rows < MinGridSize || rows > MaxGridSize || cols < MinGridSize || cols > MaxGridSize {
		return fmt.Errorf("%w: grid must be between %dx%d and %dx%d, got %dx%d",
			ErrInvalidLevel, MinGridSize, MinGridSize, MaxGridSize, MaxGridSize, rows, cols)
	}

	for i, row := range level.InitialGrid {
		if len(row) != cols {
			return fmt.Errorf("%w: inconsistent grid width at row %d: expected %d, got %d",
				ErrInvalidLevel, i, cols, len(row))
		}
		for j, cell := range row {
			if len(cell) != 1 {
				return fmt.Errorf("%w: cell [%d,%d] must be a single character, got %q",
					ErrInvalidLevel, i, j, cell)
			}
		}
	}

	if level.MaxDepthReached < 0 {
		return fmt.Errorf("%w: maxDepthReached must be >= 0", ErrInvalidLevel)
	}
	if level.WordLength <= 0 || level.MinWordLength <= 0 || level.MinWordLength > level.WordLength {
		return fmt.Errorf("%w: word length bounds are inconsistent (min=%d, max=%d)",
			ErrInvalidLevel, level.MinWordLength, level.WordLength)
	}

	for i, root := range level.ExplorationTree {
		if err := validateNode(root, rows, cols, fmt.Sprintf("explorationTree[%d]", i)); err != nil {
			return err
		}
	}

	// Level optimum must agree with the roots' annotations.
	best := 0
	for _, root := range level.ExplorationTree {
		if d := 1 + root.MaxDepthReached; d > best {
			best = d
		}
	}
	if best != level.MaxDepthReached {
		return fmt.Errorf("%w: maxDepthReached is %d but the tree yields %d",
			ErrInvalidLevel, level.MaxDepthReached, best)
	}

	return nil
}

// validateNode checks one tree node and recurses into its children.
func validateNode(node *ExplorationNode, rows, cols int, path string) error {
	if node == nil {
		return fmt.Errorf("%w: %s is nil", ErrInvalidLevel, path)
	}
	if node.Move == nil {
		return fmt.Errorf("%w: %s has no move", ErrInvalidLevel, path)
	}

	for _, c := range []Coord{node.Move.From, node.Move.To} {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return fmt.Errorf("%w: %s move cell %s is out of bounds", ErrInvalidLevel, path, c)
		}
	}
	if !node.Move.From.IsAdjacent(node.Move.To) {
		return fmt.Errorf("%w: %s move %s is not between adjacent cells", ErrInvalidLevel, path, node.Move)
	}
	if len(node.WordsFormed) == 0 {
		return fmt.Errorf("%w: %s forms no words", ErrInvalidLevel, path)
	}

	// maxDepthReached is 0 iff the node is a leaf, otherwise one more than
	// the best child.
	if len(node.NextMoves) == 0 {
		if node.MaxDepthReached != 0 {
			return fmt.Errorf("%w: %s is a leaf but maxDepthReached is %d",
				ErrInvalidLevel, path, node.MaxDepthReached)
		}
		return nil
	}

	best := 0
	for i, child := range node.NextMoves {
		if err := validateNode(child, rows, cols, fmt.Sprintf("%s.nextMoves[%d]", path, i)); err != nil {
			return err
		}
		if d := 1 + child.MaxDepthReached; d > best {
			best = d
		}
	}
	if node.MaxDepthReached != best {
		return fmt.Errorf("%w: %s maxDepthReached is %d but its children yield %d",
			ErrInvalidLevel, path, node.MaxDepthReached, best)
	}

	return nil
}

// DefaultLevel returns a small built-in puzzle used when no level directory
// is configured. Swapping the first two letters of each row spells "cat"
// then "rat"; playing the bottom row first is a dead end.
func DefaultLevel() *Level {
	return &Level{
		Name:          "Starter",
		Difficulty:    "easy",
		InitialGrid:   [][]string{{"a", "c", "t"}, {"a", "r", "t"}},
		MinWordLength: 3,
		WordLength:    3,
		// Optimal play: cat then rat.
		MaxDepthReached: 2,
		ExplorationTree: []*ExplorationNode{
			{
				Move:            &Move{From: Coord{0, 0}, To: Coord{0, 1}},
				WordsFormed:     []string{"cat"},
				MaxDepthReached: 1,
				NextMoves: []*ExplorationNode{
					{
						Move:            &Move{From: Coord{1, 0}, To: Coord{1, 1}},
						WordsFormed:     []string{"rat"},
						MaxDepthReached: 0,
					},
				},
			},
			{
				Move:            &Move{From: Coord{1, 0}, To: Coord{1, 1}},
				WordsFormed:     []string{"rat"},
				MaxDepthReached: 0,
			},
		},
	}
}
