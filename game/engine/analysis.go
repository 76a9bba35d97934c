package engine

import (
	"strings"
)

// PathStep is one move of an enumerated sequence together with the words it
// forms.
type PathStep struct {
	Move        Move     `json:"move"`
	WordsFormed []string `json:"wordsFormed"`
}

// MovePath is an ordered sequence of steps from the initial grid.
type MovePath []PathStep

// Words returns every word formed along the path, in play order.
func (p MovePath) Words() []string {
	var words []string
	for _, step := range p {
		words = append(words, step.WordsFormed...)
	}
	return words
}

// key builds a canonical string for deduplication. Two traversal artifacts
// that replay the same (from, to, wordsFormed) sequence collapse to one key.
func (p MovePath) key() string {
	var b strings.Builder
	for _, step := range p {
		b.WriteString(step.Move.From.String())
		b.WriteString(step.Move.To.String())
		b.WriteByte(':')
		b.WriteString(strings.Join(step.WordsFormed, ","))
		b.WriteByte(';')
	}
	return b.String()
}

func stepOf(node *ExplorationNode) PathStep {
	return PathStep{Move: *node.Move, WordsFormed: node.WordsFormed}
}

// OptimalPaths enumerates every deduplicated move sequence whose length
// equals the level's optimum depth. Branches that can no longer reach the
// optimum are pruned using the per-node depth annotations.
func OptimalPaths(level *Level) []MovePath {
	if level.MaxDepthReached == 0 {
		return nil
	}

	var out []MovePath
	seen := make(map[string]bool)

	var walk func(node *ExplorationNode, prefix MovePath)
	walk = func(node *ExplorationNode, prefix MovePath) {
		depth := len(prefix) + 1
		if depth+node.MaxDepthReached < level.MaxDepthReached {
			return
		}

		path := make(MovePath, len(prefix), depth)
		copy(path, prefix)
		path = append(path, stepOf(node))

		if node.MaxDepthReached == 0 && depth == level.MaxDepthReached {
			if k := path.key(); !seen[k] {
				seen[k] = true
				out = append(out, path)
			}
			return
		}
		for _, child := range node.NextMoves {
			walk(child, path)
		}
	}

	for _, root := range level.ExplorationTree {
		walk(root, nil)
	}
	return out
}

// TerminalPaths enumerates every deduplicated move sequence ending at a node
// with no further moves, regardless of length. Every optimal path is also a
// terminal path; the converse does not hold.
func TerminalPaths(level *Level) []MovePath {
	var out []MovePath
	seen := make(map[string]bool)

	var walk func(node *ExplorationNode, prefix MovePath)
	walk = func(node *ExplorationNode, prefix MovePath) {
		path := make(MovePath, len(prefix), len(prefix)+1)
		copy(path, prefix)
		path = append(path, stepOf(node))

		if len(node.NextMoves) == 0 || node.MaxDepthReached == 0 {
			if k := path.key(); !seen[k] {
				seen[k] = true
				out = append(out, path)
			}
			return
		}
		for _, child := range node.NextMoves {
			walk(child, path)
		}
	}

	for _, root := range level.ExplorationTree {
		walk(root, nil)
	}
	return out
}

// chainResult pairs the best path reachable through a node with the number
// of its leading steps that match the play history.
type chainResult struct {
	path    MovePath
	matches int
}

// LongestWordChain returns the single longest move sequence through the
// tree, biased toward the given play history: on a length tie the candidate
// whose leading words match more of what the player already did wins. This
// keeps the displayed "best path" continuous with the player's own moves
// instead of jumping to whichever optimal branch traversal found first.
//
// A remaining length-and-match tie keeps the earlier candidate in nextMoves
// order.
func LongestWordChain(level *Level, history []HistoryEntry) MovePath {
	best := chainResult{}
	for _, root := range level.ExplorationTree {
		if r := chainFrom(root, 0, history); betterChain(r, best) {
			best = r
		}
	}
	return best.path
}

func chainFrom(node *ExplorationNode, depth int, history []HistoryEntry) chainResult {
	bestChild := chainResult{}
	for _, child := range node.NextMoves {
		if r := chainFrom(child, depth+1, history); betterChain(r, bestChild) {
			bestChild = r
		}
	}

	path := make(MovePath, 0, len(bestChild.path)+1)
	path = append(path, stepOf(node))
	path = append(path, bestChild.path...)

	// A node only contributes a match while the prefix is unbroken: the
	// comparison is against the history entry at this node's depth, by
	// first word formed, case-insensitively.
	matches := 0
	if depth < len(history) && firstWordMatches(node, history[depth]) {
		matches = 1 + bestChild.matches
	}

	return chainResult{path: path, matches: matches}
}

func firstWordMatches(node *ExplorationNode, entry HistoryEntry) bool {
	if len(node.WordsFormed) == 0 || len(entry.WordsFormedByMove) == 0 {
		return false
	}
	return strings.EqualFold(node.WordsFormed[0], entry.WordsFormedByMove[0])
}

// betterChain prefers the strictly longer path, then the higher match count.
// Strict comparisons preserve nextMoves order as the final tie-break.
func betterChain(candidate, current chainResult) bool {
	if len(candidate.path) != len(current.path) {
		return len(candidate.path) > len(current.path)
	}
	return candidate.matches > current.matches
}
