package engine

import "strings"

// UniqueWords returns the distinct words of a list in first-seen order.
// Comparison is case-insensitive; the first spelling seen is kept.
func UniqueWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		k := strings.ToLower(w)
		if !seen[k] {
			seen[k] = true
			out = append(out, w)
		}
	}
	return out
}

// GridsEqual reports whether two letter grids have identical dimensions and
// contents.
func GridsEqual(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// CountTreeNodes returns the total number of nodes in an exploration tree.
func CountTreeNodes(roots []*ExplorationNode) int {
	count := 0
	for _, node := range roots {
		count += 1 + CountTreeNodes(node.NextMoves)
	}
	return count
}

// FlattenGrid joins a grid into one lowercase string, row by row. Useful for
// compact log lines and diagnostics.
func FlattenGrid(grid [][]string) string {
	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strings.ToLower(strings.Join(row, "")))
	}
	return b.String()
}
