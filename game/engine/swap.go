package engine

// findNode searches a candidate set for the node whose move matches the
// attempted swap. Matching is order-insensitive: the attempted pair is
// compared against the node's move in both orientations.
func findNode(candidates []*ExplorationNode, attempted Move) *ExplorationNode {
	for _, node := range candidates {
		if node.Move == nil {
			continue
		}
		if node.Move.Equals(attempted) {
			return node
		}
	}
	return nil
}

// swapCells transposes two cells of the grid in place.
func swapCells(grid [][]string, a, b Coord) {
	grid[a.Row][a.Col], grid[b.Row][b.Col] = grid[b.Row][b.Col], grid[a.Row][a.Col]
}

// cloneGrid returns a deep copy of a letter grid.
func cloneGrid(grid [][]string) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

// recomputeGameOver derives the terminal flags from the primary fields.
//
// completed: the optimum depth has been reached.
// stuck: no candidate moves remain before the optimum.
//
// A player stuck after deviating is not terminal: they are expected to undo
// back onto a better branch, so the engine keeps accepting undo calls.
// Stuck on an optimal branch means the best outcome from that branch has
// been reached, which ends the session.
func (gs *GameState) recomputeGameOver(level *Level) {
	completed := level.MaxDepthReached > 0 && gs.CurrentDepth == level.MaxDepthReached
	stuck := len(gs.PossibleMoves) == 0 && gs.CurrentDepth > 0 && !completed

	gs.Completed = completed
	gs.GameOver = completed || (stuck && !gs.HasDeviated)

	switch {
	case completed:
		gs.Message = MsgCompleted
	case stuck:
		gs.Message = MsgStuck
	default:
		gs.Message = ""
	}
}

// WordsInHistory returns every word formed along the played history in
// order, including repeats.
func (gs *GameState) WordsInHistory() []string {
	var words []string
	for _, entry := range gs.History {
		words = append(words, entry.WordsFormedByMove...)
	}
	return words
}
