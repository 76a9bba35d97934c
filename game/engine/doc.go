// Package engine provides the core progression logic for the WordChain
// puzzle.
//
// The engine package implements:
//   - Validation of level data (grid plus precomputed exploration tree)
//   - The move state machine: swap, undo, reset, and game-over derivation
//   - Deviation tracking against the level's optimum depth
//   - Path analysis over the exploration tree
//
// Core Types:
//
// The Engine interface defines the main contract for session operations,
// implemented by GameEngine. Level is the immutable puzzle definition,
// GameState the mutable per-session state, and ExplorationNode one node of
// the precomputed move tree.
//
// Usage:
//
//	eng, err := engine.NewEngine(level)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := eng.PerformSwap(engine.Coord{Row: 0, Col: 0}, engine.Coord{Row: 0, Col: 1})
//	if result.Success {
//		fmt.Println(result.WordsFormed)
//	}
//
// Game Rules:
//
// The player swaps adjacent letters; each swap that forms a new qualifying
// word advances the session along the exploration tree. Playing a move that
// cannot reach the level's optimum depth marks the path as deviated. The
// session ends when the optimum is reached, or when no moves remain on an
// undeviated path; a deviated player who runs out of moves is expected to
// undo back onto a better branch.
//
// The exploration tree is read-only after construction and safe to share;
// each GameState is exclusively owned by one session. Every operation is
// synchronous call-and-return with no internal timers or background work.
package engine
