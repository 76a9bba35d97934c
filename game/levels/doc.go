// Package levels loads precomputed puzzle level files for the WordChain
// server.
//
// Level files are JSON documents produced by an external generator: the
// initial letter grid plus the exploration tree enumerating every valid
// move sequence. The manager caches parsed levels and keeps the FNV-1a
// content hash of each raw file; the hash travels with persisted session
// snapshots so that progress saved against one generation of a level file
// is recognized as stale when the file changes.
//
// Usage:
//
//	manager, err := levels.NewManager("levels")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	level, err := manager.LoadLevel("2026-08-29-medium")
//	hash, _ := manager.LevelHash("2026-08-29-medium")
package levels
