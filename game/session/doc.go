// Package session manages puzzle session lifecycle and persistence.
//
// The session package implements:
//   - Session creation with random 4-character hex IDs
//   - Case-insensitive session lookup
//   - Expiry-based cleanup of idle sessions
//   - Optional file-backed snapshot persistence
//
// Snapshots:
//
// A persisted session stores the played history and the content hash of
// the level file it was played against, not the engine's derived state.
// On load the history is replayed against the level's exploration tree to
// rebuild candidate moves and game-over flags. If the level file's content
// or difficulty has changed since the snapshot was written, the snapshot
// is stale: it is ignored on load but never deleted, so restoring the
// original level file brings the progress back.
//
// Usage:
//
//	persistence, _ := session.NewFilePersistence("sessions", levelMgr)
//	manager := session.NewManagerWithPersistence(persistence)
//	manager.LoadPersistedSessions()
//
//	sess, err := manager.Create("", "daily", level)
package session
