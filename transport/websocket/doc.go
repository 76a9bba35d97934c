// Package websocket provides WebSocket transport for the WordChain puzzle
// server.
//
// The websocket package implements:
//   - Real-time grid updates to connected clients
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after swaps, undos, and resets
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded Message structs carrying the full
// GameState after each change, with Event set to "state_update". Incoming
// messages are ignored; game actions go through the REST API.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=abc1)
// when establishing the connection. State updates are broadcast only to
// clients connected to the same session, so several spectators can watch
// one puzzle being solved.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful swap:
//	hub.BroadcastToSession(sessionID, state)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive broadcasts
// simultaneously without blocking each other.
package websocket
