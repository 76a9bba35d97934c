// Package service provides the business logic layer for the WordChain
// puzzle server.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Level loading and analysis
//   - Swap, undo, and reset processing
//   - Move history tracking
//   - Daily completion recording
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. LevelManager loads and validates level files.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine, providing session isolation, level management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	levelMgr, _ := levels.NewManager("levels")
//	gameService := service.NewGameService(sessionMgr, levelMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "daily")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Attempt a swap
//	result, err := gameService.Swap(ctx, sessionInfo.ID,
//		engine.Coord{Row: 0, Col: 0}, engine.Coord{Row: 0, Col: 1})
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain
// independent game state. Multiple sessions can run concurrently against
// different levels. Sessions track creation time, last access time, and
// move history.
package service
