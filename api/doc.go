// Package api provides HTTP REST API handlers for the WordChain puzzle
// server.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Level listing, loading, and analysis
//   - Daily completion lookup
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (body: {"level_id": "daily"})
//   - GET /api/sessions - List all sessions (sort, order, limit params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/swap - Swap two adjacent cells
//   - POST /api/sessions/{id}/undo - Undo the most recent swap
//   - POST /api/sessions/{id}/reset - Reset puzzle to initial grid
//   - GET /api/sessions/{id}/history - Move history with pagination
//   - GET /api/sessions/{id}/guidance - Best continuation hint
//
// Levels:
//   - GET /api/levels - List available levels
//   - POST /api/levels - Save a level file
//   - GET /api/levels/{name} - Get a level definition
//   - GET /api/levels/{name}/analysis - Solution-space summary
//
// Daily:
//   - GET /api/daily?date=YYYY-MM-DD&difficulty=medium - Completion record
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Coordinates are [row, col] pairs:
//
//	{
//	  "from": [0, 1],
//	  "to":   [0, 2]
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
