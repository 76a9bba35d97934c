// Package mcp provides a Model Context Protocol interface to the puzzle
// server. It is a thin client: every tool call is proxied to the REST API,
// so MCP and HTTP clients always see the same state.
//
// The client registers tools for session management (create_session,
// list_sessions, get_session), gameplay (swap, undo, reset_game,
// game_state, move_history, guidance), and level inspection (list_levels,
// analyze_level, game_instructions). Tool results are formatted as plain
// text with the grid rendered as rows of letters.
//
// The underlying MCP server is exposed via GetMCPServer so the binary can
// serve it over stdio or mount it on an HTTP endpoint.
package mcp
