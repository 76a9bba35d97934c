package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"WordChain Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`WordChain Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Swap adjacent letters on a grid to form words. Each valid swap must form at
least one new word. Chain swaps together to reach the longest possible word
sequence the level supports.

AVAILABLE TOOLS:
- game_state: Get current grid and progress
- swap: Swap two adjacent letters (coordinates are [row, col], 0-based)
- undo: Take back the last swap
- reset_game: Reset to the level's starting grid
- move_history: View past swaps and the words they formed
- guidance: Check whether you are on an optimal path and get a hint
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_levels: List available levels
- analyze_level: Path and word statistics for a level
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on the swap tool serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional level selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"level_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the level to play (optional, defaults to the built-in level)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "swap",
		Description: "Swap two adjacent letters on the grid. A swap is only accepted when it forms at least one new word.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"from": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "First cell as [row, col] (0-based)",
				},
				"to": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Second cell as [row, col], must be orthogonally adjacent to 'from'",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this swap (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "from", "to"},
		},
	}, c.handleSwap)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "undo",
		Description: "Undo the last swap, restoring the previous grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleUndo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the puzzle to its initial grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get swap history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "guidance",
		Description: "Check whether the session is still on an optimal path and get the next suggested swap",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGuidance)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_levels",
		Description: "List available puzzle levels",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListLevels)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "analyze_level",
		Description: "Get path and word statistics for a level: optimal path count, terminal paths, unique words",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"level_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the level to analyze",
				},
			},
			Required: []string{"level_id"},
		},
	}, c.handleAnalyzeLevel)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	levelID, _ := args["level_id"].(string)

	body := map[string]string{}
	if levelID != "" {
		body["level_id"] = levelID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nLevel: %s\n", session.ID, session.LevelID)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Level: %s, Created: %s)\n",
			s.ID, s.LevelID, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSwap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	from, err := parseCoordArg(args["from"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid 'from': %v", err)), nil
	}
	to, err := parseCoordArg(args["to"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid 'to': %v", err)), nil
	}

	body := map[string]interface{}{
		"from": []int{from.Row, from.Col},
		"to":   []int{to.Row, to.Col},
	}

	var result service.SwapResult
	err = c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/swap", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatSwapResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.UndoResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/undo", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatUndoResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGuidance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var guidance service.Guidance
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/guidance", sessionID), nil, &guidance)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGuidance(&guidance)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListLevels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var levels []service.LevelInfo
	err := c.apiCall("GET", "/api/levels", nil, &levels)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Levels:\n\n"
	for _, level := range levels {
		result += fmt.Sprintf("• %s\n  Grid: %dx%d, Word length: %d, Optimal chain: %d swaps",
			level.LevelID, level.Rows, level.Cols, level.WordLength, level.MaxDepthReached)
		if level.Difficulty != "" {
			result += fmt.Sprintf(", Difficulty: %s", level.Difficulty)
		}
		result += "\n\n"
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleAnalyzeLevel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	levelID, _ := args["level_id"].(string)

	var analysis service.LevelAnalysis
	err := c.apiCall("GET", fmt.Sprintf("/api/levels/%s/analysis", levelID), nil, &analysis)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatAnalysis(&analysis)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🔤 WordChain Puzzle - Complete Instructions

GAME OBJECTIVE:
Swap adjacent letters on the grid so that each swap forms at least one new
word. Chain valid swaps together to reach the longest word sequence the
level supports.

GAME MECHANICS:
• Swaps: Only two orthogonally adjacent cells may be swapped (no diagonals)
• Validation: A swap is accepted only if it forms at least one new word in
  a row or column of the resulting grid
• Failed attempts: Rejected swaps leave the grid unchanged but are counted
• Undo: You may take back swaps one at a time, all the way to the start
• Completion: Reaching the level's maximum chain depth completes the puzzle
• Dead ends: Some valid swaps lead to grids with no further valid swaps -
  the puzzle ends there unless you undo

COORDINATES:
Cells are addressed as [row, col], both 0-based. [0, 0] is the top-left
cell. A swap like from=[0,0] to=[0,1] exchanges the first two letters of
the top row.

OPTIMAL PLAY:
• Every level has one or more optimal paths reaching the maximum depth
• Deviating from all optimal paths is allowed but caps how deep you can go
• The guidance tool tells you whether your play so far still matches an
  optimal path and suggests the next swap on it
• Use analyze_level to see how many optimal and terminal paths exist

🤖 AI AGENTS - SUCCESS STRATEGIES:

1. **Read the grid carefully**: Words can form in rows AND columns. After
   each swap, check both directions around the swapped cells.

2. **Plan before swapping**: Rejected swaps count as failed attempts. Use
   game_state to study the grid before committing.

3. **Use guidance early**: If a swap succeeds but guidance reports you have
   deviated, consider undoing - a deviated branch can never reach the
   maximum depth.

4. **Undo is free**: There is no penalty for undoing. When stuck, undo back
   to the last point where guidance showed you on an optimal path.

5. **Track words formed**: move_history shows every word each swap formed.
   The daily score counts unique words, so variety matters.

SWAP COMMANDS:
- swap with from/to as [row, col] pairs
- undo - take back the most recent swap
- reset_game - return to the initial grid, clearing all history

COMPLETION:
- The puzzle is complete when you reach the maximum chain depth
- Completed daily puzzles are recorded once per day per difficulty

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and level
- Sessions persist across server restarts

Good luck chaining words! 🔤✨`

	return mcp.NewToolResultText(instructions), nil
}

// parseCoordArg converts a JSON [row, col] argument into a Coord
func parseCoordArg(v interface{}) (engine.Coord, error) {
	pair, ok := v.([]interface{})
	if !ok || len(pair) != 2 {
		return engine.Coord{}, fmt.Errorf("expected [row, col] pair")
	}
	row, rok := pair[0].(float64)
	col, cok := pair[1].(float64)
	if !rok || !cok {
		return engine.Coord{}, fmt.Errorf("row and col must be integers")
	}
	return engine.Coord{Row: int(row), Col: int(col)}, nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	levelID := session.LevelID
	if levelID == "" {
		levelID = "(default)"
	}
	return fmt.Sprintf("Session: %s\nLevel: %s\nCreated: %s\n\n%s",
		session.ID, levelID,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Depth: %d | Swaps: %d | Failed attempts: %d\n",
		state.CurrentDepth, len(state.History), state.TurnFailedAttempts))
	if state.HasDeviated {
		result.WriteString("⚠️ Deviated from all optimal paths - the maximum depth is out of reach\n")
	}
	result.WriteString("\n")

	// Grid
	for _, row := range state.Grid {
		result.WriteString(strings.Join(row, " "))
		result.WriteString("\n")
	}

	// Words formed so far
	if words := state.WordsInHistory(); len(words) > 0 {
		result.WriteString(fmt.Sprintf("\nWords formed: %s\n", strings.Join(words, ", ")))
	}

	// Status
	if state.GameOver {
		if state.Completed {
			result.WriteString("\n🎉 PUZZLE COMPLETE!")
		} else {
			result.WriteString("\n🚧 No more valid swaps - undo or reset to continue")
		}
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatSwapResult(result *service.SwapResult) string {
	response := ""
	if result.Success {
		response = "✓ Swap successful\n"
		if len(result.WordsFormed) > 0 {
			response += fmt.Sprintf("Words formed: %s\n", strings.Join(result.WordsFormed, ", "))
		}
	} else {
		response = "✗ Swap rejected\n"
		if result.Message != "" {
			response += fmt.Sprintf("Reason: %s\n", result.Message)
		}
	}

	if result.Completed {
		response += "🎉 Puzzle complete!\n"
		if result.DailyRecorded {
			response += "Daily completion recorded.\n"
		}
	} else if result.GameOver {
		response += "🚧 No more valid swaps from here - undo or reset to continue\n"
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatUndoResult(result *service.UndoResult) string {
	response := ""
	if result.Success {
		response = "✓ Undo successful\n"
		if result.UndoneMove != nil {
			m := result.UndoneMove
			response += fmt.Sprintf("Undone: (%d,%d)↔(%d,%d)\n",
				m.From.Row, m.From.Col, m.To.Row, m.To.Col)
		}
	} else {
		response = "✗ Undo failed\n"
		if result.Message != "" {
			response += fmt.Sprintf("Reason: %s\n", result.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatGuidance(g *service.Guidance) string {
	var b strings.Builder

	if g.OnOptimalPath {
		b.WriteString("✓ On an optimal path\n")
	} else if g.HasDeviated {
		b.WriteString("⚠️ Deviated - the maximum depth is no longer reachable without undoing\n")
	} else {
		b.WriteString("✗ Off the suggested path\n")
	}

	b.WriteString(fmt.Sprintf("Matched swaps: %d | Remaining on suggested path: %d\n",
		g.MatchedPrefix, g.RemainingMoves))

	if g.NextMove != nil {
		b.WriteString(fmt.Sprintf("\nSuggested next swap: (%d,%d)↔(%d,%d)",
			g.NextMove.From.Row, g.NextMove.From.Col,
			g.NextMove.To.Row, g.NextMove.To.Col))
		if len(g.NextWords) > 0 {
			b.WriteString(fmt.Sprintf(" forming: %s", strings.Join(g.NextWords, ", ")))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatAnalysis(a *service.LevelAnalysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Level Analysis: %s\n", a.LevelID))
	if a.Name != "" {
		b.WriteString(fmt.Sprintf("Name: %s\n", a.Name))
	}
	if a.Difficulty != "" {
		b.WriteString(fmt.Sprintf("Difficulty: %s\n", a.Difficulty))
	}
	b.WriteString(fmt.Sprintf("Optimal chain depth: %d\n", a.MaxDepthReached))
	b.WriteString(fmt.Sprintf("Exploration tree nodes: %d\n", a.TreeNodeCount))
	b.WriteString(fmt.Sprintf("Optimal paths: %d\n", a.OptimalPathCount))
	b.WriteString(fmt.Sprintf("Terminal paths: %d (shortest: %d swaps)\n",
		a.TerminalPathCount, a.ShortestTerminal))
	b.WriteString(fmt.Sprintf("Unique words across all paths: %d\n", a.UniqueWordCount))
	if len(a.OptimalPathWords) > 0 {
		b.WriteString(fmt.Sprintf("Words on an optimal path: %s\n",
			strings.Join(a.OptimalPathWords, ", ")))
	}

	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Swap History (Page %d/%d) - Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, entry := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		m := entry.MoveMade
		result += fmt.Sprintf("%d. (%d,%d)↔(%d,%d) depth %d→%d",
			num, m.From.Row, m.From.Col, m.To.Row, m.To.Col,
			entry.DepthBeforeMove, entry.DepthBeforeMove+1)
		if len(entry.WordsFormedByMove) > 0 {
			result += fmt.Sprintf(" formed: %s", strings.Join(entry.WordsFormedByMove, ", "))
		}
		result += "\n"
	}

	return result
}
