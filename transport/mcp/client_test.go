package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sudorandom/wordchain/game/engine"
	"github.com/sudorandom/wordchain/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":            "test-session",
		"current_depth": float64(2),
		"game_over":     false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:      "ab12",
			LevelID: "daily",
			GameState: &engine.GameState{
				Grid:         [][]string{{"c", "a", "t"}},
				CurrentDepth: 0,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleSwap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/swap" {
			t.Errorf("Expected POST /api/sessions/ab12/swap, got %s %s", r.Method, r.URL.Path)
		}

		var body struct {
			From [2]int `json:"from"`
			To   [2]int `json:"to"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.From != [2]int{0, 0} || body.To != [2]int{0, 1} {
			t.Errorf("Unexpected coordinates: from=%v to=%v", body.From, body.To)
		}

		resp := service.SwapResult{
			Success:     true,
			WordsFormed: []string{"cat"},
			GameState: &engine.GameState{
				Grid:         [][]string{{"c", "a", "t"}},
				CurrentDepth: 1,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "swap",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"from":       []interface{}{float64(0), float64(0)},
				"to":         []interface{}{float64(0), float64(1)},
			},
		},
	}

	result, err := client.handleSwap(ctx, request)
	if err != nil {
		t.Fatalf("handleSwap failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "✓ Swap successful") {
		t.Errorf("Expected success marker, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "cat") {
		t.Errorf("Expected formed word in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleSwap_BadCoordinates(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "swap",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"from":       "0,0",
				"to":         []interface{}{float64(0), float64(1)},
			},
		},
	}

	result, err := client.handleSwap(ctx, request)
	if err != nil {
		t.Fatalf("handleSwap returned protocol error: %v", err)
	}

	if !result.IsError {
		t.Error("Expected tool error for malformed coordinates")
	}
}

func TestParseCoordArg(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    engine.Coord
		wantErr bool
	}{
		{
			name:  "valid pair",
			input: []interface{}{float64(1), float64(2)},
			want:  engine.Coord{Row: 1, Col: 2},
		},
		{
			name:    "wrong length",
			input:   []interface{}{float64(1)},
			wantErr: true,
		},
		{
			name:    "not an array",
			input:   "1,2",
			wantErr: true,
		},
		{
			name:    "non-numeric elements",
			input:   []interface{}{"a", "b"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCoordArg(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatGameState(t *testing.T) {
	state := &engine.GameState{
		Grid:               [][]string{{"c", "a", "t"}, {"r", "a", "t"}},
		CurrentDepth:       1,
		TurnFailedAttempts: 2,
		History: []engine.HistoryEntry{
			{WordsFormedByMove: []string{"cat"}},
		},
	}

	result := formatGameState(state)

	expectedFields := []string{
		"Depth: 1",
		"Swaps: 1",
		"Failed attempts: 2",
		"c a t",
		"r a t",
		"Words formed: cat",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Completed(t *testing.T) {
	state := &engine.GameState{
		Grid:         [][]string{{"r", "a", "t"}},
		CurrentDepth: 2,
		GameOver:     true,
		Completed:    true,
	}

	result := formatGameState(state)

	if !strings.Contains(result, "🎉 PUZZLE COMPLETE!") {
		t.Errorf("Expected completion marker in result, got: %s", result)
	}
}

func TestFormatGameState_Stuck(t *testing.T) {
	state := &engine.GameState{
		Grid:         [][]string{{"r", "a", "t"}},
		CurrentDepth: 1,
		GameOver:     true,
		Completed:    false,
		HasDeviated:  true,
	}

	result := formatGameState(state)

	if !strings.Contains(result, "No more valid swaps") {
		t.Errorf("Expected stuck marker in result, got: %s", result)
	}
	if !strings.Contains(result, "Deviated") {
		t.Errorf("Expected deviation warning in result, got: %s", result)
	}
}

func TestFormatSwapResult_Rejected(t *testing.T) {
	swapResult := &service.SwapResult{
		Success: false,
		Message: "must swap adjacent cells",
		GameState: &engine.GameState{
			Grid: [][]string{{"c", "a", "t"}},
		},
	}

	result := formatSwapResult(swapResult)

	if !strings.Contains(result, "✗ Swap rejected") {
		t.Errorf("Expected rejection marker, got: %s", result)
	}
	if !strings.Contains(result, "must swap adjacent cells") {
		t.Errorf("Expected rejection reason, got: %s", result)
	}
}

func TestFormatGuidance(t *testing.T) {
	g := &service.Guidance{
		OnOptimalPath:  true,
		MatchedPrefix:  1,
		RemainingMoves: 2,
		NextMove: &engine.Move{
			From: engine.Coord{Row: 1, Col: 0},
			To:   engine.Coord{Row: 1, Col: 1},
		},
		NextWords: []string{"rat"},
	}

	result := formatGuidance(g)

	expectedFields := []string{
		"✓ On an optimal path",
		"Matched swaps: 1",
		"Remaining on suggested path: 2",
		"(1,0)↔(1,1)",
		"rat",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in guidance output, got: %s", field, result)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	h := &service.HistoryResponse{
		Moves: []engine.HistoryEntry{
			{
				MoveMade: engine.Move{
					From: engine.Coord{Row: 0, Col: 0},
					To:   engine.Coord{Row: 0, Col: 1},
				},
				WordsFormedByMove: []string{"cat"},
				DepthBeforeMove:   0,
			},
		},
		TotalMoves: 3,
		Page:       2,
		PageSize:   1,
		TotalPages: 3,
	}

	result := formatHistory(h)

	if !strings.HasPrefix(result, "Swap History (Page 2/3) - Total: 3") {
		t.Errorf("Unexpected history header: %s", result)
	}

	expectedFields := []string{
		"2. (0,0)↔(0,1)",
		"depth 0→1",
		"formed: cat",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in history output, got: %s", field, result)
		}
	}
}

func TestFormatAnalysis(t *testing.T) {
	a := &service.LevelAnalysis{
		LevelID:           "daily",
		Name:              "Daily Puzzle",
		Difficulty:        "medium",
		MaxDepthReached:   5,
		TreeNodeCount:     14,
		OptimalPathCount:  2,
		TerminalPathCount: 4,
		ShortestTerminal:  3,
		UniqueWordCount:   9,
		OptimalPathWords:  []string{"cat", "rat"},
	}

	result := formatAnalysis(a)

	expectedFields := []string{
		"Level Analysis: daily",
		"Optimal chain depth: 5",
		"Optimal paths: 2",
		"Terminal paths: 4 (shortest: 3 swaps)",
		"Unique words across all paths: 9",
		"cat, rat",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in analysis output, got: %s", field, result)
		}
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"WordChain Puzzle - Complete Instructions",
		"GAME OBJECTIVE:",
		"GAME MECHANICS:",
		"COORDINATES:",
		"OPTIMAL PLAY:",
		"AI AGENTS - SUCCESS STRATEGIES:",
		"SWAP COMMANDS:",
		"COMPLETION:",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
