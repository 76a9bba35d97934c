package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Coord [2]int

func (c Coord) Row() int { return c[0] }
func (c Coord) Col() int { return c[1] }

type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

type HistoryEntry struct {
	MoveMade          Move     `json:"moveMade"`
	WordsFormedByMove []string `json:"wordsFormedByMove"`
}

type GameState struct {
	Grid         [][]string     `json:"grid"`
	CurrentDepth int            `json:"current_depth"`
	History      []HistoryEntry `json:"history"`
	HasDeviated  bool           `json:"has_deviated"`
	GameOver     bool           `json:"game_over"`
	Completed    bool           `json:"completed"`
	Message      string         `json:"message"`
}

type SessionResponse struct {
	ID        string     `json:"id"`
	LevelID   string     `json:"level_id"`
	GameState *GameState `json:"game_state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(levelID string) (*GameState, error) {
	var reqBody []byte
	var err error

	if levelID != "" {
		reqBody, err = json.Marshal(map[string]string{"level_id": levelID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

func (c *Client) GetState() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	var state GameState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

type SwapResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	GameState *GameState `json:"game_state"`
	Completed bool       `json:"completed"`
	GameOver  bool       `json:"game_over"`
}

func (c *Client) Swap(move Move) (*SwapResponse, error) {
	body, err := json.Marshal(move)
	if err != nil {
		return nil, fmt.Errorf("marshal swap: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/swap", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute swap: %w", err)
	}
	defer resp.Body.Close()

	var swapResp SwapResponse
	if err := json.NewDecoder(resp.Body).Decode(&swapResp); err != nil {
		return nil, fmt.Errorf("parse swap response: %w", err)
	}

	return &swapResp, nil
}

type UndoResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	GameState *GameState `json:"game_state"`
}

func (c *Client) Undo() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/undo", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("undo: %w", err)
	}
	defer resp.Body.Close()

	var undoResp UndoResponse
	if err := json.NewDecoder(resp.Body).Decode(&undoResp); err != nil {
		return nil, fmt.Errorf("parse undo response: %w", err)
	}
	if !undoResp.Success {
		return undoResp.GameState, fmt.Errorf("undo failed: %s", undoResp.Message)
	}

	return undoResp.GameState, nil
}

type ResetResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
}

func (c *Client) Reset() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return resetResp.State, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Puzzle server URL")
	levelID := flag.String("level", "", "Level ID to play (default: server default level)")
	continueSession := flag.String("continue", "", "Resume playing an existing session by ID")
	maxSteps := flag.Int("max-steps", 10000, "Maximum swap/undo requests before giving up")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to puzzle server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *GameState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		// Resume existing session
		client.sessionID = savedSessionID
		log.Printf("🔄 Resuming session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		} else {
			log.Printf("Session resumed - Grid: %dx%d, Depth: %d",
				len(state.Grid), len(state.Grid[0]), state.CurrentDepth)
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*levelID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("✨ Session created: %s", client.sessionID)
		log.Printf("Grid size: %dx%d", len(state.Grid), len(state.Grid[0]))

		// Save session ID for next run
		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	// Start every run from the initial grid
	log.Printf("🔄 Resetting puzzle...")
	state, err = client.Reset()
	if err != nil {
		log.Fatalf("Failed to reset puzzle: %v", err)
	}

	strategy := NewSystematicStrategy(state)

	steps := 0
	bestDepth := 0
	for steps < *maxSteps {
		steps++

		if state.CurrentDepth > bestDepth {
			bestDepth = state.CurrentDepth
		}

		if state.Completed {
			words := wordsPlayed(state)
			log.Printf("\n🎉 SOLVED! Reached depth %d in %d requests", state.CurrentDepth, steps)
			log.Printf("Words: %v", words)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}

		action := strategy.NextAction(state)
		switch action.Kind {
		case ActionSwap:
			if *verbose {
				log.Printf("Trying swap (%d,%d)↔(%d,%d) at depth %d",
					action.Move.From.Row(), action.Move.From.Col(),
					action.Move.To.Row(), action.Move.To.Col(), state.CurrentDepth)
			}
			resp, err := client.Swap(action.Move)
			if err != nil {
				log.Fatalf("Swap request failed: %v", err)
			}
			strategy.ObserveSwap(resp.Success)
			if resp.GameState != nil {
				state = resp.GameState
			}

		case ActionUndo:
			if *verbose {
				log.Printf("Backtracking from depth %d", state.CurrentDepth)
			}
			newState, err := client.Undo()
			if err != nil {
				log.Fatalf("Undo request failed: %v", err)
			}
			strategy.ObserveUndo()
			state = newState

		case ActionGiveUp:
			log.Printf("\n❌ Exhausted the search space without completing (best depth: %d)", bestDepth)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(1)
		}

		if *delayMs > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	log.Printf("\n❌ Gave up after %d requests (best depth: %d)", steps, bestDepth)
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}

func wordsPlayed(state *GameState) []string {
	var words []string
	for _, entry := range state.History {
		words = append(words, entry.WordsFormedByMove...)
	}
	return words
}
