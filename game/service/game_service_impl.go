package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sudorandom/wordchain/game/daily"
	"github.com/sudorandom/wordchain/game/engine"
)

// ErrLevelNotFound is returned when a requested level does not exist.
var ErrLevelNotFound = errors.New("level not found")

// ErrSessionNotFound is returned when a requested session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	levels   LevelManager
	daily    *daily.Store
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, levels LevelManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		levels:   levels,
	}
}

// NewGameServiceWithDaily creates a game service that records daily
// completions in the given store.
func NewGameServiceWithDaily(sessions SessionManager, levels LevelManager, store *daily.Store) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		levels:   levels,
		daily:    store,
	}
}

// CreateSession creates a new puzzle session
func (s *gameServiceImpl) CreateSession(ctx context.Context, levelID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var level *engine.Level
	var err error
	if levelID != "" {
		level, err = s.levels.LoadLevel(levelID)
		if err != nil {
			if errors.Is(err, ErrLevelNotFound) {
				available, listErr := s.levels.ListLevels()
				if listErr == nil && len(available) > 0 {
					var ids []string
					for _, info := range available {
						ids = append(ids, info.LevelID)
					}
					return nil, fmt.Errorf("level '%s' not found. Available levels: %v", levelID, ids)
				}
				return nil, fmt.Errorf("level '%s' not found. Use /api/levels to list available levels", levelID)
			}
			return nil, fmt.Errorf("failed to load level %s: %w", levelID, err)
		}
	} else {
		level = s.levels.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", levelID, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Swap attempts to swap two adjacent cells for a session
func (s *gameServiceImpl) Swap(ctx context.Context, sessionID string, from, to engine.Coord) (*SwapResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	res := sess.Engine.PerformSwap(from, to)
	state := sess.Engine.GetState()

	result := &SwapResult{
		Success:     res.Success,
		Message:     res.Message,
		WordsFormed: res.WordsFormed,
		Move:        res.Move,
		GameState:   state,
		Completed:   state.Completed,
		GameOver:    state.GameOver,
	}

	if res.Success && state.Completed {
		result.DailyRecorded = s.recordDailyCompletion(ctx, sess)
	}

	// Auto-save session after a successful swap
	if res.Success {
		if err := s.sessions.Save(sessionID); err != nil {
			log.Warn().Err(err).Str("session", sessionID).Msg("failed to persist session after swap")
		}
	}

	return result, nil
}

// Undo reverts the most recent swap for a session
func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*UndoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	res := sess.Engine.UndoLastMove()
	result := &UndoResult{
		Success:    res.Success,
		UndoneMove: res.UndoneMove,
		GameState:  sess.Engine.GetState(),
	}
	if !res.Success {
		result.Message = "nothing to undo"
	}

	if res.Success {
		if err := s.sessions.Save(sessionID); err != nil {
			log.Warn().Err(err).Str("session", sessionID).Msg("failed to persist session after undo")
		}
	}

	return result, nil
}

// Reset restores a session's puzzle to its initial grid
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()

	if err := s.sessions.Save(sessionID); err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("failed to persist session after reset")
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.HistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	if moves == nil {
		moves = []engine.HistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// GetGuidance suggests the best continuation from the session's position
func (s *gameServiceImpl) GetGuidance(ctx context.Context, sessionID string) (*Guidance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	state := sess.Engine.GetState()
	chain := engine.LongestWordChain(sess.Engine.GetLevel(), state.History)

	matched := 0
	for matched < len(state.History) && matched < len(chain) {
		if !state.History[matched].MoveMade.Equals(chain[matched].Move) {
			break
		}
		matched++
	}

	guidance := &Guidance{
		OnOptimalPath:  !state.HasDeviated && matched == len(state.History),
		HasDeviated:    state.HasDeviated,
		SuggestedPath:  &chain,
		MatchedPrefix:  matched,
		RemainingMoves: len(chain) - matched,
	}

	if matched == len(state.History) && matched < len(chain) {
		next := chain[matched]
		guidance.NextMove = &next.Move
		guidance.NextWords = next.WordsFormed
	}

	return guidance, nil
}

// ListLevels returns available levels
func (s *gameServiceImpl) ListLevels(ctx context.Context) ([]*LevelInfo, error) {
	return s.levels.ListLevels()
}

// LoadLevel loads a specific level
func (s *gameServiceImpl) LoadLevel(ctx context.Context, levelID string) (*engine.Level, error) {
	return s.levels.LoadLevel(levelID)
}

// SaveLevel saves a level to disk
func (s *gameServiceImpl) SaveLevel(ctx context.Context, levelID string, level *engine.Level) error {
	return s.levels.SaveLevel(levelID, level)
}

// AnalyzeLevel summarizes the solution space of a level
func (s *gameServiceImpl) AnalyzeLevel(ctx context.Context, levelID string) (*LevelAnalysis, error) {
	level, err := s.levels.LoadLevel(levelID)
	if err != nil {
		return nil, err
	}

	optimal := engine.OptimalPaths(level)
	terminal := engine.TerminalPaths(level)

	shortest := 0
	var allWords []string
	for i, path := range terminal {
		if i == 0 || len(path) < shortest {
			shortest = len(path)
		}
		allWords = append(allWords, path.Words()...)
	}

	var optWords []string
	if len(optimal) > 0 {
		optWords = engine.UniqueWords(optimal[0].Words())
	}

	return &LevelAnalysis{
		LevelID:           levelID,
		Name:              level.Name,
		Difficulty:        level.Difficulty,
		MaxDepthReached:   level.MaxDepthReached,
		TreeNodeCount:     engine.CountTreeNodes(level.ExplorationTree),
		OptimalPathCount:  len(optimal),
		OptimalPaths:      optimal,
		TerminalPathCount: len(terminal),
		ShortestTerminal:  shortest,
		UniqueWordCount:   len(engine.UniqueWords(allWords)),
		OptimalPathWords:  optWords,
	}, nil
}

// GetDailyRecord returns the stored completion for (date, difficulty)
func (s *gameServiceImpl) GetDailyRecord(ctx context.Context, date, difficulty string) (*daily.Record, error) {
	if s.daily == nil {
		return &daily.Record{Date: date, Difficulty: difficulty}, nil
	}
	return s.daily.GetRecord(ctx, date, difficulty)
}

// recordDailyCompletion writes a completion record for today. Levels
// without a difficulty are practice levels and are not recorded.
func (s *gameServiceImpl) recordDailyCompletion(ctx context.Context, sess *Session) bool {
	if s.daily == nil {
		return false
	}
	level := sess.Engine.GetLevel()
	if level.Difficulty == "" {
		return false
	}

	state := sess.Engine.GetState()
	played := engine.UniqueWords(state.WordsInHistory())
	chain := engine.LongestWordChain(level, state.History)
	optWords := chain.Words()

	summary := &daily.Summary{
		History:          summarySteps(state.History),
		Score:            len(played),
		UniqueWordsFound: played,
		MaxScore:         len(engine.UniqueWords(optWords)),
		OptimalPathWords: optWords,
		Difficulty:       level.Difficulty,
	}

	date := daily.DateKey(time.Now())
	if err := s.daily.RecordCompletion(ctx, date, level.Difficulty, summary); err != nil {
		log.Warn().Err(err).Str("date", date).Str("difficulty", level.Difficulty).
			Msg("failed to record daily completion")
		return false
	}
	return true
}

func summarySteps(history []engine.HistoryEntry) []daily.SummaryStep {
	steps := make([]daily.SummaryStep, 0, len(history))
	for _, entry := range history {
		steps = append(steps, daily.SummaryStep{
			From:        [2]int{entry.MoveMade.From.Row, entry.MoveMade.From.Col},
			To:          [2]int{entry.MoveMade.To.Row, entry.MoveMade.To.Col},
			WordsFormed: entry.WordsFormedByMove,
		})
	}
	return steps
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	level := sess.Engine.GetLevel()
	return &SessionInfo{
		ID:             sess.ID,
		LevelID:        sess.LevelID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		Level: &LevelInfo{
			LevelID:         sess.LevelID,
			Name:            level.Name,
			Difficulty:      level.Difficulty,
			Rows:            level.Rows(),
			Cols:            level.Cols(),
			WordLength:      level.WordLength,
			MaxDepthReached: level.MaxDepthReached,
		},
	}
}
