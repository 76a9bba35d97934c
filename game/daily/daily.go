// Package daily persists daily completion records for the WordChain puzzle.
//
// One record exists per (date, difficulty). A record is written when a
// session reaches the level's optimum depth, carrying a summary of the
// winning play-through for sharing and history views.
package daily

import "time"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Summary describes a completed play-through.
type Summary struct {
	History          []SummaryStep `json:"history"`
	Score            int           `json:"score"`
	UniqueWordsFound []string      `json:"uniqueWordsFound"`
	MaxScore         int           `json:"maxScore"`
	OptimalPathWords []string      `json:"optimalPathWords"`
	Difficulty       string        `json:"difficulty"`
}

// SummaryStep is one move of a completed play-through, in compact form.
type SummaryStep struct {
	From        [2]int   `json:"from"`
	To          [2]int   `json:"to"`
	WordsFormed []string `json:"wordsFormed"`
}

// Record is the stored completion state for one (date, difficulty).
type Record struct {
	Date       string   `json:"date"`
	Difficulty string   `json:"difficulty"`
	Completed  bool     `json:"completed"`
	Summary    *Summary `json:"summary,omitempty"`
}
