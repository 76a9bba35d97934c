package engine

import (
	"encoding/json"
	"testing"
)

func TestCoordJSON(t *testing.T) {
	c := Coord{Row: 2, Col: 5}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[2,5]" {
		t.Errorf("Expected [2,5], got %s", data)
	}

	var back Coord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != c {
		t.Errorf("Round trip mismatch: %v", back)
	}
}

func TestCoordJSON_Invalid(t *testing.T) {
	var c Coord
	if err := json.Unmarshal([]byte(`{"row":1,"col":2}`), &c); err == nil {
		t.Error("Expected error for object-form coordinate")
	}
}

func TestCoordIsAdjacent(t *testing.T) {
	tests := []struct {
		a, b Coord
		want bool
	}{
		{Coord{0, 0}, Coord{0, 1}, true},
		{Coord{0, 0}, Coord{1, 0}, true},
		{Coord{1, 1}, Coord{0, 1}, true},
		{Coord{0, 0}, Coord{1, 1}, false},
		{Coord{0, 0}, Coord{0, 2}, false},
		{Coord{0, 0}, Coord{0, 0}, false},
	}

	for _, tt := range tests {
		if got := tt.a.IsAdjacent(tt.b); got != tt.want {
			t.Errorf("IsAdjacent(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		// Adjacency is symmetric.
		if got := tt.b.IsAdjacent(tt.a); got != tt.want {
			t.Errorf("IsAdjacent(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestMoveEquals(t *testing.T) {
	m := Move{From: Coord{0, 0}, To: Coord{0, 1}}

	if !m.Equals(m) {
		t.Error("Move must equal itself")
	}
	if !m.Equals(m.Reversed()) {
		t.Error("Move must equal its reversal")
	}
	other := Move{From: Coord{1, 0}, To: Coord{1, 1}}
	if m.Equals(other) {
		t.Error("Distinct moves must not be equal")
	}
}

func TestLevelDecode(t *testing.T) {
	// The wire form a level generator produces.
	blob := `{
		"initialGrid": [["a","c","t"],["a","r","t"]],
		"minWordLength": 3,
		"wordLength": 3,
		"maxDepthReached": 2,
		"explorationTree": [
			{
				"move": {"from": [0,0], "to": [0,1]},
				"wordsFormed": ["cat"],
				"maxDepthReached": 1,
				"nextMoves": [
					{
						"move": {"from": [1,0], "to": [1,1]},
						"wordsFormed": ["rat"],
						"maxDepthReached": 0
					}
				]
			}
		]
	}`

	var level Level
	if err := json.Unmarshal([]byte(blob), &level); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if level.Rows() != 2 || level.Cols() != 3 {
		t.Errorf("Expected 2x3 grid, got %dx%d", level.Rows(), level.Cols())
	}
	root := level.ExplorationTree[0]
	if root.Move == nil || root.Move.From != (Coord{Row: 0, Col: 0}) {
		t.Errorf("Root move decoded incorrectly: %v", root.Move)
	}
	if len(root.NextMoves) != 1 || root.NextMoves[0].WordsFormed[0] != "rat" {
		t.Error("Child node decoded incorrectly")
	}
}

func TestUniqueWords(t *testing.T) {
	got := UniqueWords([]string{"cat", "Rat", "CAT", "tar", "rat"})
	want := []string{"cat", "Rat", "tar"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}
