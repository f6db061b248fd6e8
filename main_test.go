package main

import (
	"encoding/json"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/Gowithe/classready/models"
)

func TestScoreSubmission(t *testing.T) {
	items := []models.PracticeItem{
		{Position: 1, CorrectIndex: 0},
		{Position: 2, CorrectIndex: 2},
		{Position: 3, CorrectIndex: 1},
	}

	tests := []struct {
		name    string
		answers []int
		score   int
	}{
		{"all correct", []int{0, 2, 1}, 3},
		{"some wrong", []int{0, 0, 1}, 2},
		{"missing answers count as wrong", []int{0}, 1},
		{"extra answers ignored", []int{0, 2, 1, 3, 3}, 3},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := scoreSubmission(items, tt.answers)
			if total != len(items) {
				t.Fatalf("total = %d, want %d", total, len(items))
			}
			if score != tt.score {
				t.Fatalf("score = %d, want %d", score, tt.score)
			}
		})
	}
}

func TestGameSessionUpdates(t *testing.T) {
	t.Run("rename only keeps stored state", func(t *testing.T) {
		updates := gameSessionUpdates("new name", nil)
		if _, ok := updates["state_json"]; ok {
			t.Fatalf("state_json set without state in request: %v", updates)
		}
		if updates["name"] != "new name" {
			t.Fatalf("name = %v", updates["name"])
		}
	})

	t.Run("state only", func(t *testing.T) {
		updates := gameSessionUpdates("", json.RawMessage(`{"opened":[1]}`))
		if _, ok := updates["name"]; ok {
			t.Fatalf("name set although empty: %v", updates)
		}
		if got, ok := updates["state_json"].([]byte); !ok || string(got) != `{"opened":[1]}` {
			t.Fatalf("state_json = %v", updates["state_json"])
		}
	})

	t.Run("both", func(t *testing.T) {
		updates := gameSessionUpdates("n", json.RawMessage(`{}`))
		if len(updates) != 2 {
			t.Fatalf("updates = %v", updates)
		}
	})

	t.Run("empty request updates nothing", func(t *testing.T) {
		if updates := gameSessionUpdates("", nil); len(updates) != 0 {
			t.Fatalf("updates = %v", updates)
		}
	})
}

func TestWorksheetItemsSkipsBadChoices(t *testing.T) {
	items := []models.PracticeItem{
		{Position: 1, Question: "ok", ChoicesJSON: []byte(`["a","b","c","d"]`)},
		{Position: 2, Question: "corrupt", ChoicesJSON: []byte(`{"not`)},
		{Position: 3, Question: "empty blob"},
	}
	sheet := worksheetItems(items, 7, zap.NewNop())
	if len(sheet) != 2 {
		t.Fatalf("sheet size = %d, want 2 (corrupt row skipped)", len(sheet))
	}
	if sheet[0].Position != 1 || !reflect.DeepEqual(sheet[0].Choices, []string{"a", "b", "c", "d"}) {
		t.Fatalf("sheet[0] = %+v", sheet[0])
	}
	if sheet[1].Position != 3 {
		t.Fatalf("sheet[1] = %+v, want position 3", sheet[1])
	}
}

func TestLibraryUnitBundle(t *testing.T) {
	unit := &models.LibraryUnit{
		SlidesJSON:   []byte(`[{"type":"hook","title":"Unit 1"}]`),
		GameJSON:     []byte(`{"1":[{"question":"q","answer":"a"}]}`),
		PracticeJSON: []byte(`broken`),
	}
	raw := libraryUnitBundle(unit)
	if _, ok := raw["slides"].([]any); !ok {
		t.Fatalf("slides not decoded: %v", raw["slides"])
	}
	if _, ok := raw["game"].(map[string]any); !ok {
		t.Fatalf("game not decoded: %v", raw["game"])
	}
	if _, ok := raw["practice"]; ok {
		t.Fatalf("broken practice blob should be omitted: %v", raw["practice"])
	}

	if got := libraryUnitBundle(&models.LibraryUnit{}); len(got) != 0 {
		t.Fatalf("empty unit bundle = %v", got)
	}
}

func TestLibraryUnitAvgRating(t *testing.T) {
	tests := []struct {
		name  string
		sum   int
		count int
		want  float64
	}{
		{"no ratings", 0, 0, 0},
		{"single", 4, 1, 4},
		{"rounded up", 14, 3, 4.7},
		{"rounded down", 13, 3, 4.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := models.LibraryUnit{RatingSum: tt.sum, RatingCount: tt.count}
			if got := u.AvgRating(); got != tt.want {
				t.Fatalf("avg = %v, want %v", got, tt.want)
			}
		})
	}
}
