package services

import (
	"reflect"
	"testing"
)

func repairFromMap(m map[string]any, p Profile) Slide {
	s := parseSlide(m)
	repairSlide(&s, p)
	return s
}

func TestRepairSlideDefaults(t *testing.T) {
	p := StandardProfile

	t.Run("hook", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "hook"}, p)
		if s.Prompt == "" {
			t.Fatal("hook prompt not defaulted")
		}
		if len(s.Keywords) == 0 {
			t.Fatal("hook keywords not defaulted")
		}
	})

	t.Run("objectives padded and capped", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "objectives", "objectives": []any{"one"}}, p)
		if len(s.Objectives) < p.ObjectivesMin || len(s.Objectives) > p.ObjectivesMax {
			t.Fatalf("objectives count %d outside [%d, %d]", len(s.Objectives), p.ObjectivesMin, p.ObjectivesMax)
		}
		if s.Objectives[0] != "one" {
			t.Fatalf("existing objective lost: %v", s.Objectives)
		}
	})

	t.Run("objectives above min untouched", func(t *testing.T) {
		have := []any{"a", "b", "c", "d"}
		s := repairFromMap(map[string]any{"type": "objectives", "objectives": have}, p)
		if !reflect.DeepEqual(s.Objectives, []string{"a", "b", "c", "d"}) {
			t.Fatalf("objectives modified: %v", s.Objectives)
		}
	})

	t.Run("vocabulary placeholder", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "vocabulary"}, p)
		if len(s.Vocabulary) != 1 || s.Vocabulary[0].Word != "example" {
			t.Fatalf("vocabulary placeholder = %+v", s.Vocabulary)
		}
	})

	t.Run("concept", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "concept"}, p)
		if s.Pattern == "" {
			t.Fatal("concept pattern not defaulted")
		}
		if len(s.Highlights) < 2 {
			t.Fatalf("concept highlights = %+v", s.Highlights)
		}
		if len(s.CommonMistakes) < 1 {
			t.Fatal("concept common_mistakes not defaulted")
		}
	})

	t.Run("concept with content keeps pattern empty", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "concept", "content": []any{"explained in prose"}}, p)
		if s.Pattern != "" {
			t.Fatalf("pattern defaulted although content present: %q", s.Pattern)
		}
	})

	t.Run("guided practice", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "guided_practice"}, p)
		if len(s.Items) != 1 || len(s.Items[0].Choices) != 4 {
			t.Fatalf("guided practice default = %+v", s.Items)
		}
	})

	t.Run("dialogue padded", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "dialogue"}, p)
		if s.Scenario == "" {
			t.Fatal("dialogue scenario not defaulted")
		}
		if len(s.Lines) < p.DialogueMinLines || len(s.Lines) > p.DialogueMaxLines {
			t.Fatalf("dialogue lines %d outside [%d, %d]", len(s.Lines), p.DialogueMinLines, p.DialogueMaxLines)
		}
	})

	t.Run("exit ticket padded not replaced", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "exit_ticket", "questions": []any{"mine"}}, p)
		if len(s.Questions) != 2 {
			t.Fatalf("exit ticket questions = %v", s.Questions)
		}
		if s.Questions[0] != "mine" {
			t.Fatalf("existing question lost: %v", s.Questions)
		}
	})

	t.Run("title fallback", func(t *testing.T) {
		s := repairFromMap(map[string]any{"type": "review"}, p)
		if s.Title != "Slide" {
			t.Fatalf("title = %q, want Slide", s.Title)
		}
	})
}

func TestParseSlideTypeHandling(t *testing.T) {
	p := StandardProfile

	s := repairFromMap(map[string]any{}, p)
	if s.Type != SlideContext {
		t.Fatalf("missing type → %q, want context", s.Type)
	}

	s = repairFromMap(map[string]any{"type": "hologram"}, p)
	if s.Type != SlideContext {
		t.Fatalf("unknown type → %q, want context", s.Type)
	}

	s = repairFromMap(map[string]any{"type": 42.0}, p)
	if s.Type != SlideContext {
		t.Fatalf("non-string type → %q, want context", s.Type)
	}
}

func TestParseSlideItemsDisambiguation(t *testing.T) {
	items := []any{map[string]any{"word": "bill", "meaning": "บิล"}}

	// Bei Vocabulary-Slides ist "items" ein Alias für "vocabulary"
	s := parseSlide(map[string]any{"type": "vocabulary", "items": items})
	if len(s.Vocabulary) != 1 || s.Vocabulary[0].Word != "bill" {
		t.Fatalf("vocabulary alias not applied: %+v", s)
	}
	if len(s.Items) != 0 {
		t.Fatalf("items should stay empty on vocabulary slides: %+v", s.Items)
	}

	// Explizites "vocabulary" gewinnt gegen "items"
	s = parseSlide(map[string]any{
		"type":       "vocabulary",
		"vocabulary": []any{map[string]any{"word": "menu"}},
		"items":      items,
	})
	if s.Vocabulary[0].Word != "menu" {
		t.Fatalf("vocabulary key should win: %+v", s.Vocabulary)
	}

	// Leere "vocabulary"-Liste fällt auf "items" durch
	s = parseSlide(map[string]any{
		"type":       "vocabulary",
		"vocabulary": []any{},
		"items":      items,
	})
	if len(s.Vocabulary) != 1 || s.Vocabulary[0].Word != "bill" {
		t.Fatalf("empty vocabulary did not fall through to items: %+v", s.Vocabulary)
	}

	// Bei anderen Typen sind "items" Guided-Practice-Aufgaben
	s = parseSlide(map[string]any{
		"type":  "guided_practice",
		"items": []any{map[string]any{"q": "Pick", "choices": []any{"a", "b", "c", "d"}, "answer": "a"}},
	})
	if len(s.Items) != 1 || s.Items[0].Q != "Pick" {
		t.Fatalf("guided items not parsed: %+v", s.Items)
	}
}

func TestRepairSlideKeepsGoodContent(t *testing.T) {
	p := StandardProfile
	s := repairFromMap(map[string]any{
		"type":          "pronunciation",
		"title":         "Sounds",
		"subtitle":      "Linking",
		"teacher_notes": "Model clearly.",
		"content":       []any{"tip 1", "tip 2"},
		"examples": []any{
			map[string]any{"en": "Can I have", "th": "เชื่อมเสียง"},
		},
	}, p)
	if !reflect.DeepEqual(s.Content, []string{"tip 1", "tip 2"}) {
		t.Fatalf("content replaced: %v", s.Content)
	}
	if len(s.Examples) != 1 || s.Examples[0].EN != "Can I have" {
		t.Fatalf("examples replaced: %+v", s.Examples)
	}
	if s.TeacherNotes != "Model clearly." {
		t.Fatalf("teacher notes lost: %q", s.TeacherNotes)
	}
}
