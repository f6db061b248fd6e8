package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestNormalizer(t *testing.T, p Profile) *BundleNormalizer {
	t.Helper()
	return NewBundleNormalizer(p, zap.NewNop())
}

// checkInvariants prüft alle Shape-Invarianten eines normalisierten Bundles.
func checkInvariants(t *testing.T, b Bundle, p Profile) {
	t.Helper()

	if len(b.Slides) < p.SlidesMin || len(b.Slides) > p.SlidesMax {
		t.Fatalf("slide count %d outside [%d, %d]", len(b.Slides), p.SlidesMin, p.SlidesMax)
	}
	for i, s := range b.Slides {
		if !allowedSlideTypes[s.Type] {
			t.Fatalf("slide %d has unknown type %q", i, s.Type)
		}
		if s.Title == "" {
			t.Fatalf("slide %d has empty title", i)
		}
	}

	if len(b.Game) != len(GameSetKeys) {
		t.Fatalf("game has %d sets, want %d", len(b.Game), len(GameSetKeys))
	}
	for _, k := range GameSetKeys {
		tiles, ok := b.Game[k]
		if !ok {
			t.Fatalf("game set %q missing", k)
		}
		if len(tiles) != TilesPerSet {
			t.Fatalf("game set %q has %d tiles, want %d", k, len(tiles), TilesPerSet)
		}
		for i, tile := range tiles {
			if tile.Question == "" || tile.Answer == "" {
				t.Fatalf("set %q tile %d has empty question/answer", k, i)
			}
			if tile.Points != 10 && tile.Points != 15 && tile.Points != 20 {
				t.Fatalf("set %q tile %d has points %d", k, i, tile.Points)
			}
		}
	}

	if len(b.Practice) < p.PracticeMin || len(b.Practice) > p.PracticeMax {
		t.Fatalf("practice count %d outside [%d, %d]", len(b.Practice), p.PracticeMin, p.PracticeMax)
	}
	for i, q := range b.Practice {
		if q.Question == "" {
			t.Fatalf("practice %d has empty question", i)
		}
		if len(q.Choices) != 4 {
			t.Fatalf("practice %d has %d choices", i, len(q.Choices))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			t.Fatalf("practice %d has correct_index %d", i, q.CorrectIndex)
		}
	}
}

func TestNormalizeEmptyObject(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)
	b, err := bn.Normalize(map[string]any{})
	if err != nil {
		t.Fatalf("Normalize({}) error: %v", err)
	}
	checkInvariants(t, b, StandardProfile)

	// Alle Padding-Slides sind Review-Slides mit laufender Nummer
	if b.Slides[0].Type != SlideReview {
		t.Fatalf("padding slide type = %q, want review", b.Slides[0].Type)
	}
	if b.Slides[0].Title != "Review 1" {
		t.Fatalf("first padding slide title = %q", b.Slides[0].Title)
	}
}

func TestNormalizeRejectsNonObject(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)
	for _, raw := range []any{nil, "text", 42.0, []any{1, 2}, map[string]any(nil)} {
		if _, err := bn.Normalize(raw); !errors.Is(err, ErrNotObject) {
			t.Fatalf("Normalize(%v): want ErrNotObject, got %v", raw, err)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	first, err := bn.Normalize(map[string]any{
		"slides": []any{
			map[string]any{"type": "hook", "title": "Ordering Food"},
			map[string]any{"type": "mystery", "title": "Weird"},
		},
		"game": map[string]any{
			"1": []any{map[string]any{"question": "q", "answer": "a", "points": 33.0}},
		},
		"quiz": []any{
			map[string]any{"prompt": "Pick one", "options": []any{"a", "b"}},
		},
	})
	if err != nil {
		t.Fatalf("first Normalize error: %v", err)
	}
	checkInvariants(t, first, StandardProfile)

	second, err := bn.Normalize(toRawObject(first))
	if err != nil {
		t.Fatalf("second Normalize error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Normalize is not idempotent on its own output")
	}
}

func TestNormalizeSlides(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	// Doppelt verpackte Slides werden ausgepackt, Nicht-Objekte verworfen,
	// unbekannte Typen auf context heruntergestuft.
	b, err := bn.Normalize(map[string]any{
		"slides": map[string]any{
			"slides": []any{
				map[string]any{"type": "hook", "title": "Start"},
				"just a string",
				42.0,
				map[string]any{"type": "alien_type", "title": "Strange"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	checkInvariants(t, b, StandardProfile)

	if b.Slides[0].Type != SlideHook || b.Slides[0].Title != "Start" {
		t.Fatalf("slide 0 = %+v", b.Slides[0])
	}
	if b.Slides[1].Type != SlideContext || b.Slides[1].Title != "Strange" {
		t.Fatalf("unknown type not coerced to context: %+v", b.Slides[1])
	}
}

func TestNormalizeSlidesTruncation(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	var raw []any
	for i := 0; i < StandardProfile.SlidesMax+10; i++ {
		raw = append(raw, map[string]any{"type": "context", "title": "S"})
	}
	b, err := bn.Normalize(map[string]any{"slides": raw})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(b.Slides) != StandardProfile.SlidesMax {
		t.Fatalf("slide count %d, want max %d", len(b.Slides), StandardProfile.SlidesMax)
	}
}

func TestNormalizeGame(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	b, err := bn.Normalize(map[string]any{
		"game": map[string]any{
			"1": []any{
				map[string]any{"question": "ok", "answer": "ok", "points": 15.0},
				map[string]any{"question": "", "answer": "dropped"},
				map[string]any{"question": "dropped", "answer": ""},
				map[string]any{"question": "clamped low", "answer": "a", "points": 1.0},
				map[string]any{"question": "clamped high", "answer": "a", "points": 99.0},
				map[string]any{"question": "snapped", "answer": "a", "points": 18.0},
				map[string]any{"question": "stringy", "answer": "a", "points": "20"},
				map[string]any{"question": "missing points", "answer": "a"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	checkInvariants(t, b, StandardProfile)

	set := b.Game["1"]
	if set[0].Points != 15 {
		t.Fatalf("valid points changed: %d", set[0].Points)
	}
	// Leere Fragen/Antworten sind gefiltert
	if set[1].Question != "clamped low" {
		t.Fatalf("empty tiles not dropped, tile 1 = %+v", set[1])
	}
	// 1 → clamp auf 5 → snap auf 10; 99 → clamp auf 50 → snap auf 10; 18 → snap auf 10
	for i := 1; i <= 3; i++ {
		if set[i].Points != 10 {
			t.Fatalf("tile %d points = %d, want 10", i, set[i].Points)
		}
	}
	if set[4].Points != 20 {
		t.Fatalf("string points not parsed: %d", set[4].Points)
	}
	if set[5].Points != 10 {
		t.Fatalf("missing points default: %d", set[5].Points)
	}
	// Padding beginnt nach den 6 überlebenden Tiles
	if set[6].Question != "Bonus Q7" || set[6].Answer != "Any reasonable answer" || set[6].Points != 10 {
		t.Fatalf("filler tile = %+v", set[6])
	}
}

func TestNormalizeGameTruncatesBeforeFiltering(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	// 30 Roh-Tiles, die ersten 24 werden betrachtet, Tile 3 davon ist leer:
	// es bleiben 23 gültige plus ein Filler.
	var tiles []any
	for i := 0; i < 30; i++ {
		q := "q"
		if i == 2 {
			q = ""
		}
		tiles = append(tiles, map[string]any{"question": q, "answer": "a"})
	}
	b, err := bn.Normalize(map[string]any{"game": map[string]any{"2": tiles}})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	set := b.Game["2"]
	if len(set) != TilesPerSet {
		t.Fatalf("set size %d", len(set))
	}
	if set[23].Question != "Bonus Q24" {
		t.Fatalf("tile 24 = %+v, want filler", set[23])
	}
}

func TestNormalizePracticeAliases(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	item := map[string]any{"prompt": "Aliased", "options": []any{"a", "b", "c", "d"}, "correct_index": 2.0}
	for _, key := range []string{"practice", "practices", "quiz", "worksheet", "practice_questions"} {
		b, err := bn.Normalize(map[string]any{key: []any{item}})
		if err != nil {
			t.Fatalf("Normalize(%s) error: %v", key, err)
		}
		if b.Practice[0].Question != "Aliased" {
			t.Fatalf("alias %q: question = %q", key, b.Practice[0].Question)
		}
		if b.Practice[0].CorrectIndex != 2 {
			t.Fatalf("alias %q: correct_index = %d", key, b.Practice[0].CorrectIndex)
		}
	}

	// Kanonischer Schlüssel gewinnt gegen Aliasse
	b, err := bn.Normalize(map[string]any{
		"practice": []any{map[string]any{"question": "canonical", "choices": []any{"x"}}},
		"quiz":     []any{map[string]any{"question": "alias", "choices": []any{"x"}}},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if b.Practice[0].Question != "canonical" {
		t.Fatalf("priority broken: %q", b.Practice[0].Question)
	}
}

func TestNormalizePracticeItems(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	b, err := bn.Normalize(map[string]any{
		"practice": []any{
			map[string]any{"question": "few choices", "choices": []any{"only one"}},
			map[string]any{"question": "many choices", "choices": []any{"a", "b", "c", "d", "e", "f"}},
			map[string]any{"question": "numeric choices", "choices": []any{1.0, 2.0, true, "x"}},
			map[string]any{"question": "no choices list", "choices": "not a list"},
			map[string]any{"question": "", "choices": []any{"a"}},
			map[string]any{"question": "bad index", "choices": []any{"a", "b", "c", "d"}, "correct_index": 9.0},
			map[string]any{"question": "negative index", "choices": []any{"a", "b", "c", "d"}, "correct_index": -3.0},
		},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	checkInvariants(t, b, StandardProfile)

	p := b.Practice
	if got := p[0].Choices; !reflect.DeepEqual(got, []string{"only one", "Option 2", "Option 3", "Option 4"}) {
		t.Fatalf("choice padding = %v", got)
	}
	if got := p[1].Choices; !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("choice truncation = %v", got)
	}
	if got := p[2].Choices; !reflect.DeepEqual(got, []string{"1", "2", "true", "x"}) {
		t.Fatalf("choice coercion = %v", got)
	}
	// Items ohne Choices-Liste oder ohne Frage sind verworfen
	if p[3].Question != "bad index" {
		t.Fatalf("invalid items not dropped: %+v", p[3])
	}
	if p[3].CorrectIndex != 3 {
		t.Fatalf("index clamp high = %d", p[3].CorrectIndex)
	}
	if p[4].CorrectIndex != 0 {
		t.Fatalf("index clamp low = %d", p[4].CorrectIndex)
	}
	// Filler-Fragen tragen ihre Position im Text
	if p[5].Question != "(Q6) Choose the best answer." {
		t.Fatalf("filler question = %q", p[5].Question)
	}
}

func TestNormalizePracticeEmptyValueFallthrough(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)

	b, err := bn.Normalize(map[string]any{
		"practice": []any{
			// Leere Choices-Liste fällt auf "options" durch
			map[string]any{"question": "empty choices", "choices": []any{}, "options": []any{"a", "b", "c", "d"}},
			// Leere Frage fällt auf "prompt" durch
			map[string]any{"question": "", "prompt": "from prompt", "choices": []any{"a", "b", "c", "d"}},
			// Ganz ohne Choices/Options bleibt das Item und wird aufgefüllt
			map[string]any{"question": "no choices at all"},
		},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	checkInvariants(t, b, StandardProfile)

	p := b.Practice
	if got := p[0].Choices; !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("empty choices did not fall through to options: %v", got)
	}
	if p[1].Question != "from prompt" {
		t.Fatalf("empty question did not fall through to prompt: %q", p[1].Question)
	}
	if p[2].Question != "no choices at all" {
		t.Fatalf("item without choices dropped: %+v", p[2])
	}
	if got := p[2].Choices; !reflect.DeepEqual(got, []string{"Option 1", "Option 2", "Option 3", "Option 4"}) {
		t.Fatalf("missing choices not padded: %v", got)
	}
}

func TestNormalizeLogsRepairStats(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	bn := NewBundleNormalizer(StandardProfile, zap.New(core))

	_, err := bn.Normalize(map[string]any{
		"slides": []any{"not an object"},
		"game": map[string]any{
			"1": []any{map[string]any{"question": "", "answer": "dropped"}},
		},
		"practice": []any{map[string]any{"question": "", "choices": []any{"a"}}},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	entries := logs.FilterMessage("bundle repaired").All()
	if len(entries) != 1 {
		t.Fatalf("repair log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	for key, want := range map[string]int64{
		"slides_dropped":   1,
		"slides_padded":    int64(StandardProfile.SlidesMin),
		"tiles_dropped":    1,
		"practice_dropped": 1,
		"practice_padded":  int64(StandardProfile.PracticeMin),
	} {
		if got, ok := fields[key].(int64); !ok || got != want {
			t.Fatalf("field %q = %v, want %d", key, fields[key], want)
		}
	}

	// Ein bereits kanonisches Bundle erzeugt keinen Repair-Log
	b, err := bn.Normalize(map[string]any{})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	before := logs.FilterMessage("bundle repaired").Len()
	if _, err := bn.Normalize(toRawObject(b)); err != nil {
		t.Fatalf("re-normalize error: %v", err)
	}
	if logs.FilterMessage("bundle repaired").Len() != before {
		t.Fatal("re-normalizing canonical output logged repairs")
	}
}

func TestNormalizeCompactProfile(t *testing.T) {
	bn := newTestNormalizer(t, CompactProfile)
	b, err := bn.Normalize(map[string]any{})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	checkInvariants(t, b, CompactProfile)
	if len(b.Slides) != CompactProfile.SlidesMin {
		t.Fatalf("slide count %d, want %d", len(b.Slides), CompactProfile.SlidesMin)
	}
	if len(b.Practice) != CompactProfile.PracticeMin {
		t.Fatalf("practice count %d, want %d", len(b.Practice), CompactProfile.PracticeMin)
	}
}

func TestNormalizeStringCleanup(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)
	b, err := bn.Normalize(map[string]any{
		"slides": []any{
			map[string]any{"type": "  hook  ", "title": "  Spaced Out  "},
		},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if b.Slides[0].Type != SlideHook {
		t.Fatalf("type not trimmed: %q", b.Slides[0].Type)
	}
	if b.Slides[0].Title != "Spaced Out" {
		t.Fatalf("title not trimmed: %q", b.Slides[0].Title)
	}
}

func TestNormalizeFromRealJSON(t *testing.T) {
	// Durchstich über den echten Parse-Weg: safeUnmarshalObject → Normalize
	payload := `Sure, here is your lesson:
{"slides":[{"type":"vocabulary","title":"Words","items":[{"word":"order","meaning":"สั่ง"}]}],
"game":{},"practice":[]}`
	raw, err := safeUnmarshalObject(payload)
	if err != nil {
		t.Fatalf("safeUnmarshalObject error: %v", err)
	}
	bn := newTestNormalizer(t, StandardProfile)
	b, err := bn.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	checkInvariants(t, b, StandardProfile)
	if b.Slides[0].Type != SlideVocabulary || len(b.Slides[0].Vocabulary) != 1 {
		t.Fatalf("vocabulary items alias not applied: %+v", b.Slides[0])
	}
	if b.Slides[0].Vocabulary[0].Word != "order" {
		t.Fatalf("vocabulary word = %q", b.Slides[0].Vocabulary[0].Word)
	}
}

func TestBundleJSONShape(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)
	b, err := bn.Normalize(map[string]any{})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	for _, key := range []string{"slides", "game", "practice"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("bundle json missing %q", key)
		}
	}
}
