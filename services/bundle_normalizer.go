package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// ErrNotObject ist der einzige Fehler, den Normalize liefert: der Input war
// gar kein JSON-Objekt. Das ist ein Contract-Bruch des Aufrufers, keine
// unzuverlässige Upstream-Antwort.
var ErrNotObject = errors.New("lesson bundle must be a json object")

// BundleNormalizer repariert beliebige Bundle-artige Objekte zu einem
// kanonischen Bundle. Jede Shape-Abweichung wird still korrigiert; der Web-
// Layer verlässt sich darauf und prüft downstream nichts mehr nach.
type BundleNormalizer struct {
	profile Profile
	logger  *zap.Logger
}

// NewBundleNormalizer erstellt einen Normalizer für das gegebene Profil.
func NewBundleNormalizer(profile Profile, logger *zap.Logger) *BundleNormalizer {
	return &BundleNormalizer{profile: profile, logger: logger}
}

// Profile liefert das konfigurierte Mengen-Profil.
func (bn *BundleNormalizer) Profile() Profile {
	return bn.profile
}

// repairStats zählt, was der Normalizer korrigieren musste.
type repairStats struct {
	slidesDropped   int
	slidesPadded    int
	slidesTruncated int

	tilesDropped int
	tilesPadded  int

	practiceDropped   int
	practicePadded    int
	practiceTruncated int
}

func (st repairStats) dirty() bool {
	return st != repairStats{}
}

// Normalize ist das verpflichtende letzte Gate vor jedem Persistieren oder
// Ausliefern eines Bundles. Die Funktion ist idempotent: auf dem eigenen
// Output ist sie ein No-op.
func (bn *BundleNormalizer) Normalize(raw any) (Bundle, error) {
	m, ok := raw.(map[string]any)
	if !ok || m == nil {
		return Bundle{}, ErrNotObject
	}

	var st repairStats
	b := Bundle{
		Slides:   bn.normalizeSlides(m["slides"], &st),
		Game:     bn.normalizeGame(m["game"], &st),
		Practice: bn.normalizePractice(m, &st),
	}
	if st.dirty() {
		bn.logger.Debug("bundle repaired",
			zap.Int("slides_dropped", st.slidesDropped),
			zap.Int("slides_padded", st.slidesPadded),
			zap.Int("slides_truncated", st.slidesTruncated),
			zap.Int("tiles_dropped", st.tilesDropped),
			zap.Int("tiles_padded", st.tilesPadded),
			zap.Int("practice_dropped", st.practiceDropped),
			zap.Int("practice_padded", st.practicePadded),
			zap.Int("practice_truncated", st.practiceTruncated))
	}
	return b, nil
}

func (bn *BundleNormalizer) normalizeSlides(raw any, st *repairStats) []Slide {
	// Manche Generatoren liefern {"slides": {"slides": [...]}} - eine
	// Ebene auspacken.
	if wrapped, ok := raw.(map[string]any); ok {
		if inner, ok := wrapped["slides"]; ok {
			raw = inner
		}
	}

	p := bn.profile
	slides := make([]Slide, 0, p.SlidesMax)
	for _, it := range asList(raw) {
		m, ok := it.(map[string]any)
		if !ok {
			st.slidesDropped++
			continue
		}
		s := parseSlide(m)
		repairSlide(&s, p)
		slides = append(slides, s)
	}

	for len(slides) < p.SlidesMin {
		st.slidesPadded++
		slides = append(slides, Slide{
			Type:     SlideReview,
			Title:    fmt.Sprintf("Review %d", len(slides)+1),
			Subtitle: "Check understanding",
			Summary: []string{
				"Recall key vocabulary",
				"Recall the pattern",
				"Use it in a short sentence",
			},
			TeacherNotes: "Quick recap. Ask 2-3 students to answer.",
		})
	}
	if len(slides) > p.SlidesMax {
		st.slidesTruncated = len(slides) - p.SlidesMax
		slides = slides[:p.SlidesMax]
	}
	return slides
}

func (bn *BundleNormalizer) normalizeGame(raw any, st *repairStats) map[string][]GameTile {
	src, _ := raw.(map[string]any)

	game := make(map[string][]GameTile, len(GameSetKeys))
	for _, k := range GameSetKeys {
		var items []any
		if src != nil {
			items = asList(src[k])
		}
		if len(items) > TilesPerSet {
			items = items[:TilesPerSet]
		}

		tiles := make([]GameTile, 0, TilesPerSet)
		for _, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				st.tilesDropped++
				continue
			}
			q := cleanString(m["question"])
			a := cleanString(m["answer"])
			if q == "" || a == "" {
				st.tilesDropped++
				continue
			}
			pts := clampInt(m["points"], 5, 50, 10)
			if pts != 10 && pts != 15 && pts != 20 {
				pts = 10
			}
			tiles = append(tiles, GameTile{Question: q, Answer: a, Points: pts})
		}

		for len(tiles) < TilesPerSet {
			st.tilesPadded++
			tiles = append(tiles, GameTile{
				Question: fmt.Sprintf("Bonus Q%d", len(tiles)+1),
				Answer:   "Any reasonable answer",
				Points:   10,
			})
		}
		game[k] = tiles[:TilesPerSet]
	}
	return game
}

// Legacy-Schlüssel, unter denen ältere Generationen die Practice-Liste
// ablegten, in Prioritätsreihenfolge.
var practiceAliases = []string{"practice", "practices", "quiz", "worksheet", "practice_questions"}

func (bn *BundleNormalizer) normalizePractice(m map[string]any, st *repairStats) []PracticeQuestion {
	raw := pick(m, practiceAliases...)

	p := bn.profile
	clean := make([]PracticeQuestion, 0, p.PracticeMax)
	for _, it := range asList(raw) {
		em, ok := it.(map[string]any)
		if !ok {
			st.practiceDropped++
			continue
		}
		q := cleanString(pickOr(em, "question", "prompt"))
		// Leere Choices fallen auf "options" zurück; fehlt beides, bleibt
		// eine leere Liste und das Item wird auf 4 Optionen aufgefüllt.
		// Verworfen wird nur, wenn der Wert explizit keine Liste ist.
		rawVal := pickOr(em, "choices", "options")
		if rawVal == nil {
			rawVal = []any{}
		}
		rawChoices, isList := rawVal.([]any)
		if q == "" || !isList {
			st.practiceDropped++
			continue
		}

		choices := make([]string, 0, 4)
		for _, c := range rawChoices {
			if s := stringify(c); s != "" {
				choices = append(choices, s)
			}
		}
		for len(choices) < 4 {
			choices = append(choices, fmt.Sprintf("Option %d", len(choices)+1))
		}
		choices = choices[:4]

		clean = append(clean, PracticeQuestion{
			Question:     q,
			Choices:      choices,
			CorrectIndex: clampInt(em["correct_index"], 0, 3, 0),
			Explain:      cleanString(em["explain"]),
		})
	}

	for len(clean) < p.PracticeMin {
		st.practicePadded++
		clean = append(clean, PracticeQuestion{
			Question:     fmt.Sprintf("(Q%d) Choose the best answer.", len(clean)+1),
			Choices:      []string{"A", "B", "C", "D"},
			CorrectIndex: 0,
			Explain:      "",
		})
	}
	if len(clean) > p.PracticeMax {
		st.practiceTruncated = len(clean) - p.PracticeMax
		clean = clean[:p.PracticeMax]
	}
	return clean
}

// ---------------------------------------------------------------------------
// Coercion-Helfer: klein, total, und nur hier - die restliche Pipeline
// arbeitet auf typisierten Werten.
// ---------------------------------------------------------------------------

// cleanString trimmt und NFC-normalisiert einen String; alles andere wird "".
func cleanString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return norm.NFC.String(strings.TrimSpace(s))
}

// stringify wie cleanString, akzeptiert aber auch Zahlen und Bools
// (LLMs liefern Choices gern mal als Zahlen).
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return norm.NFC.String(strings.TrimSpace(t))
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asList liefert v als Liste oder nil.
func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// asStringList coerct eine Liste zu nicht-leeren Strings.
func asStringList(v any) []string {
	var out []string
	for _, it := range asList(v) {
		if s := stringify(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// clampInt klemmt v in [lo, hi]; nicht-numerische Werte werden zu def.
func clampInt(v any, lo, hi, def int) int {
	n := def
	switch t := v.(type) {
	case float64:
		n = int(t)
	case int:
		n = t
	case int64:
		n = int(t)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			n = i
		}
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// pick liefert den ersten vorhandenen, nicht-nil Wert der Alias-Schlüssel.
func pick(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// pickOr liefert den ersten nicht-leeren Wert der Alias-Schlüssel: nil,
// leere Strings und leere Listen fallen zum nächsten Alias durch.
func pickOr(m map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t == "" {
				continue
			}
		case []any:
			if len(t) == 0 {
				continue
			}
		}
		return v
	}
	return nil
}
