package services

// Slide-Typen, die der Renderer kennt. Alles andere wird auf "context"
// heruntergestuft.
const (
	SlideHook           = "hook"
	SlideObjectives     = "objectives"
	SlideContext        = "context"
	SlideVocabulary     = "vocabulary"
	SlideConcept        = "concept"
	SlidePronunciation  = "pronunciation"
	SlideExamples       = "examples"
	SlideGuidedPractice = "guided_practice"
	SlideDialogue       = "dialogue"
	SlideProduction     = "production"
	SlideExitTicket     = "exit_ticket"
	SlideReview         = "review"
)

var allowedSlideTypes = map[string]bool{
	SlideHook:           true,
	SlideObjectives:     true,
	SlideContext:        true,
	SlideVocabulary:     true,
	SlideConcept:        true,
	SlidePronunciation:  true,
	SlideExamples:       true,
	SlideGuidedPractice: true,
	SlideDialogue:       true,
	SlideProduction:     true,
	SlideExitTicket:     true,
	SlideReview:         true,
}

// TilesPerSet ist die feste Kachelanzahl pro Game-Set.
const TilesPerSet = 24

// GameSetKeys sind die drei festen Set-Schlüssel des Spiels.
var GameSetKeys = []string{"1", "2", "3"}

// Bundle ist das kanonische Lesson-Bundle. Nach Normalize sind alle
// Invarianten erfüllt: Slide-Anzahl innerhalb des Profils, jedes Game-Set
// exakt 24 Tiles, jede Practice-Frage exakt 4 Choices.
type Bundle struct {
	Slides   []Slide               `json:"slides"`
	Game     map[string][]GameTile `json:"game"`
	Practice []PracticeQuestion    `json:"practice"`
}

// Slide ist eine getaggte Variante; Type bestimmt, welche Payload-Felder
// der Renderer liest. Felder fremder Typen bleiben leer (omitempty).
type Slide struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	TeacherNotes string `json:"teacher_notes"`

	// hook
	Prompt    string   `json:"prompt,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	HeroImage string   `json:"hero_image,omitempty"`

	// objectives
	Objectives []string `json:"objectives,omitempty"`

	// context / pronunciation (tips)
	Content []string `json:"content,omitempty"`

	// vocabulary
	Vocabulary []VocabEntry `json:"vocabulary,omitempty"`

	// concept
	Pattern        string             `json:"pattern,omitempty"`
	Structure      string             `json:"structure,omitempty"`
	Highlights     []ConceptHighlight `json:"highlights,omitempty"`
	CommonMistakes []string           `json:"common_mistakes,omitempty"`

	// pronunciation / examples
	Examples []ExamplePair `json:"examples,omitempty"`

	// guided_practice
	Items []GuidedItem `json:"items,omitempty"`

	// dialogue
	Scenario string         `json:"scenario,omitempty"`
	Lines    []DialogueLine `json:"lines,omitempty"`

	// production
	Tasks []string `json:"tasks,omitempty"`

	// review
	Summary []string `json:"summary,omitempty"`

	// exit_ticket
	Questions []string `json:"questions,omitempty"`
}

// VocabEntry ist ein Vokabel-Eintrag mit optionaler IPA-Aussprache.
type VocabEntry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
	IPA     string `json:"ipa,omitempty"`
}

// ConceptHighlight markiert einen Teil eines Grammatik-Patterns.
type ConceptHighlight struct {
	Label string `json:"label"`
	Note  string `json:"note"`
}

// ExamplePair ist ein Beispielsatz mit thailändischer Stütze.
type ExamplePair struct {
	EN string `json:"en"`
	TH string `json:"th"`
}

// GuidedItem ist eine MCQ-Aufgabe innerhalb eines Guided-Practice-Slides.
type GuidedItem struct {
	Q       string   `json:"q"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer"`
}

// DialogueLine ist eine Zeile eines Role-Play-Dialogs.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// GameTile ist eine Frage/Antwort-Kachel; Points ist immer 10, 15 oder 20.
type GameTile struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Points   int    `json:"points"`
}

// PracticeQuestion ist eine 4-Choice-MCQ mit Index der richtigen Antwort.
type PracticeQuestion struct {
	Question     string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Explain      string   `json:"explain"`
}

// Profile bündelt die mengenmäßigen Invarianten eines Bundles. Die Grenzen
// sind bewusst Konfiguration statt Konstanten; zwei Presets existieren, weil
// beide Zahlenpaare produktiv im Einsatz waren.
type Profile struct {
	Name string

	SlidesMin int
	SlidesMax int

	PracticeMin int
	PracticeMax int

	ObjectivesMin int
	ObjectivesMax int

	DialogueMinLines int
	DialogueMaxLines int
}

// StandardProfile: volle 60-90-Minuten-Lektion.
var StandardProfile = Profile{
	Name:             "standard",
	SlidesMin:        24,
	SlidesMax:        30,
	PracticeMin:      25,
	PracticeMax:      35,
	ObjectivesMin:    3,
	ObjectivesMax:    5,
	DialogueMinLines: 6,
	DialogueMaxLines: 12,
}

// CompactProfile: kürzere Lektion für 45-60 Minuten.
var CompactProfile = Profile{
	Name:             "compact",
	SlidesMin:        18,
	SlidesMax:        24,
	PracticeMin:      20,
	PracticeMax:      30,
	ObjectivesMin:    2,
	ObjectivesMax:    3,
	DialogueMinLines: 6,
	DialogueMaxLines: 10,
}

// ProfileByName liefert das benannte Preset, Default ist StandardProfile.
func ProfileByName(name string) Profile {
	if name == CompactProfile.Name {
		return CompactProfile
	}
	return StandardProfile
}
