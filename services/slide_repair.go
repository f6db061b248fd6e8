package services

// parseSlide ist die Grenze zwischen untrusted JSON und typisierten Slides.
// Alle defensiven Typ-Checks passieren genau hier; danach arbeitet die
// Repair-Logik nur noch auf dem Struct.
func parseSlide(m map[string]any) Slide {
	s := Slide{
		Type:         cleanString(m["type"]),
		Title:        cleanString(m["title"]),
		Subtitle:     cleanString(m["subtitle"]),
		TeacherNotes: cleanString(m["teacher_notes"]),
		Prompt:       cleanString(m["prompt"]),
		HeroImage:    cleanString(m["hero_image"]),
		Pattern:      cleanString(m["pattern"]),
		Structure:    cleanString(m["structure"]),
		Scenario:     cleanString(m["scenario"]),
	}
	if s.Type == "" {
		s.Type = SlideContext
	}

	s.Keywords = asStringList(m["keywords"])
	s.Objectives = asStringList(m["objectives"])
	s.Content = asStringList(m["content"])
	s.CommonMistakes = asStringList(m["common_mistakes"])
	s.Tasks = asStringList(m["tasks"])
	s.Summary = asStringList(m["summary"])
	s.Questions = asStringList(m["questions"])

	// "items" ist mehrdeutig: bei Vocabulary-Slides ein Legacy-Alias für
	// "vocabulary" (auch bei leerer Liste), sonst die Guided-Practice-Aufgaben.
	if s.Type == SlideVocabulary {
		s.Vocabulary = parseVocabList(pickOr(m, "vocabulary", "items"))
	} else {
		s.Vocabulary = parseVocabList(m["vocabulary"])
		s.Items = parseGuidedItems(m["items"])
	}

	s.Highlights = parseHighlights(m["highlights"])
	s.Examples = parseExamplePairs(m["examples"])
	s.Lines = parseDialogueLines(m["lines"])

	return s
}

func parseVocabList(v any) []VocabEntry {
	var out []VocabEntry
	for _, it := range asList(v) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, VocabEntry{
			Word:    cleanString(m["word"]),
			Meaning: cleanString(m["meaning"]),
			Example: cleanString(m["example"]),
			IPA:     cleanString(m["ipa"]),
		})
	}
	return out
}

func parseHighlights(v any) []ConceptHighlight {
	var out []ConceptHighlight
	for _, it := range asList(v) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, ConceptHighlight{
			Label: cleanString(m["label"]),
			Note:  cleanString(m["note"]),
		})
	}
	return out
}

func parseExamplePairs(v any) []ExamplePair {
	var out []ExamplePair
	for _, it := range asList(v) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, ExamplePair{
			EN: cleanString(m["en"]),
			TH: cleanString(m["th"]),
		})
	}
	return out
}

func parseGuidedItems(v any) []GuidedItem {
	var out []GuidedItem
	for _, it := range asList(v) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, GuidedItem{
			Q:       cleanString(m["q"]),
			Choices: asStringList(m["choices"]),
			Answer:  cleanString(m["answer"]),
		})
	}
	return out
}

func parseDialogueLines(v any) []DialogueLine {
	var out []DialogueLine
	for _, it := range asList(v) {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, DialogueLine{
			Speaker: cleanString(m["speaker"]),
			Text:    cleanString(m["text"]),
		})
	}
	return out
}

// repairSlide garantiert, dass jeder Slide genug Inhalt zum Rendern hat.
// Vorhandene, brauchbare Felder bleiben unangetastet; nur Lücken werden mit
// deterministischen Defaults gefüllt. Die Funktion kann nicht fehlschlagen.
func repairSlide(s *Slide, p Profile) {
	if !allowedSlideTypes[s.Type] {
		s.Type = SlideContext
	}

	switch s.Type {
	case SlideHook:
		if s.Prompt == "" {
			s.Prompt = "Warm-up: What would you say in this situation?"
		}
		if len(s.Keywords) == 0 {
			s.Keywords = []string{"real life", "simple", "useful"}
		}

	case SlideObjectives:
		if len(s.Objectives) < p.ObjectivesMin {
			s.Objectives = append(s.Objectives,
				"Understand the key idea",
				"Use it in speaking",
				"Practice with a partner",
			)
			if len(s.Objectives) > p.ObjectivesMax {
				s.Objectives = s.Objectives[:p.ObjectivesMax]
			}
		}

	case SlideContext:
		if len(s.Content) == 0 {
			s.Content = []string{
				"Where do we use this in real life?",
				"Who are you talking to?",
				"What do you want to achieve?",
			}
		}

	case SlideVocabulary:
		if len(s.Vocabulary) == 0 {
			s.Vocabulary = []VocabEntry{{
				Word:    "example",
				Meaning: "ตัวอย่าง / an example",
				Example: "This is an example.",
			}}
		}

	case SlideConcept:
		if s.Pattern == "" && s.Structure == "" && len(s.Content) == 0 {
			s.Pattern = "Structure / Pattern here"
		}
		if len(s.Highlights) < 2 {
			s.Highlights = []ConceptHighlight{
				{Label: "Key part", Note: "What it means"},
				{Label: "Example", Note: "How to use"},
			}
		}
		if len(s.CommonMistakes) < 1 {
			s.CommonMistakes = []string{"Common mistake example"}
		}

	case SlidePronunciation:
		if len(s.Content) == 0 {
			s.Content = []string{
				"Say the ending clearly.",
				"Practice slowly → natural speed.",
			}
		}
		if len(s.Examples) == 0 {
			s.Examples = []ExamplePair{
				{EN: "worked /wɜːrkt/", TH: "ลงท้ายเสียง /t/"},
				{EN: "wanted /ˈwɒntɪd/", TH: "ลงท้ายเสียง /ɪd/"},
			}
		}

	case SlideExamples:
		if len(s.Examples) == 0 {
			s.Examples = []ExamplePair{
				{EN: "Example sentence 1", TH: "ตัวอย่าง 1"},
				{EN: "Example sentence 2", TH: "ตัวอย่าง 2"},
			}
		}

	case SlideGuidedPractice:
		if len(s.Items) == 0 {
			s.Items = []GuidedItem{{
				Q:       "Choose the best answer.",
				Choices: []string{"A", "B", "C", "D"},
				Answer:  "A",
			}}
		}

	case SlideDialogue:
		if s.Scenario == "" {
			s.Scenario = "Role-play scenario"
		}
		if len(s.Lines) < p.DialogueMinLines {
			s.Lines = append(s.Lines,
				DialogueLine{Speaker: "A", Text: "Hello."},
				DialogueLine{Speaker: "B", Text: "Hi."},
				DialogueLine{Speaker: "A", Text: "How can I help you?"},
				DialogueLine{Speaker: "B", Text: "I'd like …"},
				DialogueLine{Speaker: "A", Text: "Sure."},
				DialogueLine{Speaker: "B", Text: "Thank you."},
			)
			if len(s.Lines) > p.DialogueMaxLines {
				s.Lines = s.Lines[:p.DialogueMaxLines]
			}
		}

	case SlideProduction:
		if len(s.Tasks) == 0 {
			s.Tasks = []string{
				"Pair work: create 3 sentences using today's pattern.",
				"Role-play: use 6 lines in a short dialogue.",
			}
		}

	case SlideReview:
		if len(s.Summary) == 0 {
			s.Summary = []string{"Key point 1", "Key point 2", "Key point 3"}
		}

	case SlideExitTicket:
		for _, q := range []string{"Write 1 sentence.", "Say it to your partner."} {
			if len(s.Questions) >= 2 {
				break
			}
			s.Questions = append(s.Questions, q)
		}
	}

	if s.Title == "" {
		s.Title = "Slide"
	}
}
