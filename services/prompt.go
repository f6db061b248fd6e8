package services

import (
	"fmt"
	"strings"
)

// GenerateRequest beschreibt eine gewünschte Lesson. Language steuert die
// Sprachmischung: "EN" nur Englisch, "EN+TH" Englisch mit Thai-Stützen,
// "TH" nur Thai.
type GenerateRequest struct {
	Title    string
	Level    string
	Language string
	Style    string
}

func (r *GenerateRequest) applyDefaults() {
	if r.Level == "" {
		r.Level = "Secondary"
	}
	if r.Language == "" {
		r.Language = "EN"
	}
	if r.Style == "" {
		r.Style = "Detailed"
	}
}

// systemPrompt ist bewusst knapp: die eigentliche Spezifikation steckt in der
// User-Message, das System-Prompt pinnt nur Rolle und Output-Format fest.
const systemPrompt = "You are an expert curriculum designer who creates professional, comprehensive lesson materials. Return only valid JSON, no markdown, no extra text."

// buildInstruction rendert die vollständige Generierungs-Anweisung für ein
// Topic. Die Slide-Sequenz und die Feld-Spezifikationen müssen mit dem
// decken, was parseSlide/repairSlide verstehen - neue Slide-Typen zuerst
// dort nachziehen.
func buildInstruction(req GenerateRequest, p Profile) string {
	var b strings.Builder

	b.WriteString(`You are a MASTER TEACHER and curriculum designer who creates PROFESSIONAL, READY-TO-TEACH lesson materials.

Your slides should be SO GOOD that teachers can walk into class and teach immediately without any extra preparation.

Return ONE JSON object ONLY (valid JSON, no extra text) with:
{
  "slides": [...],
  "game": {"1":[...24], "2":[...24], "3":[...24]},
  "practice": [...`)
	fmt.Fprintf(&b, "%d-%d]\n}\n", p.PracticeMin, p.PracticeMax)

	fmt.Fprintf(&b, `
========================
A) SLIDES - CREATE %d-%d SLIDES (MORE IS BETTER!)
========================
`, p.SlidesMax, p.SlidesMax+10)

	b.WriteString(`Make this lesson RICH, DETAILED, and CLASSROOM-READY!

CRITICAL RULE: SPLIT CONTENT INTO MULTIPLE SLIDES!
- Each slide should display content that fits on ONE SCREEN without scrolling
- NEVER put too much content on one slide - SPLIT into multiple slides instead
- More slides = Better! Teachers prefer many clear slides over few crowded ones

REQUIRED SLIDE SEQUENCE (follow this order):

1. hook (1 slide) - Engaging warm-up with thought-provoking question

`)
	fmt.Fprintf(&b, "2. objectives (1 slide) - %d-%d clear, measurable learning goals\n\n", p.ObjectivesMin+1, p.ObjectivesMax)
	b.WriteString(`3. context (1-2 slides) - Real-world situations where this language is used

4. vocabulary (5-8 slides) - SPLIT vocabulary across multiple slides!
   MAX 4-5 words per slide! If you have 20 words, create 4-5 vocabulary slides!
   - "Vocabulary 1" (words 1-4)
   - "Vocabulary 2" (words 5-8)
   - "Vocabulary 3" (words 9-12)
   - etc.

5. concept (2-3 slides) - Grammar patterns with highlights and common mistakes

6. pronunciation (1-2 slides) - Sound tips, stress patterns, linking

7. examples (3-5 slides) - SPLIT examples across multiple slides!
   MAX 4-5 examples per slide! If you have 15 examples, create 3-4 slides!
   - "Examples 1" (sentences 1-4)
   - "Examples 2" (sentences 5-8)
   - etc.

8. guided_practice (3-4 slides) - SPLIT practice questions!
   MAX 3-4 questions per slide!

9. dialogue (3-6 slides) - SPLIT dialogues across multiple slides!
`)
	fmt.Fprintf(&b, "   MAX %d lines per slide! If dialogue has %d lines, split into 2 slides!\n", p.DialogueMaxLines/2, p.DialogueMaxLines)
	b.WriteString(`   - "Dialogue Part 1"
   - "Dialogue Part 2"

10. production (2 slides) - Speaking/writing tasks for fluency

11. review (2 slides) - Summary + quick check questions

12. exit_ticket (1 slide) - Final assessment questions

SLIDE TYPE SPECIFICATIONS:

type="hook"
  fields: title, subtitle, prompt (engaging question), keywords (5-8), hero_image (optional), teacher_notes
  EXAMPLE: "Think about this: When was the last time you had to speak English? What did you want to say?"

type="objectives"
  fields: title, objectives (specific, measurable goals), teacher_notes
  EXAMPLE: ["Learn 15+ vocabulary words", "Master the request pattern 'Can I/Could I'", "Practice ordering in role-play"]

type="context"
  fields: title, subtitle, content (4-6 bullet points max), teacher_notes

type="vocabulary" (MAX 4-5 WORDS PER SLIDE!)
  fields: title, subtitle, vocabulary (4-5 items MAXIMUM per slide)
  Each vocabulary item MUST have:
    - word: the English word
    - meaning: Thai meaning
    - example: full sentence using the word
    - ipa: pronunciation in IPA (e.g., /ˈɔːrdər/)
  If you have 20 vocabulary words, create 4-5 separate vocabulary slides!

type="concept"
  fields: title, subtitle, pattern (clear structure), highlights (3-4 items max), common_mistakes (2-3 max), teacher_notes

type="pronunciation"
  fields: title, subtitle, content (4-5 tips max), examples (3-4 max), teacher_notes

type="examples" (MAX 4-5 EXAMPLES PER SLIDE!)
  fields: title, subtitle, examples (4-5 items MAXIMUM per slide, each with en and th), teacher_notes

type="guided_practice" (MAX 3-4 QUESTIONS PER SLIDE!)
  fields: title, subtitle, items (3-4 MCQ MAXIMUM per slide, each with q, choices[4], answer), teacher_notes

type="dialogue" (MAX 6 LINES PER SLIDE!)
  fields: title, subtitle, scenario (situation description), lines (6 lines MAXIMUM per slide), teacher_notes

type="production"
  fields: title, subtitle, tasks (4-5 activities max), teacher_notes

type="review"
  fields: title, subtitle, summary (5-6 bullet points max), teacher_notes

type="exit_ticket"
  fields: title, subtitle, questions (3-4 questions max), teacher_notes

CRITICAL REQUIREMENTS:
- SPLIT CONTENT! Never crowd a slide - create more slides instead!
- Include teacher_notes for EVERY slide (1-3 helpful sentences)
- Vocabulary slides: Include IPA pronunciation for every word
- Examples: Always include both English and Thai translation
- Dialogues: Split long dialogues into Part 1, Part 2, etc.
- Guided practice: Questions should test understanding, not memory
- Make content PRACTICAL and relevant to students' real lives

========================
B) GAME - 3 SETS x 24 TILES EACH
========================
Create engaging game content that reinforces the lesson:

Set "1": Translation & Vocabulary (Thai <-> English)
Set "2": Sentence Production (Create sentences with given patterns)
Set "3": Real-Life Situations (What would you say in this situation?)

Each tile: {"question":"", "answer":"", "points": 10|15|20}
- Easy questions: 10 points
- Medium questions: 15 points
- Hard questions: 20 points

========================
`)
	fmt.Fprintf(&b, "C) PRACTICE - %d-%d MCQ\n", p.PracticeMin, p.PracticeMax)
	b.WriteString(`========================
Create comprehensive practice questions:
- Each: {"question":"", "choices":["A","B","C","D"], "correct_index":0-3, "explain":""}
- Include questions testing vocabulary, grammar, usage, and comprehension
- Provide brief explanation for each answer
- Mix difficulty levels: 40% easy, 40% medium, 20% challenging

========================
TOPIC DETAILS
========================
`)
	fmt.Fprintf(&b, "Topic: %q\nLevel: %q\nLanguage mode: %q\nStyle: %q\n", req.Title, req.Level, req.Language, req.Style)
	b.WriteString(`
Language mode rules:
- EN: Everything in English (no Thai)
- EN+TH: English main content with Thai translations/meanings
- TH: Everything in Thai

========================
QUALITY STANDARDS
========================
- Content must be RICH ENOUGH for a 60-90 minute class
- Every slide must have SUBSTANTIAL content (no empty or minimal slides)
- Examples should be NATURAL and commonly used
- Make it PRACTICAL - students should be able to use this language TODAY
- Include TEACHER NOTES that actually help teachers teach better

Return ONLY valid JSON. No markdown, no extra text.`)

	return b.String()
}
