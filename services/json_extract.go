package services

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject signalisiert, dass im Text kein balanciertes {...} steckt.
var ErrNoJSONObject = errors.New("no json object found in text")

// extractFirstJSONObject returns the first balanced {...} substring of text.
// Brace depth is tracked outside of string literals only, with backslash
// escapes honored, so braces inside strings never affect the depth. The
// result is purely syntactic; whether it parses is the caller's problem.
func extractFirstJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", ErrNoJSONObject
	}

	depth := 0
	inStr := false
	esc := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case ch == '\\':
				esc = true
			case ch == '"':
				inStr = false
			}
			continue
		}
		switch ch {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	// Unbalanced: never returned to depth zero.
	return "", ErrNoJSONObject
}

// safeUnmarshalObject parst text als JSON-Objekt. Schlägt der direkte Parse
// fehl (Prosa, Markdown-Fences, abgeschnittener Output), wird das erste
// balancierte Objekt extrahiert und erneut geparst. Erst danach wird der
// Parse-Fehler propagiert.
func safeUnmarshalObject(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)

	var obj map[string]any
	direct := json.Unmarshal([]byte(text), &obj)
	if direct == nil {
		return obj, nil
	}

	maybe, err := extractFirstJSONObject(text)
	if err != nil {
		return nil, direct
	}
	if err := json.Unmarshal([]byte(maybe), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
