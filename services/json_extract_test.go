package services

import (
	"errors"
	"testing"
)

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"prose prefix", `Here is the lesson: {"a":1}`, `{"a":1}`},
		{"prose suffix", `{"a":1} hope this helps!`, `{"a":1}`},
		{"markdown fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"nested objects", `{"a":{"b":{"c":3}}}`, `{"a":{"b":{"c":3}}}`},
		{"brace inside string", `{"q":"use { and } here"}`, `{"q":"use { and } here"}`},
		{"escaped quote inside string", `{"q":"she said \"hi}\" ok"}`, `{"q":"she said \"hi}\" ok"}`},
		{"second object ignored", `{"a":1} {"b":2}`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractFirstJSONObject(tt.in)
			if err != nil {
				t.Fatalf("extractFirstJSONObject(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("extractFirstJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractFirstJSONObjectErrors(t *testing.T) {
	for _, in := range []string{"", "no braces at all", `{"a":1`, `{"unclosed": "string}`} {
		if _, err := extractFirstJSONObject(in); !errors.Is(err, ErrNoJSONObject) {
			t.Fatalf("extractFirstJSONObject(%q): want ErrNoJSONObject, got %v", in, err)
		}
	}
}

func TestSafeUnmarshalObject(t *testing.T) {
	m, err := safeUnmarshalObject("Sure! ```json\n{\"slides\": []}\n``` done")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m["slides"]; !ok {
		t.Fatalf("expected slides key, got %v", m)
	}

	// Das Extrakt muss selbst gültiges JSON sein, sonst Fehler
	if _, err := safeUnmarshalObject(`{"a": nope}`); err == nil {
		t.Fatal("expected error for invalid object")
	}

	// Kein Objekt im Text: der Fehler des Direkt-Parses wird propagiert
	if _, err := safeUnmarshalObject("just words"); err == nil {
		t.Fatal("expected error for text without object")
	}

	// Top-Level-Array ist kein Objekt
	if _, err := safeUnmarshalObject(`[1,2,3]`); err == nil {
		t.Fatal("expected error for array input")
	}
}
