package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Gowithe/classready/providers"
)

// stubProvider liefert einen festen Text oder Fehler.
type stubProvider struct {
	text string
	err  error

	gotSystem string
	gotUser   string
}

func (s *stubProvider) GenerateText(ctx context.Context, system, user string) (string, error) {
	s.gotSystem = system
	s.gotUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubProvider) Name() string { return "stub" }

func newTestGenerator(t *testing.T, provider *stubProvider) *LessonGenerator {
	t.Helper()
	bn := newTestNormalizer(t, StandardProfile)
	var p providers.TextGenerator
	if provider != nil {
		p = provider
	}
	return NewLessonGenerator(p, bn, 5*time.Second, zap.NewNop())
}

func TestGenerateWithoutProviderUsesFallback(t *testing.T) {
	g := newTestGenerator(t, nil)
	b, fallbackUsed := g.Generate(context.Background(), GenerateRequest{Title: "Polite Requests"})
	if !fallbackUsed {
		t.Fatal("expected fallback without provider")
	}
	checkInvariants(t, b, StandardProfile)
}

func TestGenerateFromValidResponse(t *testing.T) {
	stub := &stubProvider{
		text: `{"slides":[{"type":"hook","title":"Polite Requests"}],"game":{},"practice":[]}`,
	}
	g := newTestGenerator(t, stub)
	b, fallbackUsed := g.Generate(context.Background(), GenerateRequest{Title: "Polite Requests"})
	if fallbackUsed {
		t.Fatal("fallback used although response was valid")
	}
	checkInvariants(t, b, StandardProfile)
	if b.Slides[0].Title != "Polite Requests" {
		t.Fatalf("slide 0 title = %q", b.Slides[0].Title)
	}
}

func TestGenerateFromWrappedResponse(t *testing.T) {
	stub := &stubProvider{
		text: "Here you go:\n```json\n" +
			`{"slides":[{"type":"hook","title":"Wrapped"}],"game":{},"practice":[]}` +
			"\n```",
	}
	g := newTestGenerator(t, stub)
	b, fallbackUsed := g.Generate(context.Background(), GenerateRequest{Title: "Wrapped"})
	if fallbackUsed {
		t.Fatal("fallback used although object was extractable")
	}
	if b.Slides[0].Title != "Wrapped" {
		t.Fatalf("slide 0 title = %q", b.Slides[0].Title)
	}
}

func TestGenerateProviderErrorUsesFallback(t *testing.T) {
	stub := &stubProvider{err: errors.New("rate limited")}
	g := newTestGenerator(t, stub)
	b, fallbackUsed := g.Generate(context.Background(), GenerateRequest{Title: "Broken"})
	if !fallbackUsed {
		t.Fatal("expected fallback on provider error")
	}
	checkInvariants(t, b, StandardProfile)
}

func TestGenerateUnparseableResponseUsesFallback(t *testing.T) {
	for _, text := range []string{
		"I cannot create that lesson.",
		`{"slides": [truncated`,
		`[1, 2, 3]`,
	} {
		stub := &stubProvider{text: text}
		g := newTestGenerator(t, stub)
		b, fallbackUsed := g.Generate(context.Background(), GenerateRequest{Title: "Bad"})
		if !fallbackUsed {
			t.Fatalf("expected fallback for response %q", text)
		}
		checkInvariants(t, b, StandardProfile)
	}
}

func TestGeneratePromptContents(t *testing.T) {
	stub := &stubProvider{text: `{"slides":[],"game":{},"practice":[]}`}
	g := newTestGenerator(t, stub)
	g.Generate(context.Background(), GenerateRequest{
		Title:    "At the Doctor",
		Level:    "Primary",
		Language: "EN+TH",
		Style:    "Compact",
	})

	if !strings.Contains(stub.gotSystem, "curriculum designer") {
		t.Fatalf("system prompt = %q", stub.gotSystem)
	}
	for _, want := range []string{`"At the Doctor"`, `"Primary"`, `"EN+TH"`, `"Compact"`, "guided_practice", "24 TILES"} {
		if !strings.Contains(stub.gotUser, want) {
			t.Fatalf("instruction missing %q", want)
		}
	}
}

func TestGenerateRequestDefaults(t *testing.T) {
	stub := &stubProvider{text: `{"slides":[],"game":{},"practice":[]}`}
	g := newTestGenerator(t, stub)
	g.Generate(context.Background(), GenerateRequest{Title: "Only Title"})

	for _, want := range []string{`"Secondary"`, `"EN"`, `"Detailed"`} {
		if !strings.Contains(stub.gotUser, want) {
			t.Fatalf("instruction missing default %q", want)
		}
	}
}
