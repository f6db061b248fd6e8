package services

import (
	"reflect"
	"strings"
	"testing"
)

func TestFallbackBundleInvariants(t *testing.T) {
	for _, p := range []Profile{StandardProfile, CompactProfile} {
		t.Run(p.Name, func(t *testing.T) {
			bn := newTestNormalizer(t, p)
			b := FallbackBundle(bn, "Ordering at a Café", "Secondary", "EN+TH", "Detailed")
			checkInvariants(t, b, p)
		})
	}
}

func TestFallbackBundleContent(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)
	b := FallbackBundle(bn, "Ordering at a Café", "Secondary", "EN+TH", "Detailed")

	if b.Slides[0].Type != SlideHook {
		t.Fatalf("first slide type = %q, want hook", b.Slides[0].Type)
	}
	if b.Slides[0].Title != "Ordering at a Café" {
		t.Fatalf("hook title = %q, want topic title", b.Slides[0].Title)
	}
	if !strings.Contains(b.Slides[0].Subtitle, "Secondary") {
		t.Fatalf("hook subtitle = %q, want level", b.Slides[0].Subtitle)
	}

	// Echte Inhalte, keine Filler: kein Tile darf "Bonus Q" heißen
	for _, k := range GameSetKeys {
		for i, tile := range b.Game[k] {
			if strings.HasPrefix(tile.Question, "Bonus Q") {
				t.Fatalf("set %q tile %d is filler: %q", k, i, tile.Question)
			}
		}
	}

	// Jeder Slide trägt Teacher-Notes
	for i, s := range b.Slides {
		if s.TeacherNotes == "" {
			t.Fatalf("slide %d (%s) has no teacher notes", i, s.Type)
		}
	}
}

func TestFallbackBundleIsNormalized(t *testing.T) {
	bn := newTestNormalizer(t, StandardProfile)
	b := FallbackBundle(bn, "Topic", "Secondary", "EN", "Detailed")

	again, err := bn.Normalize(toRawObject(b))
	if err != nil {
		t.Fatalf("re-normalize error: %v", err)
	}
	if !reflect.DeepEqual(b, again) {
		t.Fatal("normalizing the fallback bundle is not a no-op")
	}
}
