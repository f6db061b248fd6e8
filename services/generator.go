package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gowithe/classready/providers"
)

// LessonGenerator orchestriert die Bundle-Erzeugung: Prompt bauen, Provider
// fragen, Antwort parsen, normalisieren. Jeder Fehler auf diesem Weg endet
// im Fallback-Bundle - Generate gibt nie einen Fehler an den Aufrufer zurück,
// der Web-Layer bekommt immer ein unterrichtbares Bundle.
type LessonGenerator struct {
	provider   providers.TextGenerator // nil = kein API-Key konfiguriert
	normalizer *BundleNormalizer
	timeout    time.Duration
	logger     *zap.Logger
}

// NewLessonGenerator erstellt einen Generator. provider darf nil sein, dann
// liefert Generate direkt das Fallback-Bundle.
func NewLessonGenerator(provider providers.TextGenerator, normalizer *BundleNormalizer, timeout time.Duration, logger *zap.Logger) *LessonGenerator {
	return &LessonGenerator{
		provider:   provider,
		normalizer: normalizer,
		timeout:    timeout,
		logger:     logger,
	}
}

// Generate erzeugt ein normalisiertes Lesson-Bundle für das Topic. Das
// zweite Ergebnis meldet, ob der Fallback verwendet wurde (für Metriken
// und die API-Antwort).
func (g *LessonGenerator) Generate(ctx context.Context, req GenerateRequest) (Bundle, bool) {
	req.applyDefaults()

	if g.provider == nil {
		g.logger.Info("no text provider configured, using fallback bundle",
			zap.String("title", req.Title))
		return g.fallback(req), true
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.provider.GenerateText(ctx, systemPrompt, buildInstruction(req, g.normalizer.Profile()))
	if err != nil {
		g.logger.Warn("bundle generation failed, using fallback",
			zap.String("provider", g.provider.Name()),
			zap.String("title", req.Title),
			zap.Error(err))
		return g.fallback(req), true
	}

	raw, err := safeUnmarshalObject(text)
	if err != nil {
		g.logger.Warn("provider response was not parseable json, using fallback",
			zap.String("provider", g.provider.Name()),
			zap.String("title", req.Title),
			zap.Int("response_len", len(text)),
			zap.Error(err))
		return g.fallback(req), true
	}

	b, err := g.normalizer.Normalize(raw)
	if err != nil {
		// Nur möglich, wenn raw kein Objekt ist - safeUnmarshalObject
		// garantiert das Gegenteil. Trotzdem: Fallback statt Panik.
		g.logger.Error("normalize rejected parsed object, using fallback",
			zap.String("title", req.Title), zap.Error(err))
		return g.fallback(req), true
	}

	g.logger.Info("bundle generated",
		zap.String("provider", g.provider.Name()),
		zap.String("title", req.Title),
		zap.Int("slides", len(b.Slides)),
		zap.Int("practice", len(b.Practice)))
	return b, false
}

func (g *LessonGenerator) fallback(req GenerateRequest) Bundle {
	return FallbackBundle(g.normalizer, req.Title, req.Level, req.Language, req.Style)
}
