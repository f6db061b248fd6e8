package providers

import "context"

// TextGenerator ist das Interface, das jeder LLM-Provider implementieren muss.
// Implementierungen liefern den rohen Antworttext; Parsen und Reparieren
// passiert beim Aufrufer.
type TextGenerator interface {
	// GenerateText schickt System- und User-Prompt an das Modell und gibt den
	// Antworttext zurück. Der Provider soll, wo möglich, JSON-Output erzwingen.
	GenerateText(ctx context.Context, system, user string) (string, error)

	// Name gibt den eindeutigen Namen des Providers zurück (z.B. "openai").
	Name() string
}
