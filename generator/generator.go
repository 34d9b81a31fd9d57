package generator

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"illustrated_research_writer/apperrors"
	"illustrated_research_writer/language"
	"illustrated_research_writer/metrics"
)

const defaultTimeout = 60 * time.Second

// Generator turns a topic into a research document. It holds no per-request
// state and may be shared between requests.
type Generator struct {
	llm     LLMClient
	timeout time.Duration
}

// NewGenerator accepts a nil llm; every document then comes from the fallback
// table.
func NewGenerator(llm LLMClient, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{llm: llm, timeout: timeout}
}

// Generate builds the prompt, obtains content from the model or the fallback
// table, resolves image placeholders and outlines the result. A model failure
// is absorbed by the fallback and never retried.
func (g *Generator) Generate(ctx context.Context, topic string, lang language.Code) (Document, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Document{}, apperrors.Input("Topic is required")
	}
	if !lang.Supported() {
		log.Ctx(ctx).Debug().Str("language", lang.String()).Msg("unsupported language, using default")
		lang = language.Default
	}

	prompt := BuildResearchPrompt(topic, lang)
	raw, source := g.content(ctx, prompt, topic, lang)

	content := ResolvePlaceholders(raw, lang)
	out := extractOutline(content)
	if out.Title == "" {
		out.Title = topic
	}

	metrics.RecordDocument(source)
	log.Ctx(ctx).Info().
		Str("topic", topic).
		Str("language", lang.String()).
		Str("source", source).
		Int("sections", len(out.Sections)).
		Msg("research document generated")

	return Document{
		Topic:    topic,
		Language: lang,
		Content:  content,
		Title:    out.Title,
		Digest:   out.Digest,
		Sections: out.Sections,
		Slots:    PlaceholderSlots(content),
		Source:   source,
	}, nil
}

func (g *Generator) content(ctx context.Context, prompt Prompt, topic string, lang language.Code) (string, string) {
	if g.llm == nil {
		return FallbackDocument(topic, lang), SourceFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.llm.Complete(callCtx, prompt)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("topic", topic).Msg("text generation failed, serving fallback document")
		return FallbackDocument(topic, lang), SourceFallback
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		log.Ctx(ctx).Warn().Str("topic", topic).Msg("model returned empty markdown, serving fallback document")
		return FallbackDocument(topic, lang), SourceFallback
	}
	return raw, SourceLLM
}
