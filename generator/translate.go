package generator

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"illustrated_research_writer/apperrors"
	"illustrated_research_writer/language"
)

// Translate renders topic in target through the same model used for
// documents. Without a usable answer the original topic comes back unchanged.
func (g *Generator) Translate(ctx context.Context, topic string, target language.Code) (Translation, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Translation{}, apperrors.Input("Topic is required")
	}
	if !target.Supported() {
		return Translation{}, apperrors.Inputf("unsupported target language %q", target.String())
	}

	unchanged := Translation{Original: topic, Translated: topic, Target: target}
	if g.llm == nil {
		return unchanged, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.llm.Complete(callCtx, BuildTranslatePrompt(topic, target))
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("topic", topic).Str("target", target.String()).Msg("topic translation failed")
		return unchanged, nil
	}
	translated := cleanTranslation(raw)
	if translated == "" {
		log.Ctx(ctx).Warn().Str("topic", topic).Msg("model returned empty translation")
		return unchanged, nil
	}
	return Translation{
		Original:   topic,
		Translated: translated,
		Target:     target,
		Changed:    translated != topic,
	}, nil
}

// cleanTranslation keeps the first non-empty line without wrapping quotes.
func cleanTranslation(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.Trim(line, "\"'`«»“”"))
	}
	return ""
}
