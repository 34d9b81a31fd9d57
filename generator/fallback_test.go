package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"illustrated_research_writer/language"
)

func TestFallbackDocumentShape(t *testing.T) {
	for _, lang := range []language.Code{language.Arabic, language.English, language.French} {
		t.Run(lang.String(), func(t *testing.T) {
			doc := FallbackDocument("Photosynthesis", lang)

			assert.True(t, strings.HasPrefix(doc, "# Photosynthesis\n"))
			assert.GreaterOrEqual(t, strings.Count(doc, "Photosynthesis"), 3)
			assert.Equal(t, 1, strings.Count(doc, "[IMAGE_PLACEHOLDER_1]"))
			assert.Equal(t, 1, strings.Count(doc, "[IMAGE_PLACEHOLDER_2]"))
			assert.Less(t, strings.Index(doc, "[IMAGE_PLACEHOLDER_1]"), strings.Index(doc, "[IMAGE_PLACEHOLDER_2]"))
			assert.NotContains(t, doc, topicMarker)

			out := extractOutline(doc)
			assert.Equal(t, "Photosynthesis", out.Title)
			assert.Len(t, out.Sections, 5)
		})
	}
}

func TestFallbackDocumentDeterministic(t *testing.T) {
	assert.Equal(t, FallbackDocument("Tides", language.English), FallbackDocument("Tides", language.English))
	assert.Equal(t, FallbackDocument("Tides", language.Arabic), FallbackDocument("Tides", "xx"))
}
