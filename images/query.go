package images

import (
	"strings"

	"illustrated_research_writer/language"
)

var querySuffixes = map[language.Code]string{
	language.Arabic:  "صور عالية الجودة",
	language.English: "high quality images",
	language.French:  "images haute qualité",
}

// NormalizeQuery appends the language's quality suffix. Unsupported languages
// get the English suffix.
func NormalizeQuery(query string, lang language.Code) string {
	return strings.TrimSpace(query) + " " + querySuffixes[lang.Or(language.English)]
}
