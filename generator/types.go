package generator

import "illustrated_research_writer/language"

// Content sources recorded on a Document.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Document is one generated research paper with its image slots resolved.
type Document struct {
	Topic    string
	Language language.Code
	Content  string
	Title    string
	Digest   string
	Sections []string
	Slots    []int
	Source   string
}

// Translation is the result of translating a topic. Changed is false when the
// original topic was returned because no translation was available.
type Translation struct {
	Original   string
	Translated string
	Target     language.Code
	Changed    bool
}
