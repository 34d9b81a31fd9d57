// Package language lists the document languages the service understands.
package language

import "strings"

// Code is an ISO 639-1 language code.
type Code string

const (
	Arabic  Code = "ar"
	English Code = "en"
	French  Code = "fr"
)

// Default is used when a request names no language or an unsupported one.
const Default = Arabic

var supported = map[Code]string{
	Arabic:  "Arabic",
	English: "English",
	French:  "French",
}

// Parse normalises raw input; it does not validate.
func Parse(raw string) Code {
	return Code(strings.ToLower(strings.TrimSpace(raw)))
}

// Supported reports whether c is one of ar, en, fr.
func (c Code) Supported() bool {
	_, ok := supported[c]
	return ok
}

// Or returns c when supported, otherwise fallback.
func (c Code) Or(fallback Code) Code {
	if c.Supported() {
		return c
	}
	return fallback
}

// Name returns the English name of the language, or the raw code.
func (c Code) Name() string {
	if name, ok := supported[c]; ok {
		return name
	}
	return string(c)
}

func (c Code) String() string {
	return string(c)
}
