package images

import (
	"context"

	"illustrated_research_writer/language"
)

// Candidate is an image offered to the caller. IDs are assigned by the Finder
// and are dense from 1 within one response.
type Candidate struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// RawImage is a result as the image source returned it, before filtering.
type RawImage struct {
	URL       string
	Thumbnail string
	Title     string
	Source    string
	Width     int
	Height    int
}

// SizeHint narrows the size of images the source should return.
type SizeHint string

const (
	SizeLarge  SizeHint = "large"
	SizeMedium SizeHint = "medium"
	SizeAny    SizeHint = ""
)

// SearchRequest is one call to an image source.
type SearchRequest struct {
	Query    string
	Language language.Code
	Size     SizeHint
	Limit    int
}

// Source is a third-party image search.
type Source interface {
	Search(ctx context.Context, req SearchRequest) ([]RawImage, error)
}

// Prober decides whether a URL serves an accepted image. It never fails; any
// problem means false.
type Prober interface {
	Reachable(ctx context.Context, url string) bool
}
