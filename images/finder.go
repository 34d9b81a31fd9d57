package images

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"illustrated_research_writer/apperrors"
	"illustrated_research_writer/language"
	"illustrated_research_writer/metrics"
)

const (
	DefaultTargetCount = 20
	maxAttempts        = 3
	maxBatch           = 50
	// batchFactor over-fetches to compensate for results lost to filtering.
	batchFactor = 3
)

// sizeRotation is cycled across attempts.
var sizeRotation = [...]SizeHint{SizeLarge, SizeMedium, SizeAny}

// Finder collects reachable, unique image candidates for a query. It keeps no
// state between calls.
type Finder struct {
	source Source
	prober Prober
}

func NewFinder(source Source, prober Prober) *Finder {
	return &Finder{source: source, prober: prober}
}

// Find makes up to three attempts against the source and returns at most
// target candidates. It fails only when every attempt failed and nothing was
// collected; a short or empty list is a successful result.
func (f *Finder) Find(ctx context.Context, query string, lang language.Code, target int) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Input("Query is required")
	}
	if target <= 0 {
		target = DefaultTargetCount
	}
	batch := min(maxBatch, target*batchFactor)
	searchQuery := NormalizeQuery(query, lang)

	candidates := make([]Candidate, 0, target)
	seen := make(map[string]struct{}, target)
	failures := 0
	var lastErr error

	for attempt := 0; attempt < maxAttempts && len(candidates) < target; attempt++ {
		size := sizeRotation[attempt%len(sizeRotation)]
		raw, err := f.source.Search(ctx, SearchRequest{
			Query:    searchQuery,
			Language: lang,
			Size:     size,
			Limit:    batch,
		})
		if err != nil {
			failures++
			lastErr = err
			metrics.RecordSearchAttempt("error")
			log.Ctx(ctx).Warn().
				Err(err).
				Str("query", query).
				Int("attempt", attempt+1).
				Int("max_attempts", maxAttempts).
				Msg("image search attempt failed")
			continue
		}
		metrics.RecordSearchAttempt("ok")

		for _, img := range raw {
			if len(candidates) >= target {
				break
			}
			if img.URL == "" {
				continue
			}
			if _, dup := seen[img.URL]; dup {
				continue
			}
			if !f.prober.Reachable(ctx, img.URL) {
				continue
			}
			seen[img.URL] = struct{}{}
			candidates = append(candidates, newCandidate(len(candidates)+1, img))
		}

		log.Ctx(ctx).Debug().
			Str("query", query).
			Int("attempt", attempt+1).
			Str("size", string(size)).
			Int("raw", len(raw)).
			Int("collected", len(candidates)).
			Msg("image search attempt finished")
	}

	if failures == maxAttempts && len(candidates) == 0 {
		return nil, apperrors.Search("Failed to search images", lastErr)
	}

	metrics.RecordCandidates(len(candidates))
	log.Ctx(ctx).Info().
		Str("query", query).
		Str("language", lang.String()).
		Int("target", target).
		Int("found", len(candidates)).
		Msg("image search completed")
	return candidates, nil
}

func newCandidate(id int, img RawImage) Candidate {
	thumb := img.Thumbnail
	if thumb == "" {
		thumb = img.URL
	}
	return Candidate{
		ID:        id,
		URL:       img.URL,
		Thumbnail: thumb,
		Title:     img.Title,
		Source:    img.Source,
		Width:     max(img.Width, 0),
		Height:    max(img.Height, 0),
	}
}
