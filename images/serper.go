package images

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"illustrated_research_writer/metrics"
)

const DefaultSerperEndpoint = "https://google.serper.dev/images"

// ErrNoAPIKey is returned by SerperClient when no key is configured.
var ErrNoAPIKey = errors.New("SERPER_API_KEY not configured")

// tbs values understood by the Google images backend.
var sizeFilters = map[SizeHint]string{
	SizeLarge:  "isz:l",
	SizeMedium: "isz:m",
}

// SerperClient searches images through the Serper Google Images API.
type SerperClient struct {
	httpClient *resty.Client
	endpoint   string
	apiKey     string
}

var _ Source = (*SerperClient)(nil)

type serperImagesResponse struct {
	Images []serperImage `json:"images"`
}

type serperImage struct {
	Title        string `json:"title"`
	ImageURL     string `json:"imageUrl"`
	ImageWidth   int    `json:"imageWidth"`
	ImageHeight  int    `json:"imageHeight"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Source       string `json:"source"`
	Domain       string `json:"domain"`
	Link         string `json:"link"`
}

// NewSerperClient creates a client; an empty endpoint selects the public API.
func NewSerperClient(apiKey, endpoint string, timeout time.Duration) *SerperClient {
	if endpoint == "" {
		endpoint = DefaultSerperEndpoint
	}
	client := resty.New().
		SetHeader("User-Agent", "Research-Writer/1.0").
		SetTimeout(timeout)

	return &SerperClient{
		httpClient: client,
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

// Search returns up to req.Limit raw results in the order the API ranked them.
func (c *SerperClient) Search(ctx context.Context, req SearchRequest) ([]RawImage, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrNoAPIKey
	}

	body := map[string]any{
		"q": req.Query,
	}
	if req.Limit > 0 {
		body["num"] = req.Limit
	}
	if req.Language.Supported() {
		body["hl"] = req.Language.String()
	}
	if tbs, ok := sizeFilters[req.Size]; ok {
		body["tbs"] = tbs
	}

	var result serperImagesResponse
	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(c.endpoint)
	metrics.RecordExternalLatency("serper", time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("failed to query Serper images API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("Serper images API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	out := make([]RawImage, 0, len(result.Images))
	for _, img := range result.Images {
		out = append(out, RawImage{
			URL:       img.ImageURL,
			Thumbnail: img.ThumbnailURL,
			Title:     img.Title,
			Source:    orSelect(img.Source, img.Domain),
			Width:     max(img.ImageWidth, 0),
			Height:    max(img.ImageHeight, 0),
		})
	}
	if req.Limit > 0 && len(out) > req.Limit {
		out = out[:req.Limit]
	}
	return out, nil
}

func orSelect(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
