package images

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"illustrated_research_writer/metrics"
)

const DefaultProbeTimeout = 5 * time.Second

var acceptedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// HTTPProber checks reachability with a HEAD request; no body is downloaded.
type HTTPProber struct {
	httpClient *resty.Client
}

var _ Prober = (*HTTPProber)(nil)

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &HTTPProber{
		httpClient: resty.New().
			SetHeader("User-Agent", "Research-Writer/1.0").
			SetTimeout(timeout),
	}
}

// Reachable is true only for a 200 answer whose content type is JPEG, PNG or WEBP.
func (p *HTTPProber) Reachable(ctx context.Context, url string) bool {
	ok := p.probe(ctx, url)
	metrics.RecordProbe(ok)
	return ok
}

func (p *HTTPProber) probe(ctx context.Context, url string) bool {
	resp, err := p.httpClient.R().SetContext(ctx).Head(url)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("url", url).Msg("image probe failed")
		return false
	}
	if resp.StatusCode() != 200 {
		return false
	}
	contentType := strings.ToLower(resp.Header().Get("Content-Type"))
	for _, accepted := range acceptedImageTypes {
		if strings.Contains(contentType, accepted) {
			return true
		}
	}
	return false
}
