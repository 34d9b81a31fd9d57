package publisher

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"illustrated_research_writer/apperrors"
	"illustrated_research_writer/metrics"
)

const (
	DefaultProxyTimeout  = 10 * time.Second
	DefaultProxyMaxBytes = 10 << 20
)

// Raw HTML must pass through so resolved image slots keep their markup.
var markdown = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

// RenderHTML converts a generated document to an HTML fragment.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ImageProxy fetches remote images and re-encodes them as data URIs so a
// browser-side renderer can embed them without cross-origin fetches.
type ImageProxy struct {
	client   *resty.Client
	maxBytes int64
}

func NewImageProxy(timeout time.Duration, maxBytes int64) *ImageProxy {
	if timeout <= 0 {
		timeout = DefaultProxyTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultProxyMaxBytes
	}
	return &ImageProxy{
		client: resty.New().
			SetHeader("User-Agent", "Research-Writer/1.0").
			SetTimeout(timeout),
		maxBytes: maxBytes,
	}
}

// FetchDataURI downloads rawURL and returns data:<type>;base64,<payload>.
func (p *ImageProxy) FetchDataURI(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperrors.Input("URL is required and must be an absolute http(s) address")
	}

	start := time.Now()
	body, header, err := p.download(ctx, u.String())
	metrics.RecordExternalLatency("image_proxy", time.Since(start).Seconds())
	if err != nil {
		return "", apperrors.Upstream("Failed to fetch image", err)
	}

	contentType := imageContentType(header.Get("Content-Type"), body)
	if contentType == "" {
		return "", apperrors.Upstream("Failed to fetch image", fmt.Errorf("%s is not an image", u.Redacted()))
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

// download streams the body and stops reading one byte past maxBytes.
func (p *ImageProxy) download(ctx context.Context, target string) ([]byte, http.Header, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(target)
	if err != nil {
		return nil, nil, err
	}
	if resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return nil, nil, errors.New("empty response body")
	}
	defer resp.RawBody().Close()

	if resp.IsError() {
		return nil, nil, fmt.Errorf("status %d", resp.StatusCode())
	}
	if resp.RawResponse.ContentLength > p.maxBytes {
		return nil, nil, fmt.Errorf("image exceeds %d bytes", p.maxBytes)
	}

	body, err := io.ReadAll(io.LimitReader(resp.RawBody(), p.maxBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(body)) > p.maxBytes {
		return nil, nil, fmt.Errorf("image exceeds %d bytes", p.maxBytes)
	}
	return body, resp.Header(), nil
}

// imageContentType trusts an image/* header and otherwise sniffs the payload.
// It returns "" when neither says image.
func imageContentType(header string, body []byte) string {
	if mediaType, _, _ := strings.Cut(header, ";"); strings.HasPrefix(strings.ToLower(strings.TrimSpace(mediaType)), "image/") {
		return strings.ToLower(strings.TrimSpace(mediaType))
	}
	detected := mimetype.Detect(body)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	return ""
}
