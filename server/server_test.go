package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"illustrated_research_writer/generator"
	"illustrated_research_writer/images"
	"illustrated_research_writer/publisher"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLLM struct {
	reply string
	err   error
}

func (f fakeLLM) Complete(context.Context, generator.Prompt) (string, error) {
	return f.reply, f.err
}

type fakeSource struct {
	images []images.RawImage
	err    error
}

func (f fakeSource) Search(context.Context, images.SearchRequest) ([]images.RawImage, error) {
	return f.images, f.err
}

type allReachable struct{}

func (allReachable) Reachable(context.Context, string) bool { return true }

func newTestServer(t *testing.T, llm generator.LLMClient, source images.Source) http.Handler {
	t.Helper()
	gen := generator.NewGenerator(llm, time.Second)
	finder := images.NewFinder(source, allReachable{})
	proxy := publisher.NewImageProxy(time.Second, 1<<20)
	srv, err := New(gen, finder, proxy, 5)
	require.NoError(t, err)
	return srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := map[string]any{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestNewRequiresDependencies(t *testing.T) {
	gen := generator.NewGenerator(nil, 0)
	finder := images.NewFinder(fakeSource{}, allReachable{})
	proxy := publisher.NewImageProxy(0, 0)

	_, err := New(nil, finder, proxy, 0)
	assert.Error(t, err)
	_, err = New(gen, nil, proxy, 0)
	assert.Error(t, err)
	_, err = New(gen, finder, nil, 0)
	assert.Error(t, err)

	srv, err := New(gen, finder, proxy, 500)
	require.NoError(t, err)
	assert.Equal(t, maxImageResults, srv.imageTarget)
}

func TestHealthzAndRequestID(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})

	rec, body := doJSON(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-research", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGenerateResearchFallback(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/generate-research", map[string]any{
		"topic":        "Coral reefs",
		"language":     "en",
		"include_html": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, generator.SourceFallback, body["source"])
	assert.Equal(t, "en", body["language"])
	assert.Equal(t, "Coral reefs", body["title"])
	assert.True(t, strings.HasPrefix(body["digest"].(string), "Coral reefs is an important subject"))
	assert.Equal(t, []any{float64(1), float64(2)}, body["slots"])

	content, _ := body["content"].(string)
	assert.Contains(t, content, `id="image-slot-1"`)
	assert.NotContains(t, content, "IMAGE_PLACEHOLDER")

	html, _ := body["html"].(string)
	assert.Contains(t, html, "<h1>Coral reefs</h1>")
}

func TestGenerateResearchUsesModel(t *testing.T) {
	reply := "# Bees\n\nIntro.\n\n[IMAGE_PLACEHOLDER_3]\n\n## Pollination\n\nText."
	h := newTestServer(t, fakeLLM{reply: reply}, fakeSource{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/generate-research", map[string]any{
		"topic": "Bees",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, generator.SourceLLM, body["source"])
	assert.Equal(t, "ar", body["language"])
	assert.Equal(t, []any{"Pollination"}, body["sections"])
	assert.Equal(t, []any{float64(3)}, body["slots"])
	_, hasHTML := body["html"]
	assert.False(t, hasHTML)
}

func TestGenerateResearchRejectsBadInput(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/generate-research", map[string]any{"topic": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Topic is required", body["error"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/generate-research", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body", body["error"])
}

func TestSearchImages(t *testing.T) {
	raw := make([]images.RawImage, 0, 10)
	for _, u := range []string{"a", "b", "b", "c", "", "d", "e", "f", "g"} {
		if u != "" {
			u = "https://img.example.com/" + u + ".jpg"
		}
		raw = append(raw, images.RawImage{URL: u, Title: u})
	}
	h := newTestServer(t, nil, fakeSource{images: raw})

	rec, body := doJSON(t, h, http.MethodPost, "/api/search-images", map[string]any{
		"query":    "volcano",
		"language": "fr",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	list, _ := body["images"].([]any)
	require.Len(t, list, 5)
	first := list[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "https://img.example.com/a.jpg", first["url"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/search-images", map[string]any{
		"query":       "volcano",
		"max_results": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["images"], 2)
}

func TestSearchImagesEmptyResultIsSuccess(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/search-images", map[string]any{"query": "nothing"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["images"])
}

func TestSearchImagesErrors(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{err: errors.New("quota exceeded")})

	rec, body := doJSON(t, h, http.MethodPost, "/api/search-images", map[string]any{"query": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Query is required", body["error"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/search-images", map[string]any{"query": "volcano"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "Failed to search images")
	assert.Contains(t, body["error"], "quota exceeded")
}

func TestTranslateTopic(t *testing.T) {
	h := newTestServer(t, fakeLLM{reply: "\"Les abeilles\"\n"}, fakeSource{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/translate-topic", map[string]any{
		"topic":           "Bees",
		"target_language": "FR",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Les abeilles", body["translated_topic"])
	assert.Equal(t, "Bees", body["original_topic"])
	assert.Equal(t, "fr", body["target_language"])
}

func TestTranslateTopicWithoutModelEchoes(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/translate-topic", map[string]any{
		"topic":           "Bees",
		"target_language": "ar",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bees", body["translated_topic"])

	rec, _ = doJSON(t, h, http.MethodPost, "/api/translate-topic", map[string]any{
		"topic":           "Bees",
		"target_language": "de",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProxyImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer upstream.Close()
	h := newTestServer(t, nil, fakeSource{})

	rec, body := doJSON(t, h, http.MethodGet, "/api/proxy-image?url="+url.QueryEscape(upstream.URL+"/ok.png"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(body["data"].(string), "data:image/png;base64,"))

	rec, _ = doJSON(t, h, http.MethodGet, "/api/proxy-image?url="+url.QueryEscape(upstream.URL+"/gone.png"), nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/proxy-image", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/proxy-image?url=ftp%3A%2F%2Fexample.com%2Fa.png", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, nil, fakeSource{})
	doJSON(t, h, http.MethodPost, "/api/generate-research", map[string]any{"topic": "Rain"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/generate-research")
}
