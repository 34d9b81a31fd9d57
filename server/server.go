package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"illustrated_research_writer/apperrors"
	"illustrated_research_writer/generator"
	"illustrated_research_writer/images"
	"illustrated_research_writer/language"
	"illustrated_research_writer/publisher"
)

const maxImageResults = 50

type Server struct {
	generator   *generator.Generator
	finder      *images.Finder
	proxy       *publisher.ImageProxy
	imageTarget int
}

// New wires the pipelines into an HTTP surface. imageTarget is the candidate
// count used when a search request does not ask for one.
func New(gen *generator.Generator, finder *images.Finder, proxy *publisher.ImageProxy, imageTarget int) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator required")
	}
	if finder == nil {
		return nil, errors.New("image finder required")
	}
	if proxy == nil {
		return nil, errors.New("image proxy required")
	}
	if imageTarget <= 0 {
		imageTarget = images.DefaultTargetCount
	}
	return &Server{
		generator:   gen,
		finder:      finder,
		proxy:       proxy,
		imageTarget: min(imageTarget, maxImageResults),
	}, nil
}

func (s *Server) Routes() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(cors())
	router.Use(metricsRecorder())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/generate-research", s.handleGenerateResearch)
	api.POST("/search-images", s.handleSearchImages)
	api.POST("/translate-topic", s.handleTranslateTopic)
	api.GET("/proxy-image", s.handleProxyImage)
	return router
}

// --- Handlers ---

type generateReq struct {
	Topic       string `json:"topic"`
	Language    string `json:"language"`
	IncludeHTML bool   `json:"include_html"`
}

type generateResp struct {
	Success  bool     `json:"success"`
	Content  string   `json:"content"`
	Title    string   `json:"title"`
	Digest   string   `json:"digest,omitempty"`
	Sections []string `json:"sections"`
	Slots    []int    `json:"slots"`
	Source   string   `json:"source"`
	Language string   `json:"language"`
	HTML     string   `json:"html,omitempty"`
}

type searchReq struct {
	Query      string `json:"query"`
	Language   string `json:"language"`
	MaxResults int    `json:"max_results"`
}

type searchResp struct {
	Success bool               `json:"success"`
	Images  []images.Candidate `json:"images"`
}

type translateReq struct {
	Topic          string `json:"topic"`
	TargetLanguage string `json:"target_language"`
}

type translateResp struct {
	Success         bool   `json:"success"`
	TranslatedTopic string `json:"translated_topic"`
	OriginalTopic   string `json:"original_topic"`
	TargetLanguage  string `json:"target_language"`
}

type proxyResp struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}

type errorResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleGenerateResearch(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Input("Invalid JSON body"), "")
		return
	}

	doc, err := s.generator.Generate(c.Request.Context(), req.Topic, requestLanguage(req.Language))
	if err != nil {
		writeError(c, err, "Failed to generate research")
		return
	}

	resp := generateResp{
		Success:  true,
		Content:  doc.Content,
		Title:    doc.Title,
		Digest:   doc.Digest,
		Sections: doc.Sections,
		Slots:    doc.Slots,
		Source:   doc.Source,
		Language: doc.Language.String(),
	}
	if req.IncludeHTML {
		html, err := publisher.RenderHTML(doc.Content)
		if err != nil {
			writeError(c, err, "Failed to render research")
			return
		}
		resp.HTML = html
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSearchImages(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Input("Invalid JSON body"), "")
		return
	}

	target := s.imageTarget
	if req.MaxResults > 0 {
		target = min(req.MaxResults, maxImageResults)
	}

	found, err := s.finder.Find(c.Request.Context(), req.Query, requestLanguage(req.Language), target)
	if err != nil {
		writeError(c, err, "Failed to search images")
		return
	}
	c.JSON(http.StatusOK, searchResp{Success: true, Images: found})
}

func (s *Server) handleTranslateTopic(c *gin.Context) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Input("Invalid JSON body"), "")
		return
	}

	tr, err := s.generator.Translate(c.Request.Context(), req.Topic, language.Parse(req.TargetLanguage))
	if err != nil {
		writeError(c, err, "Failed to translate topic")
		return
	}
	c.JSON(http.StatusOK, translateResp{
		Success:         true,
		TranslatedTopic: tr.Translated,
		OriginalTopic:   tr.Original,
		TargetLanguage:  tr.Target.String(),
	})
}

func (s *Server) handleProxyImage(c *gin.Context) {
	data, err := s.proxy.FetchDataURI(c.Request.Context(), c.Query("url"))
	if err != nil {
		writeError(c, err, "Failed to proxy image")
		return
	}
	c.JSON(http.StatusOK, proxyResp{Success: true, Data: data})
}

// --- Helpers ---

// requestLanguage applies the request default; validation is left to the pipelines.
func requestLanguage(raw string) language.Code {
	lang := language.Parse(raw)
	if lang == "" {
		return language.Default
	}
	return lang
}

// writeError maps an error kind to a status code. Input errors carry their own
// message; everything else is prefixed with what failed.
func writeError(c *gin.Context, err error, prefix string) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	msg := err.Error()
	kind, ok := apperrors.KindOf(err)
	switch {
	case ok && kind == apperrors.KindInput:
		status = http.StatusBadRequest
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
	case ok && (kind == apperrors.KindUpstream || kind == apperrors.KindSearch):
		status = http.StatusBadGateway
	}
	if status != http.StatusBadRequest && prefix != "" && !strings.HasPrefix(msg, prefix) {
		msg = prefix + ": " + msg
	}
	c.JSON(status, errorResp{Success: false, Error: msg})
}

const shutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("research writer HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
