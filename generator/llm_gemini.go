package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"illustrated_research_writer/metrics"
)

// GeminiLLM implements LLMClient on the Gemini API.
type GeminiLLM struct {
	Model  string
	client *genai.Client
}

func NewGeminiLLM(ctx context.Context, cfg *LLMSettings) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key missing; provide llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiLLM{Model: cfg.Model, client: client}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt.User, genai.RoleUser)}

	var gcc *genai.GenerateContentConfig
	if prompt.System != "" {
		gcc = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		}
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.Model, contents, gcc)
	metrics.RecordExternalLatency("gemini", time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	out := resp.Text()
	if out == "" {
		return "", errors.New("gemini: empty response")
	}
	return out, nil
}
