package cmd

import (
	"context"

	"illustrated_research_writer/config"
	"illustrated_research_writer/generator"
	"illustrated_research_writer/images"
	"illustrated_research_writer/publisher"
)

func buildGenerator(ctx context.Context, c config.Config) (*generator.Generator, error) {
	llm, err := generator.NewLLMFromSettings(ctx, generator.LLMSettings{
		Provider: c.LLM.Provider,
		Model:    c.LLM.Model,
		APIKey:   c.LLM.APIKey,
		BaseURL:  c.LLM.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return generator.NewGenerator(llm, c.LLM.Timeout()), nil
}

func buildFinder(c config.Config) *images.Finder {
	source := images.NewSerperClient(c.Images.SerperAPIKey, c.Images.Endpoint, c.Images.SearchTimeout())
	return images.NewFinder(source, images.NewHTTPProber(c.Images.ProbeTimeout()))
}

func buildProxy(c config.Config) *publisher.ImageProxy {
	return publisher.NewImageProxy(c.Proxy.Timeout(), c.Proxy.MaxBytes)
}
