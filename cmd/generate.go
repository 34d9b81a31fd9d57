package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"illustrated_research_writer/language"
	"illustrated_research_writer/publisher"
)

var generateOpts struct {
	Topic string
	Lang  string
	HTML  bool
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generate one research paper and print it",
	Example: "  research-writer generate --topic \"Coral reefs\" --lang en",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := buildGenerator(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		doc, err := gen.Generate(cmd.Context(), generateOpts.Topic, language.Parse(generateOpts.Lang))
		if err != nil {
			return err
		}

		out := doc.Content
		if generateOpts.HTML {
			if out, err = publisher.RenderHTML(doc.Content); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOpts.Topic, "topic", "", "research topic")
	generateCmd.Flags().StringVar(&generateOpts.Lang, "lang", string(language.Default), "output language: ar, en or fr")
	generateCmd.Flags().BoolVar(&generateOpts.HTML, "html", false, "print rendered HTML instead of Markdown")
	_ = generateCmd.MarkFlagRequired("topic")
}
