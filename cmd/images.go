package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"illustrated_research_writer/language"
)

var imagesOpts struct {
	Query string
	Lang  string
	Count int
}

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Search reachable images for a query and print them as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		count := imagesOpts.Count
		if count <= 0 {
			count = cfg.Images.TargetCount
		}
		found, err := buildFinder(cfg).Find(cmd.Context(), imagesOpts.Query, language.Parse(imagesOpts.Lang), count)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	},
}

func init() {
	imagesCmd.Flags().StringVar(&imagesOpts.Query, "query", "", "search query")
	imagesCmd.Flags().StringVar(&imagesOpts.Lang, "lang", string(language.Default), "query language: ar, en or fr")
	imagesCmd.Flags().IntVar(&imagesOpts.Count, "count", 0, "number of images (defaults to images.target_count)")
	_ = imagesCmd.MarkFlagRequired("query")
}
