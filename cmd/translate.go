package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"illustrated_research_writer/language"
)

var translateOpts struct {
	Topic  string
	Target string
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a research topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := buildGenerator(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		tr, err := gen.Translate(cmd.Context(), translateOpts.Topic, language.Parse(translateOpts.Target))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tr.Translated)
		return err
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateOpts.Topic, "topic", "", "topic to translate")
	translateCmd.Flags().StringVar(&translateOpts.Target, "to", "", "target language: ar, en or fr")
	_ = translateCmd.MarkFlagRequired("topic")
	_ = translateCmd.MarkFlagRequired("to")
}
