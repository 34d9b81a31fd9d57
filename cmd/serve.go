package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"illustrated_research_writer/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gen, err := buildGenerator(ctx, cfg)
		if err != nil {
			return err
		}
		if cfg.LLM.APIKey == "" {
			log.Warn().Str("provider", cfg.LLM.Provider).Msg("no LLM API key configured, serving fallback documents")
		}
		if cfg.Images.SerperAPIKey == "" {
			log.Warn().Msg("SERPER_API_KEY not set, image search will fail")
		}

		srv, err := server.New(gen, buildFinder(cfg), buildProxy(cfg), cfg.Images.TargetCount)
		if err != nil {
			return err
		}

		addr := cfg.ServerAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server_addr)")
}
