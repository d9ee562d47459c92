package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"acexspf/internal/metrics"
	"acexspf/internal/server"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scrape and generate API over HTTP",
	Args:  cobra.NoArgs,
	RunE:  serveRun,
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (default: :8080)")
}

func serveRun(cmd *cobra.Command, args []string) error {
	addr := cfg.Listen
	if flagListen != "" {
		addr = flagListen
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cls, err := newClassifier()
	if err != nil {
		return err
	}

	metrics.InitializeMetrics()
	srv := server.New(newExtractor(), cls, playlistOptions(cls))
	return server.Run(cmd.Context(), addr, srv.Router())
}
