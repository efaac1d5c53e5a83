package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API used by the browser extension",
	Long: `Serve the analysis endpoints:

  POST /analyze            text credibility
  POST /analyze-url        URL trust and threat view
  POST /analyze-profile    account credibility
  POST /analyze-complete   weighted combination
  POST /api/classify-all   FAKE/SUSPICIOUS/REAL verdicts, adjudicated when configured
  GET  /health             model slots and adjudicator state
  GET  /metrics            Prometheus metrics`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default :5000)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(a.cfg.Server, a.detector, a.metrics, a.log, server.Info{Name: appName, Version: Version})
	return srv.Run(ctx)
}
