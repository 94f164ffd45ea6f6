package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"offer_letter/internal/handlers"
	"offer_letter/internal/server"
	"offer_letter/internal/service"
	"offer_letter/internal/webhook"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook proxy",
	Long:  "Serve POST /api/submit-offer-letter and GET /api/health, relaying submissions to the configured webhook.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (default from config)")
	serveCmd.Flags().String("webhook-url", "", "upstream webhook URL")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("webhook.url", serveCmd.Flags().Lookup("webhook-url"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := appLogger()

	timeout := viper.GetDuration("webhook.timeout")
	services := service.NewProxyServiceSet(webhook.NewClient(timeout), viper.GetString("webhook.url"), log)
	apiHandler := handlers.NewHandler(services, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{Port: viper.GetString("port"), UpstreamTimeout: timeout}, apiHandler.InitRoutes())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("proxy_listening", "addr", srv.Addr(), "upstream_timeout", timeout)
		if err := srv.Run(); err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")

		// allow in-flight relays to complete
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
