package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tonotes/config"
	"tonotes/middleware"
	"tonotes/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Serve loads the configuration, connects the note store and serves the API until SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatal("Invalid configuration", err)
		}
		gin.SetMode(cfg.Server.Mode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg)
		if err != nil {
			fatal("Failed to initialize", err)
		}
		defer a.Close()

		router := server.SetupRouter(server.Dependencies{
			Notes:    a.notes,
			Analysis: a.analysis,
			Gate:     a.gate,
			Health:   a.health,
		}, server.Options{
			Version:        cfg.Server.Version,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			Issuer:         cfg.Auth.Issuer,
			RateLimit: middleware.RateLimitConfig{
				Enabled: cfg.RateLimit.Enabled,
				RPS:     cfg.RateLimit.RPS,
				Burst:   cfg.RateLimit.Burst,
			},
		})

		if err := server.Run(ctx, ":"+cfg.Server.Port, router, cfg.Server.ShutdownTimeout); err != nil {
			a.Close()
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
