package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"visab/internal/api"
	"visab/internal/logger"
)

func serveCmd(cfgPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bot over HTTP (/get and /predict)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			log, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Production: cfg.Log.Production})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			stopWatch, err := a.watchDocument()
			if err != nil {
				return err
			}
			defer stopWatch()

			srv := api.New(cfg.Server, a.bot, a.summarizer, cfg.Summarizer.MaxSentences, log)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Run() }()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case s := <-sig:
				log.Info("shutting down", zap.String("signal", s.String()))
			}
			return srv.Shutdown(5 * time.Second)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
