package main

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"Backend-FormFlow-007/src/config"
	"Backend-FormFlow-007/src/logging"
	"Backend-FormFlow-007/src/routes"
	"Backend-FormFlow-007/src/services/handoff"
	"Backend-FormFlow-007/src/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// @title        FormFlow API
// @version      1.0
// @description  Entry form validation and one-shot confirmation handoff.
// @BasePath     /
func main() {
	rootCmd := &cobra.Command{
		Use:   "formflow",
		Short: "Two-screen form workflow: entry form and confirmation",
		// ไม่ระบุ subcommand = เปิด HTTP server
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the entry form and confirmation pages over HTTP",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "tui",
			Short: "Fill in the form in the terminal",
			RunE:  runTUI,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.DotEnvLoaded {
		log.Warn("No .env file found, using process environment")
	}
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	carrier, closeCarrier, err := handoff.FromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCarrier(); err != nil {
			log.Warn("close handoff store", zap.Error(err))
		}
	}()

	app := routes.NewApp(routes.Options{
		Carrier:        carrier,
		HandoffTTL:     cfg.HandoffTTL,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         log,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("Server is running",
		zap.String("port", cfg.Port),
		zap.String("handoff", cfg.HandoffStore))
	return app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.Port)))
}

func runTUI(_ *cobra.Command, _ []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	// stdout belongs to the terminal UI
	return tui.Run(log.WithOptions(zap.IncreaseLevel(zap.ErrorLevel)))
}
