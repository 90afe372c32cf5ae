/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command pedigree runs the pedigree store handlers, either as an AWS Lambda
// function or as a local HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/pedigreestore"
	"github.com/suparena/pedigreestore/config"
	"github.com/suparena/pedigreestore/handlers"
	"github.com/suparena/pedigreestore/logging"
	"github.com/suparena/pedigreestore/pedigree"
)

var (
	// Global flags
	configPath string
	logLevel   string

	// lambda flags
	functionName string

	// serve flags
	listenAddr string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "pedigree",
	Short:         "Proband and family member store",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runRoot,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve every route over HTTP for local development",
	RunE:  runServe,
}

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run one named function in the AWS Lambda runtime",
	RunE:  runLambda,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := pedigreestore.GetVersionInfo()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pedigree version %s\n", info.Version)
		fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default from config)")
	lambdaCmd.Flags().StringVarP(&functionName, "function", "f", "", "function to run (default from config)")

	rootCmd.AddCommand(serveCmd, lambdaCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envLambdaRuntime is set by the Lambda service for custom runtimes, which
// start the bootstrap binary without arguments.
const envLambdaRuntime = "AWS_LAMBDA_RUNTIME_API"

func inLambdaRuntime() bool {
	return os.Getenv(envLambdaRuntime) != ""
}

// runRoot runs the lambda command inside the Lambda runtime and prints help
// everywhere else.
func runRoot(cmd *cobra.Command, args []string) error {
	if inLambdaRuntime() {
		return runLambda(cmd, args)
	}
	return cmd.Help()
}

func newHandlers(ctx context.Context) (*handlers.Handlers, error) {
	stores, err := pedigreestore.OpenStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &handlers.Handlers{
		Service: pedigree.NewService(stores.Probands, stores.Members),
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := newHandlers(ctx)
	if err != nil {
		return err
	}
	router, err := handlers.NewRouter(ctx, &handlers.RouterConfig{
		Fetcher: h.NewFetcher(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	addr := listenAddr
	if addr == "" {
		addr = cfg.Server.Listen
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", addr),
			zap.String("table", cfg.Table),
			zap.String("store", cfg.Store),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runLambda(cmd *cobra.Command, args []string) error {
	name := functionName
	if name == "" {
		name = cfg.Server.Function
	}

	h, err := newHandlers(cmd.Context())
	if err != nil {
		return err
	}
	fetcher := &handlers.LoggingFetcher{Logger: logger, Fetcher: h.NewFetcher()}
	fn, err := fetcher.Fetch(cmd.Context(), name)
	if err != nil {
		return err
	}

	logger.Info("starting lambda runtime", zap.String("function", name), zap.String("table", cfg.Table))
	lambda.Start(fn)
	return nil
}
