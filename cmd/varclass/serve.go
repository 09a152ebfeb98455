package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/variomics/varclass/infrastructure/middleware"
	"github.com/variomics/varclass/infrastructure/server"
	"github.com/variomics/varclass/internal/application"
)

type serveOptions struct {
	addr             string
	guidelines       string
	configPath       string
	geneOverlay      string
	metascoreOverlay string
	shutdownTimeout  time.Duration
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP service",
		Long: `Serve starts an HTTP service exposing POST /v1/classify along with
health and Prometheus metrics endpoints. The service shuts down
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.guidelines, "guidelines", "2023", "guideline revision to apply (2015 or 2023)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "engine configuration YAML file")
	cmd.Flags().StringVar(&opts.geneOverlay, "gene-overlay", "", "YAML overlay extending the gene knowledge base")
	cmd.Flags().StringVar(&opts.metascoreOverlay, "metascore-overlay", "", "YAML overlay extending the metascore tables")
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown deadline")

	return cmd
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	cfg := application.DefaultEngineConfig()
	if opts.configPath != "" {
		loaded, err := application.LoadEngineConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("guidelines") || opts.configPath == "" {
		cfg.GuidelineMode = opts.guidelines
	}
	if opts.geneOverlay != "" {
		cfg.GeneOverlayPath = opts.geneOverlay
	}
	if opts.metascoreOverlay != "" {
		cfg.MetascoreOverlayPath = opts.metascoreOverlay
	}

	engine, err := application.BuildEngine(cfg)
	if err != nil {
		return err
	}

	metrics := middleware.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	classifier := middleware.NewInstrumentedClassifier(engine, metrics)

	serverCfg := server.DefaultConfig()
	serverCfg.Addr = opts.addr
	serverCfg.ShutdownTimeout = opts.shutdownTimeout

	srv, err := server.New(serverCfg, classifier)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "varclass listening on %s (guidelines %s)\n",
		opts.addr, cfg.GuidelineMode)
	return srv.Run(ctx)
}
