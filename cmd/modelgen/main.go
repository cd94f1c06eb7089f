package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/modelgen/modelgen/internal/config"
	"github.com/modelgen/modelgen/internal/loader"
	"github.com/modelgen/modelgen/internal/service"
	"github.com/modelgen/modelgen/internal/telemetry"
)

// app holds what every subcommand needs, built once before the command runs
type app struct {
	cfg      *config.Config
	loader   *loader.Loader
	svc      service.ModelService
	metrics  *telemetry.Metrics
	shutdown telemetry.ShutdownFunc
}

var current = &app{}

var rootCmd = &cobra.Command{
	Use:           "modelgen",
	Short:         "Generate JSON Schema, OpenAPI and ER diagrams from an entity model",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd == versionCmd {
			return nil
		}
		return current.init(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		return current.close(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: json or yaml (default from MODELGEN_OUTPUT_FORMAT)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to this file instead of stdout")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics to stderr when done")

	rootCmd.AddCommand(generateCmd, convertCmd, validateCmd, versionCmd)
}

func (a *app) init(cmd *cobra.Command) error {
	*a = app{}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		if err := cfg.OutputFormat.UnmarshalText([]byte(format)); err != nil {
			return err
		}
	}
	if enabled, _ := cmd.Flags().GetBool("metrics"); enabled {
		cfg.MetricsEnabled = true
	}
	if cfg.Version == "dev" {
		cfg.Version = Version
	}

	a.cfg = cfg
	a.loader = loader.New(nil)
	a.shutdown = func(context.Context) error { return nil }

	opts := []service.Option{service.WithParallel(cfg.Parallel)}
	if cfg.MetricsEnabled {
		shutdown, metrics, err := telemetry.InitMetrics(cfg.Version)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}
		a.shutdown, a.metrics = shutdown, metrics
		opts = append(opts, service.WithMetrics(metrics))
	}

	a.svc = service.NewModelService(service.DefaultGenerators(cfg), opts...)
	return nil
}

func (a *app) close(cmd *cobra.Command) error {
	if a.metrics != nil {
		if err := a.metrics.WriteText(cmd.ErrOrStderr()); err != nil {
			log.Printf("Failed to write metrics: %v", err)
		}
	}
	if a.shutdown == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown metrics: %v", err)
	}
	return nil
}

// loadContext bounds reading input documents by the configured timeout
func (a *app) loadContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, a.cfg.LoadTimeout)
}

// writeResult encodes v to the --output file or to stdout
func (a *app) writeResult(cmd *cobra.Command, v any) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return encode(cmd.OutOrStdout(), v, a.cfg.OutputFormat)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := encode(file, v, a.cfg.OutputFormat); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}

// writeText writes plain text to the --output file or to stdout
func (a *app) writeText(cmd *cobra.Command, text string) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Printf("Wrote %s", path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
