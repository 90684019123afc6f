package main

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/marktriggs/globby/pkg/afero"
	"github.com/marktriggs/globby/pkg/lister"
	"github.com/marktriggs/globby/pkg/logging"
	"github.com/marktriggs/globby/pkg/watch"
)

func newWatchCommand() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch [PATTERN]",
		Short: "Keep re-listing a glob pattern as the filesystem changes",
		Long:  "Watch prints the pattern's full match set after every sync, one path per line with a blank line after each snapshot. The pattern comes from the argument or from watch.pattern in the config file.",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			// an explicit Set outranks the config file
			viper.Set("watch.pattern", args[0])
		}

		var (
			watcher  *watch.Watcher
			registry *prometheus.Registry
			logger   *zap.Logger
		)
		modules := []fx.Option{
			afero.Module,
			logging.Module,
			lister.Module,
			fx.Provide(
				prometheus.NewRegistry,
				func(r *prometheus.Registry) prometheus.Registerer { return r },
				func() watch.SnapshotHandler { return printSnapshot },
			),
			watch.Module,
			fx.Populate(&watcher, &registry, &logger),
		}
		runApp(cmd, modules, func() error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				serveMetrics(metricsAddr, registry, logger)
			}
			return watcher.Run(ctx)
		})
	}

	return cmd
}

// printSnapshot writes one snapshot to stdout, one path per line, with a
// blank line terminator so consumers can tell snapshots apart.
func printSnapshot(paths []string) {
	out := bufio.NewWriter(os.Stdout)
	for _, p := range paths {
		_, _ = out.WriteString(p)
		_ = out.WriteByte('\n')
	}
	_ = out.WriteByte('\n')
	_ = out.Flush()
}

func serveMetrics(addr string, registry *prometheus.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	watch.RegisterMetricsHandler(mux, registry)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
}
