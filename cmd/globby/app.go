package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var configFilePath string
var debug bool

// runApp assembles an fx application from the shared config provider and the
// command's modules, then runs action once the graph is up. A failing action
// exits the process.
func runApp(cmd *cobra.Command, modules []fx.Option, action func() error) {
	options := []fx.Option{
		// Set up all config variables to viper
		configProvider(cmd),
	}
	options = append(options, modules...)

	options = append(options, fx.Invoke(func(lc fx.Lifecycle, l *zap.Logger, sh fx.Shutdowner) {
		lc.Append(
			fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if err := action(); err != nil {
							l.Error(cmd.Name()+" encountered an error during execution", zap.Error(err))
							os.Exit(1)
						}
						if err := sh.Shutdown(); err != nil {
							l.Error("Failed to shutdown "+cmd.Name(), zap.Error(err))
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					return nil
				},
			})
	}))

	app := fx.New(fx.Options(options...))
	app.Run()
	if err := app.Stop(context.Background()); err != nil {
		return
	}
}
