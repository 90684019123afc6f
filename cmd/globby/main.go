package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marktriggs/globby/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     "globby",
	Short:   "Expand and watch glob patterns",
	Long:    "Globby expands glob patterns against the filesystem lazily, and can keep re-listing them as directories change.",
	Version: fmt.Sprintf("gitVersion=%s, gitCommit=%s", version.GitVersion, version.GitCommit),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newWatchCommand())
}
