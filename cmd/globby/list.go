package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/marktriggs/globby/pkg/afero"
	"github.com/marktriggs/globby/pkg/lister"
	"github.com/marktriggs/globby/pkg/logging"
)

func newListCommand() *cobra.Command {
	var nullSep bool
	var showStats bool

	cmd := &cobra.Command{
		Use:   "list PATTERN [PATTERN...]",
		Short: "Expand glob patterns against the filesystem",
		Long:  "List every path matching the given absolute glob patterns. Matches are printed as the traversal finds them.",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().BoolVarP(&nullSep, "null", "0", false, "separate paths with NUL instead of newline")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print traversal counters to stderr")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		var factory lister.Factory
		modules := []fx.Option{
			afero.Module,
			logging.Module,
			lister.Module,
			fx.Populate(&factory),
		}
		runApp(cmd, modules, func() error {
			return listPatterns(os.Stdout, factory, args, nullSep, showStats)
		})
	}

	return cmd
}

// listPatterns expands each pattern in turn, printing matches as they arrive.
// Failures are collected so one bad pattern does not hide the others.
func listPatterns(w io.Writer, factory lister.Factory, patterns []string, nullSep, showStats bool) error {
	sep := byte('\n')
	if nullSep {
		sep = 0
	}

	out := bufio.NewWriter(w)
	defer func() { _ = out.Flush() }()

	var result *multierror.Error
	for _, pattern := range patterns {
		l, err := factory.ListFiles(pattern)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		for l.Next() {
			_, _ = out.WriteString(l.Path())
			_ = out.WriteByte(sep)
		}
		if err := l.Err(); err != nil {
			result = multierror.Append(result, err)
		}

		if showStats {
			st := l.Stats()
			_, _ = fmt.Fprintf(os.Stderr, "%s: %d matches, %d dirs opened, %d entries seen, %d soft failures\n",
				pattern, st.Matches, st.DirsOpened, st.EntriesSeen, st.SoftFailures)
		}
		_ = l.Close()
	}

	return result.ErrorOrNil()
}
