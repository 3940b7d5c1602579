package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/safing/darray/base/log"
)

type options struct {
	rows    int
	cols    int
	mod     int
	format  string
	sort    string
	unique  bool
	dump    bool
	logFlag string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "darray-matrix",
		Short: "Build a matrix as an array of arrays and print it",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Start(opts.logFlag, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return run(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Shutdown()
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.rows, "rows", "r", 3, "amount of rows")
	flags.IntVarP(&opts.cols, "cols", "c", 4, "amount of columns")
	flags.IntVar(&opts.mod, "mod", 0, "store every value modulo this number (0 disables)")
	flags.StringVarP(&opts.format, "format", "f", formatText, "output format [text|json]")
	flags.StringVar(&opts.sort, "sort", sortNone, "sort every row [none|asc|desc]")
	flags.BoolVar(&opts.unique, "unique", false, "remove adjacent duplicates in every row")
	flags.BoolVar(&opts.dump, "dump", false, "dump the row values after printing")
	cmd.PersistentFlags().StringVar(&opts.logFlag, "log", "info", "set log level to [trace|debug|info|warning|error|critical]")

	return cmd
}

func (opts *options) validate() error {
	switch {
	case opts.rows < 0 || opts.cols < 0:
		return errors.New("rows and columns must not be negative")
	case opts.mod < 0:
		return errors.New("modulo must not be negative")
	}

	switch opts.format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	switch opts.sort {
	case sortNone, sortAsc, sortDesc:
	default:
		return fmt.Errorf("unknown sort order %q", opts.sort)
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Shutdown()
		os.Exit(1)
	}
}
