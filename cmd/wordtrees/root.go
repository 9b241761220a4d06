package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/wordtrees/Trees"
	"github.com/g-m-twostay/wordtrees/Words"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	config   string
	logLevel string
	logFile  string
	traverse string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "wordtrees [file]",
		Short: "Count words and report them through binary search trees",
		Long: "Reads a text file, or stdin when the file is missing or -, and counts its lowercase words.\n" +
			"Prints the number of unique words, the keywords by frequency, the longwords by length,\n" +
			"their averages and the heights of the three trees.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "toml file with a [thresholds] table")
	f.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	f.StringVar(&opts.logFile, "log-file", "", "write json logs to this file instead of stderr")
	f.StringVar(&opts.traverse, "traverse", "", "print the unique words in this order instead of the report: pre, in, post, level or rev")
	return cmd
}

func run(in io.Reader, out io.Writer, opts *options, args []string) (err error) {
	logger, closeLog, err := newLogger(opts.logLevel, opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := Words.DefaultConfig()
	if opts.config != "" {
		if cfg, err = Words.LoadConfig(opts.config); err != nil {
			return err
		}
	}
	order, traverse := Trees.InOrder, opts.traverse != ""
	if traverse {
		if order, err = Trees.ParseOrder(opts.traverse); err != nil {
			return err
		}
	}

	src, name := in, "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		src, name = f, args[0]
	}

	ix, err := Words.NewIndex(cfg, Words.WithLogger(logger.With(zap.String("input", name))))
	if err != nil {
		return err
	}
	if err = ix.Read(src); err != nil {
		return err
	}
	if err = ix.Build(); err != nil {
		return err
	}
	tokens, skipped := ix.Tokens()
	logger.Info("counted words",
		zap.String("input", name),
		zap.Int("tokens", tokens),
		zap.Int("skipped", skipped),
		zap.Int("unique", ix.Words.Size()))

	if traverse {
		return ix.Words.Fprint(out, order)
	}
	return Words.Report(out, ix)
}
