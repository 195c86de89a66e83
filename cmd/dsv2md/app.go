package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/bjaus/dsv2md"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// app owns the process I/O so tests can substitute it.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

func newApp() *app {
	return &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}
}

// usageError marks failures caused by malformed command-line usage.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func (a *app) run(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(a.stderr, root.UsageString())
		return exitUsage
	}
	return exitError
}

func (a *app) newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "dsv2md [flags] < input",
		Short: "Convert delimiter-separated values to a Markdown table",
		Long: "Convert delimiter-separated values to a Markdown table.\n\n" +
			"Reads from stdin, writes to stdout.",
		Version: fmt.Sprint(version.Current()),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.convert(cmd, &f)
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})
	f.bind(cmd.Flags())
	return cmd
}

func (a *app) convert(cmd *cobra.Command, f *flags) error {
	path, explicit := configPath(f.configPath, a.getenv)
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	f.apply(cmd.Flags(), &cfg)

	log := newLogger(cfg.Debug, a.stderr)
	if path != "" {
		log.Debug("config resolved", "path", path, "explicit", explicit)
	}
	if file, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		log.Info("reading table from terminal, end input with Ctrl-D")
	}

	return dsv2md.Convert(cmd.OutOrStdout(), cmd.InOrStdin(), dsv2md.Options{
		Header:       cfg.Header,
		Delimiter:    cfg.Delimiter,
		Pretty:       cfg.Pretty,
		DisplayWidth: cfg.DisplayWidth,
		Logger:       log,
	})
}
