package main

import "github.com/spf13/pflag"

type flags struct {
	header       bool
	delimiter    string
	pretty       bool
	displayWidth bool
	debug        bool
	configPath   string
}

func (f *flags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.header, "header", false, "Treat the first row as a header row")
	fs.StringVarP(&f.delimiter, "delimiter", "d", "", "Custom delimiter (supports multiple characters). Auto-detects CSV/TSV if not specified.")
	fs.BoolVarP(&f.pretty, "pretty", "p", false, "Align columns for readable plain text output")
	fs.BoolVar(&f.displayWidth, "display-width", false, "Measure pretty columns in terminal cells instead of characters")
	fs.BoolVar(&f.debug, "debug", false, "Log debug information to stderr")
	fs.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
}

// apply overrides cfg with every flag set on the command line.
func (f *flags) apply(fs *pflag.FlagSet, cfg *config) {
	if fs.Changed("header") {
		cfg.Header = f.header
	}
	if fs.Changed("delimiter") {
		cfg.Delimiter = f.delimiter
	}
	if fs.Changed("pretty") {
		cfg.Pretty = f.pretty
	}
	if fs.Changed("display-width") {
		cfg.DisplayWidth = f.displayWidth
	}
	if fs.Changed("debug") {
		cfg.Debug = f.debug
	}
}
