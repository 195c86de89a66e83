package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configEnv = "DSV2MD_CONFIG"

// config holds the settings a config file may provide. Flags set on the
// command line take precedence.
type config struct {
	Header       bool   `yaml:"header"`
	Delimiter    string `yaml:"delimiter"`
	Pretty       bool   `yaml:"pretty"`
	DisplayWidth bool   `yaml:"display_width"`
	Debug        bool   `yaml:"debug"`
}

// configPath resolves the config file location. explicit is true when the
// path came from the flag or the environment, in which case it must exist.
func configPath(flagPath string, getenv func(string) string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := getenv(configEnv); p != "" {
		return p, true
	}
	dir := getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "", false
		}
	}
	return filepath.Join(dir, "dsv2md", "config.yaml"), false
}

func loadConfig(path string, explicit bool) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
