package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/tal-format/tal/tales"
)

func loadData(cfg *MainConfig) (tales.Context, error) {
	if cfg.Data == "" {
		return tales.Context{}, nil
	}
	b, err := os.ReadFile(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", cfg.Data, err)
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", cfg.Data, err)
	}
	return tales.Context(m), nil
}

func readTemplate(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return b, nil
}
