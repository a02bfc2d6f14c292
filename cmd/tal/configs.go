package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Data  string `cli:"name=d aliases=data desc='YAML data file'"`
	Out   string `cli:"name=o desc='output file (default stdout)'"`
	Color bool   `cli:"name=color desc='force colored output'"`
	Plain bool   `cli:"name=plain desc='disable colored output'"`

	Main *cli.Command
}

func (cfg *MainConfig) useColor() bool {
	if cfg.Plain {
		return false
	}
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (cfg *MainConfig) output(cc *cli.Context) (io.Writer, func() error, error) {
	if cfg.Out == "" {
		return cc.Out, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating %q: %w", cfg.Out, err)
	}
	return f, f.Close, nil
}

type RenderConfig struct {
	*MainConfig
	Render *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
