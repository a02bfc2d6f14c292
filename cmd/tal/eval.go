package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/tal-format/tal/tales"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: eval requires one expression", cli.ErrUsage)
	}
	data, err := loadData(cfg.MainConfig)
	if err != nil {
		return err
	}
	v, err := tales.Value(args[0], data)
	if err != nil {
		return err
	}
	w, closeOut, err := cfg.output(cc)
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		fmt.Fprintln(w, "<undefined>")
	case string:
		fmt.Fprintln(w, x)
	default:
		out, err := yaml.Marshal(v)
		if err != nil {
			closeOut()
			return err
		}
		w.Write(out)
	}
	return closeOut()
}
