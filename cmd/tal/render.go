package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/tal-format/tal"
	"github.com/tal-format/tal/talop"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: render requires one template file", cli.ErrUsage)
	}
	data, err := loadData(cfg.MainConfig)
	if err != nil {
		return err
	}
	src, err := readTemplate(cc, args[0])
	if err != nil {
		return err
	}
	tpl := tal.New(talop.New())
	root, err := tpl.Render(src, data)
	if err != nil {
		return err
	}
	w, closeOut, err := cfg.output(cc)
	if err != nil {
		return err
	}
	if err := root.WriteTo(w); err != nil {
		closeOut()
		return err
	}
	fmt.Fprintln(w)
	return closeOut()
}
