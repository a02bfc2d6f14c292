package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tal-format/tal"
	"github.com/tal-format/tal/talop"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: diff requires one template file", cli.ErrUsage)
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
	if cfg.Color {
		color.NoColor = false
	}
	writeDiff(w, string(src), root.XML(), cfg.useColor())
	fmt.Fprintln(w)
	return closeOut()
}

func writeDiff(w io.Writer, from, to string, colored bool) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed, color.CrossedOut).SprintFunc()
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				fmt.Fprint(w, ins(d.Text))
			} else {
				fmt.Fprintf(w, "{+%s+}", d.Text)
			}
		case diffpatch.DiffDelete:
			if colored {
				fmt.Fprint(w, del(d.Text))
			} else {
				fmt.Fprintf(w, "[-%s-]", d.Text)
			}
		default:
			fmt.Fprint(w, d.Text)
		}
	}
}
