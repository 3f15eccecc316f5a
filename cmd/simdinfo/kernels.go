package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-simd/internal/vecmath"
)

func kernelsCmd() *cli.Command {
	return &cli.Command{
		Name:  "kernels",
		Usage: "Show which implementation each vecmath kernel dispatches to",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintln(tw, "Kernel\tVariant"); err != nil {
				return err
			}
			for _, s := range vecmath.Selected() {
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", s.Op, s.Variant); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}
