package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-simd/cpu"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Exit non-zero unless every named feature is detected",
		ArgsUsage: "FEATURE...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return cli.Exit("error: at least one feature name is required", 2)
			}
			missing, unknown := checkFeatures(names)
			if len(unknown) > 0 {
				return cli.Exit(fmt.Sprintf("unknown features: %s", strings.Join(unknown, ", ")), 1)
			}
			if len(missing) > 0 {
				return cli.Exit(fmt.Sprintf("missing features: %s", strings.Join(missing, ", ")), 1)
			}
			_, err := fmt.Fprintln(cmd.Root().Writer, "ok")
			return err
		},
	}
}

func checkFeatures(names []string) (missing, unknown []string) {
	for _, name := range names {
		f, ok := cpu.ParseFeature(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !cpu.IsFeatureDetected(f) {
			missing = append(missing, f.String())
		}
	}
	return missing, unknown
}
