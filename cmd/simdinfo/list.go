package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-simd/cpu"
)

// report is the document printed by list.
type report struct {
	Arch     string       `json:"arch" yaml:"arch"`
	Level    string       `json:"level" yaml:"level"`
	Features []featureRow `json:"features" yaml:"features"`
}

type featureRow struct {
	Name     string `json:"name" yaml:"name"`
	Bit      uint32 `json:"bit" yaml:"bit"`
	Detected bool   `json:"detected" yaml:"detected"`
}

func buildReport(all bool) report {
	r := report{
		Arch:  runtime.GOARCH,
		Level: cpu.BestLevel(cpu.DetectFeatures()).String(),
	}
	for _, f := range cpu.AllFeatures() {
		ok := cpu.IsFeatureDetected(f)
		if !ok && !all {
			continue
		}
		r.Features = append(r.Features, featureRow{Name: f.String(), Bit: uint32(f), Detected: ok})
	}
	return r
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List detected features",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "output format: text, json or yaml",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "include features that were not detected",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r := buildReport(cmd.Bool("all"))
			if err := render(cmd.Root().Writer, cmd.String("format"), r); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return nil
		},
	}
}
