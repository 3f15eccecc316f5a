package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/cache"
)

type mismatch struct {
	Feature string
	Sys     bool
	CPUID   bool
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Compare x/sys/cpu detection with klauspost/cpuid",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			alt, ok := cpu.CPUIDDetect()
			if !ok {
				return cli.Exit(fmt.Sprintf("cpuid detection is not available on %s", runtime.GOARCH), 1)
			}
			return printMismatches(cmd.Root().Writer, diff(cpu.DetectRaw(), alt))
		},
	}
}

func diff(sys, alt cache.Initializer) []mismatch {
	var out []mismatch
	for _, f := range cpu.AllFeatures() {
		a, b := sys.Test(uint32(f)), alt.Test(uint32(f))
		if a != b {
			out = append(out, mismatch{Feature: f.String(), Sys: a, CPUID: b})
		}
	}
	return out
}

func printMismatches(w io.Writer, ms []mismatch) error {
	if len(ms) == 0 {
		_, err := fmt.Fprintln(w, "detectors agree")
		return err
	}
	for _, m := range ms {
		if _, err := fmt.Fprintf(w, "%-16s platform=%-5t cpuid=%t\n", m.Feature, m.Sys, m.CPUID); err != nil {
			return err
		}
	}
	return nil
}
