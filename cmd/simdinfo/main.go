// Command simdinfo reports the CPU capabilities detected at run time.
//
// Usage:
//
//	simdinfo list [--format text|json|yaml] [--all]
//	simdinfo check FEATURE...
//	simdinfo compare
//	simdinfo kernels
//	simdinfo serve [--addr :9090]
//
// Examples:
//
//	simdinfo list --format json
//	simdinfo check avx2 fma
//	ALGOSIMD_DISABLE=avx2 simdinfo kernels
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "simdinfo",
		Usage: "Report CPU capabilities detected at run time",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "optional file of ALGOSIMD_* variables loaded before detection",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			listCmd(),
			checkCmd(),
			compareCmd(),
			kernelsCmd(),
			serveCmd(),
		},
	}
}

// setup installs the logger and loads the env file. It runs before any
// command touches the detection cache, so the file can still affect it.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	path := cmd.String("env-file")
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return ctx, fmt.Errorf("load %s: %w", path, err)
		}
		slog.Debug("no env file", "path", path)
	}
	return ctx, nil
}
