package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bluesky-social/sgtree/sgtree"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	app := cli.App{
		Name:      "sgtree",
		Usage:     "scapegoat tree demo and inspection tool",
		Version:   versioninfo.Short(),
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
	}
	app.Flags = []cli.Flag{
		&cli.Float64Flag{
			Name:    "alpha",
			Usage:   "balance factor, strictly between 0.5 and 1",
			Value:   sgtree.DefaultAlpha,
			EnvVars: []string{"SGTREE_ALPHA"},
		},
		&cli.IntFlag{
			Name:    "max-nodes",
			Usage:   "cap on live tree nodes (0 for unlimited)",
			EnvVars: []string{"SGTREE_MAX_NODES"},
		},
		&cli.IntFlag{
			Name:    "max-scratch",
			Usage:   "cap on nodes gathered by a single rebuild (0 for unlimited)",
			EnvVars: []string{"SGTREE_MAX_SCRATCH"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			EnvVars: []string{"SGTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format (json or text)",
			Value:   "json",
			EnvVars: []string{"SGTREE_LOG_FORMAT", "LOG_FORMAT"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		configLogger(cctx, cctx.App.ErrWriter)
		return nil
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdInsert,
		cmdBench,
	}
	return &app
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	return newApp(in, out, errOut).Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var logger *slog.Logger
	if strings.ToLower(cctx.String("log-format")) == "text" {
		logger = slog.New(slog.NewTextHandler(writer, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(writer, opts))
	}
	slog.SetDefault(logger)
	return logger
}

// builds a tree from the global flags
func newTree(cctx *cli.Context, name string) (*sgtree.Tree, error) {
	config := sgtree.DefaultConfig()
	config.Alpha = cctx.Float64("alpha")
	config.Name = name
	maxNodes, maxScratch := cctx.Int("max-nodes"), cctx.Int("max-scratch")
	if maxNodes > 0 || maxScratch > 0 {
		config.Allocator = &sgtree.LimitAllocator{MaxNodes: maxNodes, MaxScratch: maxScratch}
	}
	return sgtree.NewTree(config)
}
