package main

import (
	"fmt"
	"strconv"

	"github.com/bluesky-social/sgtree/sgtree"

	"github.com/urfave/cli/v2"
)

var cmdInsert = &cli.Command{
	Name:      "insert",
	Usage:     "insert keys in order and print the resulting tree",
	ArgsUsage: "<key>...",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "find",
			Usage: "keys to look up after inserting",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only print the final tree",
		},
	},
	Action: runInsert,
}

func runInsert(cctx *cli.Context) error {
	out := cctx.App.Writer
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need to provide at least one key")
	}

	keys := make([]int, 0, cctx.Args().Len())
	for _, arg := range cctx.Args().Slice() {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, k)
	}

	tree, err := newTree(cctx, "insert")
	if err != nil {
		return err
	}
	defer tree.Destroy()

	for _, k := range keys {
		res, err := tree.Insert(k)
		if !cctx.Bool("quiet") {
			if err != nil {
				fmt.Fprintf(out, "%d\t%s\t%v\n", k, res, err)
			} else {
				fmt.Fprintf(out, "%d\t%s\n", k, res)
			}
		}
		if res == sgtree.Failed {
			return err
		}
	}

	stats := tree.Stats()
	sgtree.DebugPrintTree(out, tree)
	fmt.Fprintf(out, "rebuilds=%d rebuilt_nodes=%d skipped=%d\n", stats.Rebuilds, stats.RebuiltNodes, stats.SkippedRebuilds)

	for _, k := range cctx.IntSlice("find") {
		result := "not found"
		if tree.Contains(k) {
			result = "found"
		}
		fmt.Fprintf(out, "find %d: %s\n", k, result)
	}
	return tree.Verify()
}
