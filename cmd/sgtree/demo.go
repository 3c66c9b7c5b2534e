package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bluesky-social/sgtree/sgtree"

	"github.com/urfave/cli/v2"
)

var demoKeys = []int{1, 4, 7, 2, 3, -8, 0}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "insert a fixed set of keys, then look up a key read from stdin",
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	out := cctx.App.Writer

	tree, err := newTree(cctx, "demo")
	if err != nil {
		return err
	}
	defer tree.Destroy()

	for _, k := range demoKeys {
		res, err := tree.Insert(k)
		if err != nil && !errors.Is(err, sgtree.ErrRebuildSkipped) {
			return err
		}
		if res != sgtree.Inserted {
			fmt.Fprintf(out, "Skipped %d (%s),\tsize: %d\n", k, res, tree.Len())
			continue
		}
		fmt.Fprintf(out, "Inserted %d,\tsize: %d\n", k, tree.Len())
	}

	fmt.Fprint(out, "Enter value: ")
	scanner := bufio.NewScanner(cctx.App.Reader)
	if !scanner.Scan() {
		// no input; nothing to look up
		fmt.Fprintln(out)
		return scanner.Err()
	}
	key, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Fprintln(out)
		return nil
	}

	result := "not found"
	if tree.Find(key) != nil {
		result = "found"
	}
	fmt.Fprintf(out, "Search %d: %s\n", key, result)
	return nil
}
