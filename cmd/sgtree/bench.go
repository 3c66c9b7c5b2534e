package main

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/bluesky-social/sgtree/sgtree"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "insert random keys into independent trees and report balance and rebuild work",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of keys inserted per trial",
			Value: 2000,
		},
		&cli.IntFlag{
			Name:  "trials",
			Usage: "number of independent trees",
			Value: 4,
		},
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "number of trials run in parallel",
			Value: 4,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed; trial i uses seed+i",
			Value: 1,
		},
		&cli.BoolFlag{
			Name:  "sorted",
			Usage: "insert keys in ascending order instead of random order",
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for prometheus metrics (empty to disable)",
			EnvVars: []string{"SGTREE_METRICS_LISTEN"},
		},
	},
	Action: runBench,
}

type trialResult struct {
	Inserted   int
	Duplicates int
	Height     int
	Threshold  int
	Stats      sgtree.Stats
}

func runBench(cctx *cli.Context) error {
	out := cctx.App.Writer
	count := cctx.Int("count")
	trials := cctx.Int("trials")
	if count <= 0 || trials <= 0 {
		return fmt.Errorf("count and trials must be positive")
	}

	if listen := cctx.String("metrics-listen"); listen != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(listen, mux); err != nil {
				slog.Error("failed to start metrics endpoint", "err", err)
			}
		}()
	}

	results := make([]trialResult, trials)
	eg := new(errgroup.Group)
	eg.SetLimit(max(1, cctx.Int("jobs")))
	for i := range trials {
		eg.Go(func() error {
			res, err := runTrial(cctx, i, count)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		perInsert := 0.0
		if r.Inserted > 0 {
			perInsert = float64(r.Stats.RebuiltNodes) / float64(r.Inserted)
		}
		fmt.Fprintf(out, "trial=%d inserted=%d duplicates=%d height=%d threshold=%d rebuilds=%d rebuilt_nodes=%d per_insert=%.2f log2n=%.2f\n",
			i, r.Inserted, r.Duplicates, r.Height, r.Threshold, r.Stats.Rebuilds, r.Stats.RebuiltNodes, perInsert, math.Log2(float64(max(r.Inserted, 1))))
	}
	return nil
}

// each trial owns its tree; nothing is shared between goroutines
func runTrial(cctx *cli.Context, i, count int) (*trialResult, error) {
	tree, err := newTree(cctx, fmt.Sprintf("bench-%d", i))
	if err != nil {
		return nil, err
	}
	defer tree.Destroy()

	faker := gofakeit.New(cctx.Int64("seed") + int64(i))
	res := &trialResult{}
	for n := range count {
		key := n
		if !cctx.Bool("sorted") {
			key = faker.IntRange(-count*10, count*10)
		}
		ir, err := tree.Insert(key)
		if err != nil {
			return nil, err
		}
		switch ir {
		case sgtree.Inserted:
			res.Inserted++
		case sgtree.Duplicate:
			res.Duplicates++
		}
	}
	if err := tree.Verify(); err != nil {
		return nil, err
	}
	res.Height = tree.Height()
	res.Threshold = tree.HeightThreshold()
	res.Stats = tree.Stats()
	return res, nil
}
