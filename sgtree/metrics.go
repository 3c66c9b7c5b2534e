package sgtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var insertsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sgtree_inserts_total",
	Help: "The total number of insert calls, by outcome",
}, []string{"tree", "result"})

var rebuildsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sgtree_rebuilds_total",
	Help: "The total number of scapegoat sub-tree rebuilds",
}, []string{"tree"})

var rebuildNodesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sgtree_rebuild_nodes_total",
	Help: "The total number of nodes re-linked by scapegoat rebuilds",
}, []string{"tree"})

var rebuildFailuresCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sgtree_rebuild_failures_total",
	Help: "The total number of rebuilds skipped because scratch space could not be allocated",
}, []string{"tree"})
