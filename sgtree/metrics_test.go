package sgtree

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	assert := assert.New(t)
	name := "metrics-test"

	tree, err := NewTree(&Config{Alpha: 0.6, Name: name})
	require.NoError(t, err)
	for _, k := range []int{1, 4, 7, 2, 3, -8, 0, 4, 7} {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}

	assert.Equal(7.0, testutil.ToFloat64(insertsCounter.WithLabelValues(name, "inserted")))
	assert.Equal(2.0, testutil.ToFloat64(insertsCounter.WithLabelValues(name, "duplicate")))
	assert.Equal(4.0, testutil.ToFloat64(rebuildsCounter.WithLabelValues(name)))
	assert.Equal(15.0, testutil.ToFloat64(rebuildNodesCounter.WithLabelValues(name)))
	assert.Equal(0.0, testutil.ToFloat64(rebuildFailuresCounter.WithLabelValues(name)))
}
