package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkTableGet(t *testing.T) {
	table := DefaultBenchmarks()

	b := table.Get(MetricCharactersPerMinute)
	assert.Equal(t, 200.0, b.Mean)
	assert.Equal(t, 75.0, b.SD)

	// Unknown metrics fall back to a zero-spread benchmark.
	assert.Equal(t, Benchmark{}, table.Get("no_such_metric"))
}

func TestDefaultBenchmarksComplete(t *testing.T) {
	table := DefaultBenchmarks()

	metrics := []string{
		MetricPauseTimeMean,
		MetricPauseBeforeSentences,
		MetricPauseBeforeWords,
		MetricTotalInsertions,
		MetricNumInsertions,
		MetricTotalDeletionsWords,
		MetricNumRevisions,
		MetricProductProcessRatio,
		MetricPauseWithinWordsCount,
		MetricRBurstLengthMedian,
		MetricCharactersPerMinute,
	}

	for _, metric := range metrics {
		b, ok := table[metric]
		require.True(t, ok, "missing benchmark for %s", metric)
		assert.Greater(t, b.SD, 0.0, "zero spread for %s", metric)
	}
}

func TestBenchmarkStoreLoadDefaults(t *testing.T) {
	store := NewBenchmarkStore(t.TempDir())

	table, err := store.Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBenchmarks(), table)

	// A profile with no backing file also resolves to the defaults.
	table, err = store.Load("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, DefaultBenchmarks(), table)
}

func TestBenchmarkStoreSaveAndLoad(t *testing.T) {
	store := NewBenchmarkStore(t.TempDir())

	overrides := BenchmarkTable{
		MetricCharactersPerMinute: {Mean: 100, SD: 30},
	}
	require.NoError(t, store.Save("slow-typists", overrides))

	table, err := store.Load("slow-typists")
	require.NoError(t, err)

	// The override applies; everything else keeps its default.
	assert.Equal(t, Benchmark{Mean: 100, SD: 30}, table.Get(MetricCharactersPerMinute))
	assert.Equal(t, DefaultBenchmarks().Get(MetricPauseTimeMean), table.Get(MetricPauseTimeMean))
}

func TestBenchmarkStoreLoadMalformedProfile(t *testing.T) {
	dir := t.TempDir()
	store := NewBenchmarkStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	_, err := store.Load("broken")
	assert.Error(t, err)
}
