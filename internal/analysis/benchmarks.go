package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Metric names shared by the benchmark table, the weight configuration, and
// the scorer.
const (
	MetricPauseTimeMean         = "pause_time_mean"
	MetricPauseBeforeSentences  = "pause_before_sentences"
	MetricPauseBeforeWords      = "pause_before_words"
	MetricTotalInsertions       = "total_insertions"
	MetricNumInsertions         = "num_insertions"
	MetricTotalDeletionsWords   = "total_deletions_words"
	MetricNumRevisions          = "num_revisions"
	MetricNumDeletions          = "num_deletions"
	MetricProductProcessRatio   = "product_process_ratio"
	MetricPauseWithinWordsCount = "pause_within_words_count"
	MetricRBurstLengthMedian    = "rburst_length_median"
	MetricCharactersPerMinute   = "characters_per_minute"
)

// Benchmark is a population-level (mean, standard deviation) reference for
// one raw metric.
type Benchmark struct {
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
}

// BenchmarkTable maps metric names to population benchmarks. Tables are
// read-only once handed to a computation.
type BenchmarkTable map[string]Benchmark

// Get returns the benchmark for a metric, falling back to a zero-spread
// benchmark when the metric is unknown (the scorer then reports the neutral
// midpoint for it).
func (t BenchmarkTable) Get(metric string) Benchmark {
	if b, ok := t[metric]; ok {
		return b
	}
	return Benchmark{}
}

// DefaultBenchmarks returns the engine's built-in population benchmarks.
func DefaultBenchmarks() BenchmarkTable {
	return BenchmarkTable{
		MetricPauseTimeMean:         {Mean: 1.646, SD: 0.783},
		MetricPauseBeforeSentences:  {Mean: 12.682, SD: 29.433},
		MetricPauseBeforeWords:      {Mean: 1.398, SD: 0.825},
		MetricTotalInsertions:       {Mean: 307.96, SD: 344.11},
		MetricNumInsertions:         {Mean: 32.95, SD: 36.005},
		MetricTotalDeletionsWords:   {Mean: 115.218, SD: 130.943},
		MetricNumRevisions:          {Mean: 125.95, SD: 85.112},
		MetricProductProcessRatio:   {Mean: 0.824, SD: 0.111},
		MetricPauseWithinWordsCount: {Mean: 408.688, SD: 245.747},
		MetricRBurstLengthMedian:    {Mean: 6.27, SD: 6.431},
		MetricCharactersPerMinute:   {Mean: 200, SD: 75},
	}
}

// BenchmarkStore manages named benchmark-table profiles as JSON files under
// a data directory. A missing profile resolves to the built-in defaults, so
// the engine works with no data directory at all.
type BenchmarkStore struct {
	dataDir string
}

// NewBenchmarkStore creates a benchmark store rooted at dataDir.
func NewBenchmarkStore(dataDir string) *BenchmarkStore {
	return &BenchmarkStore{dataDir: dataDir}
}

// Load resolves a benchmark profile by name. Unknown or empty names return
// the default table. A profile file only needs to list the metrics it
// overrides; the rest keep their defaults.
func (s *BenchmarkStore) Load(profile string) (BenchmarkTable, error) {
	table := DefaultBenchmarks()
	if profile == "" {
		return table, nil
	}

	path := filepath.Join(s.dataDir, fmt.Sprintf("%s.json", profile))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return table, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open benchmark profile: %w", err)
	}
	defer file.Close()

	var overrides BenchmarkTable
	if err := json.NewDecoder(file).Decode(&overrides); err != nil {
		return nil, fmt.Errorf("failed to decode benchmark profile: %w", err)
	}

	for metric, b := range overrides {
		table[metric] = b
	}
	return table, nil
}

// Save writes a benchmark profile for later use.
func (s *BenchmarkStore) Save(profile string, table BenchmarkTable) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create benchmark directory: %w", err)
	}

	path := filepath.Join(s.dataDir, fmt.Sprintf("%s.json", profile))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create benchmark profile: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(table); err != nil {
		return fmt.Errorf("failed to encode benchmark profile: %w", err)
	}
	return nil
}
