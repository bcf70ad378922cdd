package result

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"quicdiff/internal/metrics"
	"quicdiff/pkg/errors"
)

// Collection maps file stems (name without extension) to decoded documents.
type Collection map[string]metrics.RawResult

// Stems returns the collection's stems in sorted order.
func (c Collection) Stems() []string {
	stems := make([]string, 0, len(c))
	for s := range c {
		stems = append(stems, s)
	}
	sort.Strings(stems)
	return stems
}

// Extract normalizes every document in the collection into its canonical
// record form, keyed by the same stems.
func (c Collection) Extract() map[string]metrics.Record {
	records := make(map[string]metrics.Record, len(c))
	for stem, raw := range c {
		records[stem] = metrics.Extract(raw)
	}
	return records
}

// FileStatus holds the outcome of loading a single result file.
type FileStatus struct {
	Path string
	Stem string
	Err  error
}

// LoadReport holds the outcome of loading a result directory.
type LoadReport struct {
	Dir      string
	Files    []FileStatus
	Loaded   int
	Failed   int
	Duration time.Duration
}

// ProgressFunc is called each time a file finishes loading during a directory scan.
type ProgressFunc func(status FileStatus, current, total int)

// LoaderConfig holds configuration for the Loader.
type LoaderConfig struct {
	Workers int64
}

// Loader reads benchmark result documents from disk.
type Loader struct {
	config LoaderConfig
	logger *zap.Logger
}

// NewLoader creates a new Loader.
func NewLoader(cfg LoaderConfig, logger *zap.Logger) *Loader {
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		config: cfg,
		logger: logger,
	}
}

// LoadFile reads and decodes a single result document.
func (l *Loader) LoadFile(path string) (metrics.RawResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.LoadError{Path: path, Err: errors.ErrResultNotFound}
		}
		return nil, &errors.LoadError{Path: path, Err: err}
	}

	var raw metrics.RawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &errors.LoadError{Path: path, Err: fmt.Errorf("%w: %v", errors.ErrResultMalformed, err)}
	}

	l.logger.Debug("loaded result file",
		zap.String("path", path),
		zap.Int("bytes", len(data)))
	return raw, nil
}

// LoadDir decodes every *.json file in dir concurrently using a
// semaphore-based worker pool. Files that fail to load are recorded in the
// report and skipped; the collection holds everything that decoded. The
// report is complete before LoadDir returns.
func (l *Loader) LoadDir(ctx context.Context, dir string, progress ProgressFunc) (Collection, *LoadReport, error) {
	startTime := time.Now()

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, nil, &errors.LoadError{Path: dir, Err: err}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", errors.ErrNoResults, dir)
	}

	report := &LoadReport{Dir: dir}
	coll := make(Collection, len(paths))
	statuses := make([]FileStatus, len(paths))
	var mu sync.Mutex
	var completed int

	sem := semaphore.NewWeighted(l.config.Workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}
			defer sem.Release(1)

			raw, err := l.LoadFile(path)
			status := FileStatus{Path: path, Stem: Stem(path), Err: err}
			statuses[idx] = status

			if err != nil {
				l.logger.Warn("skipping result file", zap.String("path", path), zap.Error(err))
			}

			mu.Lock()
			completed++
			current := completed
			if err == nil {
				coll[status.Stem] = raw
				report.Loaded++
			} else {
				report.Failed++
			}
			mu.Unlock()

			if progress != nil {
				progress(status, current, len(paths))
			}
		}(i, path)
	}

	wg.Wait()

	for _, st := range statuses {
		if st.Path != "" {
			report.Files = append(report.Files, st)
		}
	}

	report.Duration = time.Since(startTime)
	return coll, report, nil
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
