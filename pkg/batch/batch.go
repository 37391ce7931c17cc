// Package batch runs a job over many independent images with a pool of workers.
package batch

import (
	"context"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/menta2k/stamp-cropper/pkg/types"
)

// Result is the outcome of one job
type Result struct {
	Path    string
	Cropped bool
	Rect    *types.Rect
	// Coverage is the share of the source image kept by the crop
	Coverage float64
	Err      error
}

// Job processes the image at path
type Job func(ctx context.Context, path string) Result

// Run calls job for every path using the given number of workers (all CPUs
// when workers <= 0). Results are returned in the order of paths. Paths not
// started before ctx is done get ctx.Err() as their error.
func Run(ctx context.Context, paths []string, workers int, job Job) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(paths))
	tasks := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{Path: paths[idx], Err: err}
					continue
				}
				r := job(ctx, paths[idx])
				r.Path = paths[idx]
				results[idx] = r
			}
		}()
	}

	for idx := range paths {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}

// Summary aggregates the results of a run
type Summary struct {
	Total          int     `json:"total"`
	Cropped        int     `json:"cropped"`
	Unchanged      int     `json:"unchanged"`
	Failed         int     `json:"failed"`
	MeanCoverage   float64 `json:"mean_coverage"`
	StdDevCoverage float64 `json:"stddev_coverage"`
}

// Summarize counts outcomes and computes coverage statistics of the cropped images
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	var coverage []float64
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Cropped:
			s.Cropped++
			coverage = append(coverage, r.Coverage)
		default:
			s.Unchanged++
		}
	}

	switch len(coverage) {
	case 0:
	case 1:
		s.MeanCoverage = coverage[0]
	default:
		s.MeanCoverage, s.StdDevCoverage = stat.MeanStdDev(coverage, nil)
	}
	return s
}
