// Package batch converts many RGB images to raw sensor files concurrently.
//
// Every job is independent: it decodes one image, samples it through the color filter array and
// writes one raw file. Jobs share no state, so they are spread over a bounded pool of workers.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/rawfile"
	"github.com/BeatGlow/rawsensor/source"
)

// Job converts the image at Input to the raw file at Output.
type Job struct {
	Input  string
	Output string
}

// Result of a single job.
type Result struct {
	Job
	Width    int
	Height   int
	Duration time.Duration
	Err      error
}

// Config for a batch run.
type Config struct {
	Sampler bayer.Sampler

	// Workers is the maximum number of concurrent jobs, values below 1 mean 1.
	Workers int

	// FailFast stops scheduling new jobs after the first failure.
	FailFast bool
}

// Jobs builds one job per input, placing outputs in dir (or next to the input if dir is empty)
// with the extension replaced by ".bin".
func Jobs(dir string, inputs ...string) []Job {
	jobs := make([]Job, 0, len(inputs))
	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".bin"
		out := filepath.Join(filepath.Dir(input), name)
		if dir != "" {
			out = filepath.Join(dir, name)
		}
		jobs = append(jobs, Job{Input: input, Output: out})
	}
	return jobs
}

// Convert runs all jobs and returns their results in job order.
//
// The returned error is the first job failure if FailFast is set, or the context error if ctx
// was cancelled before all jobs were scheduled. Jobs that never ran carry that error too.
func Convert(ctx context.Context, log zerolog.Logger, config Config, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i] = Result{Job: job}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(config.Workers, 1))

	for i := range jobs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(jobs); j++ {
				results[j].Err = err
			}
			break
		}
		i := i
		g.Go(func() error {
			r := &results[i]
			if err := gctx.Err(); err != nil {
				r.Err = err
				return nil
			}
			r.Width, r.Height, r.Duration, r.Err = run(gctx, log, config.Sampler, r.Job)
			if r.Err != nil && config.FailFast {
				return r.Err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func run(ctx context.Context, log zerolog.Logger, sampler bayer.Sampler, job Job) (width, height int, took time.Duration, err error) {
	start := time.Now()
	log.Debug().Str("input", job.Input).Msg("converting")

	defer func() {
		took = time.Since(start)
		if err != nil {
			log.Error().Err(err).Str("input", job.Input).Msg("conversion failed")
			return
		}
		log.Info().
			Str("input", job.Input).
			Str("output", job.Output).
			Int("width", width).
			Int("height", height).
			Dur("took", took).
			Msg("converted")
	}()

	img, _, err := source.Open(job.Input)
	if err != nil {
		return 0, 0, 0, err
	}
	raw, err := bayer.Mosaic[uint16](img, sampler)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s: %w", job.Input, err)
	}
	if err = ctx.Err(); err != nil {
		return 0, 0, 0, err
	}
	if err = rawfile.WriteFile(job.Output, raw); err != nil {
		return 0, 0, 0, fmt.Errorf("%s: %w", job.Output, err)
	}
	width, height = raw.Shape()
	return width, height, 0, nil
}
