// Package uciworker provides a parallel UCI encode/decode pool. A UciCoder
// is not safe for concurrent use (uci §5): callers wanting parallelism
// construct one coder per worker goroutine. This package is that
// construction, built on golang.org/x/sync/errgroup the way the retrieval
// pack fans work out across a bounded goroutine set.
package uciworker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/srsnr/uci-nr/uci"
)

// CoderFactory builds one fully-wired UciCoder per worker. Implementations
// typically close over ucidefault.Options and call ucidefault.New.
type CoderFactory func() (*uci.UciCoder, error)

// Pool runs a batch of independent PUSCH/PUCCH encode or decode jobs across
// a bounded set of worker goroutines, each with its own UciCoder.
type Pool struct {
	factory     CoderFactory
	concurrency int
}

// New returns a Pool that runs up to concurrency jobs at once. concurrency
// <= 0 means unbounded (one goroutine per job).
func New(factory CoderFactory, concurrency int) *Pool {
	return &Pool{factory: factory, concurrency: concurrency}
}

// Job is one unit of work handed to a pool worker's UciCoder.
type Job func(ctx context.Context, c *uci.UciCoder) error

// Run executes jobs concurrently and returns the first error. On that
// error the context passed to jobs is cancelled (the errgroup.WithContext
// convention); jobs not yet started are still launched and receive the
// cancelled context. Every job runs in its own goroutine and builds its own
// UciCoder via the pool's factory, so coder construction is paid once per
// job; coders are not reused across jobs. At most concurrency jobs run at
// once (errgroup's SetLimit).
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	if len(jobs) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	for i, job := range jobs {
		job := job
		idx := i
		g.Go(func() error {
			c, err := p.factory()
			if err != nil {
				return fmt.Errorf("uciworker: job %d: build coder: %w", idx, err)
			}
			if err := job(gctx, c); err != nil {
				return fmt.Errorf("uciworker: job %d: %w", idx, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// EncodeRequest is one self-contained PUSCH HARQ-ACK encode job, used by
// RunEncodePuschAck to fan a batch of independent UEs' encodes out across
// the pool.
type EncodeRequest struct {
	Cfg   uci.UciCfg
	Value uci.UciValue
	Out   []byte
}

// EncodeResult is the per-request outcome of RunEncodePuschAck.
type EncodeResult struct {
	N   int
	Err error
}

// RunEncodePuschAck runs EncodePuschAck for every request concurrently and
// returns one result per request, preserving input order. Unlike Run, a
// per-job failure does not abort the batch — each request's error is
// reported individually, since independent UEs' encodes have no reason to
// fail each other.
func (p *Pool) RunEncodePuschAck(ctx context.Context, reqs []EncodeRequest) ([]EncodeResult, error) {
	results := make([]EncodeResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			c, err := p.factory()
			if err != nil {
				results[i] = EncodeResult{Err: fmt.Errorf("uciworker: build coder: %w", err)}
				return nil
			}
			n, err := c.EncodePuschAck(req.Cfg, req.Value, req.Out)
			results[i] = EncodeResult{N: n, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
