// Package pipeline wires the generator and reviewer into the fixed
// generate, review, refine-once protocol.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/abhisek/mathcontent/internal/content"
	"github.com/abhisek/mathcontent/internal/review"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Reviewer validates generated content.
type Reviewer interface {
	Review(c content.GeneratedContent, grade int, topic string) review.Result
}

// Run is the full record of one pipeline execution.
type Run struct {
	ID      uuid.UUID       `json:"id"`
	Request content.Request `json:"request"`

	// Generated is the first generator output.
	Generated content.GeneratedContent `json:"generated"`

	// Review is the reviewer's verdict on Generated.
	Review review.Result `json:"review"`

	// Refined is set only when Review failed. It is never re-reviewed.
	Refined *content.GeneratedContent `json:"refined,omitempty"`
}

// Refinement reports whether a refinement pass ran.
func (r *Run) Refinement() bool { return r.Refined != nil }

// Final returns the content a caller should present: the refined output
// if there is one, otherwise the first output.
func (r *Run) Final() content.GeneratedContent {
	if r.Refined != nil {
		return *r.Refined
	}
	return r.Generated
}

// Pipeline runs generate -> review -> at most one refinement.
// It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	generator content.Generator
	reviewer  Reviewer
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a Pipeline.
func New(gen content.Generator, rev Reviewer, opts ...Option) *Pipeline {
	p := &Pipeline{
		generator: gen,
		reviewer:  rev,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline for one request. Generation and review never
// fail, so the only error is ctx being done before the run starts.
func (p *Pipeline) Run(ctx context.Context, req content.Request) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run := &Run{ID: uuid.New(), Request: req}
	log := p.logger.With("run_id", run.ID.String(), "grade", req.Grade, "topic", req.Topic)

	run.Generated = p.generator.Generate(req, content.NoRefinement)
	log.DebugContext(ctx, "content generated", "mcqs", len(run.Generated.MCQs))

	run.Review = p.reviewer.Review(run.Generated, req.Grade, req.Topic)
	log.DebugContext(ctx, "content reviewed", "status", run.Review.Status, "feedback", len(run.Review.Feedback))

	if run.Review.Status == review.StatusFail {
		refined := p.generator.Generate(req, content.Refine(run.Review.Feedback))
		run.Refined = &refined
		log.DebugContext(ctx, "content refined", "mcqs", len(refined.MCQs))
	}

	log.InfoContext(ctx, "pipeline run complete",
		"status", run.Review.Status,
		"refined", run.Refinement(),
	)
	return run, nil
}

// RunBatch runs independent pipelines concurrently, at most limit at a
// time (limit <= 0 means unbounded). Results are in request order.
func (p *Pipeline) RunBatch(ctx context.Context, reqs []content.Request, limit int) ([]*Run, error) {
	runs := make([]*Run, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, req := range reqs {
		g.Go(func() error {
			run, err := p.Run(gctx, req)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}
