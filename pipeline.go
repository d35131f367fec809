package pull

import (
	"context"
	"fmt"
	"sync/atomic"
)

// DefaultSizeHint is used by the terminal operations for initial
// allocations when the producer cannot provide size information.
var DefaultSizeHint uint = 100

var pipelineCounter atomic.Uint32

// Pipeline wraps a producer together with per-pipeline options
// (context, tracing).  It is a convenience for driving a composed chain
// of adaptors to a terminal result; the adaptors themselves never
// depend on it.
type Pipeline[T any] struct {
	p    Producer[T]
	id   uint32
	opts pipelineOptions
}

type pipelineOptions struct {
	ctx     context.Context
	tracer  TraceFunc
	tracing bool
}

// PipelineOption customizes how a pipeline's terminal operations run.
type PipelineOption func(o *pipelineOptions)

// WithContext attaches the provided context to the pipeline.
func WithContext(ctx context.Context) PipelineOption {
	return func(o *pipelineOptions) {
		o.ctx = ctx
	}
}

// WithTraceFunc sets the trace function for the pipeline.  Use
// WithTracing to enable/disable tracing.
func WithTraceFunc(f TraceFunc) PipelineOption {
	return func(o *pipelineOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the pipeline.  If a custom trace
// function has not been set using WithTraceFunc, trace records are
// written to stderr.
func WithTracing(enable bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.tracing = enable
	}
}

// NewPipeline instantiates a pipeline from a producer and an optional
// set of options.
func NewPipeline[T any](p Producer[T], opts ...PipelineOption) *Pipeline[T] {
	pl := &Pipeline[T]{
		p:  p,
		id: pipelineCounter.Add(1),
		opts: pipelineOptions{
			ctx: context.Background(),
		},
	}
	for _, opt := range opts {
		opt(&pl.opts)
	}
	return pl
}

// Producer returns the underlying producer of the pipeline.
func (pl *Pipeline[T]) Producer() Producer[T] {
	return pl.p
}

func (pl *Pipeline[T]) tracer(description string) Tracer {
	if !pl.opts.tracing {
		return NullTracer{}
	}
	var t T
	return NewTracer(pl.id, fmt.Sprintf("(%T) %s", t, description), pl.opts.tracer)
}

// Collect drains the pipeline into a slice.
func (pl *Pipeline[T]) Collect() ([]T, error) {
	t := pl.tracer("Collect")
	defer t.End()
	return Collect(pl.opts.ctx, pl.p)
}

// Count drains the pipeline and returns the number of elements.
func (pl *Pipeline[T]) Count() (uint, error) {
	t := pl.tracer("Count")
	defer t.End()
	return Count(pl.opts.ctx, pl.p)
}

// Fold1 reduces the pipeline left to right with f.  ok is false when
// the pipeline was empty.
func (pl *Pipeline[T]) Fold1(f func(T, T) T) (res T, ok bool, err error) {
	t := pl.tracer("Fold1")
	defer t.End()
	res, ok = Fold1(pl.opts.ctx, pl.p, f)
	return res, ok, pl.p.Error()
}

// Collect drains p into a slice, preallocating from its size estimate.
func Collect[T any](ctx context.Context, p Producer[T]) ([]T, error) {
	hint := HintOf(p)
	capacity := hint.Lower
	if capacity == 0 {
		if hint.UpperKnown {
			capacity = hint.Upper
		} else {
			capacity = DefaultSizeHint
		}
	}

	out := make([]T, 0, capacity)
	for p.Next(ctx) {
		out = append(out, p.Get())
	}
	return out, p.Error()
}

// Count returns the number of elements p has left.  Producers with the
// Exact capability answer without being consumed.
func Count[T any](ctx context.Context, p Producer[T]) (uint, error) {
	if e, ok := p.(Exact); ok {
		return e.Size(), nil
	}

	var n uint
	for p.Next(ctx) {
		n++
	}
	return n, p.Error()
}

// Fold1 reduces p left to right with f, using the first element as the
// initial accumulator.  ok is false when p was empty.
func Fold1[T any](ctx context.Context, p Producer[T], f func(T, T) T) (T, bool) {
	if !p.Next(ctx) {
		var zero T
		return zero, false
	}

	acc := p.Get()
	for p.Next(ctx) {
		acc = f(acc, p.Get())
	}
	return acc, true
}
