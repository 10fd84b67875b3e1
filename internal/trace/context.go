package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// spanRef: активный спан, который StartSpan кладёт в контекст для потомков.
type spanRef struct {
	id uint64
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx; nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// CurrentSpanID returns the ID of the innermost span opened through ctx, 0 at the root.
func CurrentSpanID(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	if ref, ok := ctx.Value(spanKey{}).(spanRef); ok {
		return ref.id
	}
	return 0
}

func withSpan(ctx context.Context, ref spanRef) context.Context {
	return context.WithValue(ctx, spanKey{}, ref)
}
