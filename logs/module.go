package logs

import (
	"context"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies one unit of work across log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey

// SpanOf returns the span carried by ctx, or "".
func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
