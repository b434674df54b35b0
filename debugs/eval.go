package debugs

import (
	"context"

	"github.com/reusee/ragaraja/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates a starlark expression over globals.
type Eval func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "eval",
		}
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(ctx.Err().Error())
			case <-done:
			}
		}()

		value, err := starlark.EvalOptions(
			&syntax.FileOptions{},
			thread,
			"<expr>",
			expr,
			toStringDict(globals),
		)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "eval",
			"expr", expr,
			"value", value.String(),
		)
		return value, nil
	}
}
