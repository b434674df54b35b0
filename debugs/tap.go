package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/ragaraja/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what, "globals", names)
		defer logger.InfoContext(ctx, "tap end: "+what)

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, toStringDict(globals))
	}
}
