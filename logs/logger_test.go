package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("run", 1).InfoContext(ctx, "test", "hello", "world!")
		logger.Debug("hidden")
		out := buf.String()
		if underSystemdService() {
			return
		}
		for _, expected := range []string{"hello=world!", "run=1", "logs.span=foo"} {
			if !strings.Contains(out, expected) {
				t.Fatalf("got %v", out)
			}
		}
		if strings.Contains(out, "hidden") {
			t.Fatalf("got %v", out)
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %v", got)
	}
}
