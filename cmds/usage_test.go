package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	out := buf.String()
	for _, expected := range []string{
		"-h, help, -help, --help\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"    qux <int>\tQUX",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in\n%s", expected, out)
		}
	}
}
