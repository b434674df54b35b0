package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/logs"
)

// ModuleForTest routes log records to the test's output.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) Writer() logs.Writer {
	return m.t.Output()
}
