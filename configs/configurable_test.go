package configs

import "testing"

type testStr string

func (testStr) ConfigPath() string {
	return "str"
}

type testMissing int

func (testMissing) ConfigPath() string {
	return "missing"
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema+"missing?: int\n")
	if s := Lookup[testStr](loader); s != "bar" {
		t.Fatalf("got %v", s)
	}
	if n := Lookup[testMissing](loader); n != 0 {
		t.Fatalf("got %v", n)
	}
}
