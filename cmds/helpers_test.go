package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("foo")
	b := Var[string]("bar")
	GlobalExecutor.MustExecute([]string{
		"foo", "42",
		"bar", "bar",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.Execute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatal()
	}
}

func TestFloatList(t *testing.T) {
	list := Var[[]float64]("TestFloatList")
	GlobalExecutor.MustExecute([]string{
		"TestFloatList", "1, 2.5,-3",
	})
	if str := fmt.Sprintf("%v", *list); str != "[1 2.5 -3]" {
		t.Fatalf("got %s", str)
	}
	if err := GlobalExecutor.Execute([]string{
		"TestFloatList", "1,x",
	}); err == nil {
		t.Fatal("should error")
	}
}

func TestBoolArgument(t *testing.T) {
	v := Var[bool]("TestBoolArgument")
	GlobalExecutor.MustExecute([]string{
		"TestBoolArgument", "yes",
	})
	if !*v {
		t.Fatal()
	}
	if err := GlobalExecutor.Execute([]string{
		"TestBoolArgument", "maybe",
	}); err == nil {
		t.Fatal("should error")
	}
}
