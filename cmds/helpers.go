package cmds

import "strings"

// Var defines name taking one argument, and name+"." resetting it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name setting the value, and "!"+name clearing it.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name appending its argument to the list.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")))
	return &value
}
