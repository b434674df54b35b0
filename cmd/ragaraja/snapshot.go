package main

import (
	"os"

	"github.com/reusee/ragaraja/ragavm"
)

func snapshotState(path string, state ragavm.State) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return state.Snapshot(f)
}

func restoreState(path string) (state ragavm.State, err error) {
	f, err := os.Open(path)
	if err != nil {
		return state, err
	}
	defer f.Close()
	err = state.Restore(f)
	return state, err
}
