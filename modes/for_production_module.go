package modes

import "github.com/reusee/dscope"

// ModuleForProduction selects production behavior, such as skipping
// per-genome debug records.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
