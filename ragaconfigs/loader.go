package ragaconfigs

import (
	_ "embed"

	"github.com/reusee/ragaraja/configs"
	"github.com/reusee/ragaraja/logs"
)

//go:embed schema.cue
var schema string

// Schema is the CUE schema configuration files are validated against.
func Schema() string {
	return schema
}

var Filenames = []string{
	"ragaraja.cue",
	".ragaraja.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := configs.SearchPaths(Filenames...)
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}
