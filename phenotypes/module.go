// Package phenotypes expresses many genomes concurrently, each with its own
// register file.
package phenotypes

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/logs"
	"github.com/reusee/ragaraja/ragaconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs ragaconfigs.Module
}
