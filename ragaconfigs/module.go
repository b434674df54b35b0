// Package ragaconfigs resolves run parameters from flags, ragaraja.cue
// files and defaults, in that order of precedence.
package ragaconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
