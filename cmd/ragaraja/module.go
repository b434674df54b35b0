package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/debugs"
	"github.com/reusee/ragaraja/phenotypes"
	"github.com/reusee/ragaraja/ragaconfigs"
)

type Module struct {
	dscope.Module
	Debugs     debugs.Module
	Configs    ragaconfigs.Module
	Phenotypes phenotypes.Module
}
