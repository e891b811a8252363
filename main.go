package main

import (
	"github.com/samber/lo"
	"github.com/ytplay/ytplay/cmd"
	"github.com/ytplay/ytplay/config"
	"github.com/ytplay/ytplay/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
