// Package main is the entry point for the sll application.
package main

import (
	"github.com/samber/lo"
	"github.com/sll-cli/sll/cmd"
	"github.com/sll-cli/sll/config"
	"github.com/sll-cli/sll/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
