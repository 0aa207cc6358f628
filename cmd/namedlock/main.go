package main

import (
	"github.com/named-lock/namedlock/internal/cli"
	"github.com/named-lock/namedlock/internal/util"
)

func main() {
	if err := cli.Execute(); err != nil {
		util.HandleError(err, "")
	}
}
