package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/mj-jones15/pastProjects/internal/cli"
)

func main() {
	err := cli.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
