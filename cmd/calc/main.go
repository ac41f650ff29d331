package main

import (
	"github.com/common-creation/calc/cmd"
)

// Version information (populated during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Main(version, commit, date)
}
