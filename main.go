package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/meza/lcov-summary/cmd/lcovsum"
)

var exit = os.Exit

type runDeps struct {
	execute func() error
}

func main() {
	exit(runWithDeps(runDeps{execute: lcovsum.Execute}))
}

func runWithDeps(deps runDeps) int {
	if err := deps.execute(); err != nil {
		return 1
	}
	return 0
}
