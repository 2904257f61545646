package main

import (
	"os"

	"github.com/dshills/linescope/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
