package main

import (
	"fmt"
	"os"

	"github.com/isdelr/phishstats/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "phishstats:", err)
		os.Exit(1)
	}
}
