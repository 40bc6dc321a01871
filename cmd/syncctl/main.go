package main

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/todosync/internal/client/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
