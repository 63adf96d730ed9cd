// Command crimewatch runs the CrimeWatch API and talks to it.
//
// Usage:
//
//	crimewatch serve --config config.yaml
//	crimewatch report list --status pending
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AmanKumar245/crimewatch/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
