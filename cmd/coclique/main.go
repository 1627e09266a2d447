// Command coclique loads a simple graph from YAML and checks, enumerates or
// complements independent sets.
//
// Usage:
//
//	coclique --graph g.yaml check --size 2 1 3
//	coclique --graph g.yaml enumerate --size 3
//	coclique --graph g.yaml complement > complement.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
