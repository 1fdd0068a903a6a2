// Command graphmetrics computes the metrics of every graph artifact of one
// snapshot and merges them into a single JSON document.
//
// Usage:
//
//	graphmetrics --root ./quijote/grafos --snapnum 000 --workers 8
//	graphmetrics snapshots --root ./quijote/grafos
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

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "graphmetrics:", err)
		os.Exit(1)
	}
}
