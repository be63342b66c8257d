// Command rwseg runs random-walker seed propagation on JSON graph documents.
//
//	rwseg solve graph.json -o result.json --mode cg_mg
//	rwseg evaluate result.json truth.json --seeds graph.json
//	rwseg version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at link time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
