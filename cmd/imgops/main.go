// Command imgops applies affine transforms and 3x3 filters to images.
//
// Usage:
//
//	imgops apply -i in.png -o out.png --step rotate:90 --step median
//	imgops batch plan.json
//	imgops ops
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
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "imgops:", err)
		os.Exit(1)
	}
}
