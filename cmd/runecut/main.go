// Command runecut slices UTF-16 text at code unit offsets without breaking
// surrogate pairs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/scalecode-solutions/runecut/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "runecut:", err)
		os.Exit(1)
	}
}
