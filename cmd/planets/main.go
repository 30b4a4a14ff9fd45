// Command planets fetches the SWAPI planet catalog once and prints it as a
// table sorted by name.
//
// Usage:
//
//	go run ./cmd/planets table --format markdown
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "planets",
		Short:        "Browse the Star Wars planet catalog",
		SilenceUsage: true,
	}
	root.AddCommand(newTableCommand())
	return root
}
