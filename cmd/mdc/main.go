package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mdc",
		Short: "Material Components for Go",
		Long: `mdc binds Material Components for the web to Go components.

The gallery server renders every component and drives the browser's
MDC widgets over a websocket. The render command prints the server
markup of a single component.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		componentsCmd(),
		versionCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError prints err, with code, detail and suggestion for mdc errors.
func printError(err error) {
	var me *mdcerrors.MDCError
	if errors.As(err, &me) {
		mdcerrors.AutoColors(os.Stderr)
		fmt.Fprintln(os.Stderr, me.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
}
