// Package cli implements portfolioctl, the operator tool for the portfolio
// backend.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// NewRootCmd builds the portfolioctl command tree writing to out
func NewRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Operator tool for the portfolio backend",
		Long: `portfolioctl mints admin tokens, previews assistant markup, manages the
database schema and talks to a running portfolio backend.

Examples:
  portfolioctl token --subject dicky --ttl 12h
  portfolioctl render reply.md
  echo "### Hi" | portfolioctl render
  portfolioctl chat "Apa saja layanan yang tersedia?"
  portfolioctl migrate up
  portfolioctl migrate create add_testimonials`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(newTokenCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newChatCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

// Execute runs portfolioctl against the process stdio
func Execute() {
	root := NewRootCmd(os.Stdout)
	root.SetIn(os.Stdin)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
