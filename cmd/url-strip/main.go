// Command url-strip cleans tracking parameters from URLs on the command
// line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	urlstrip "github.com/okpulse/url-strip"
	"github.com/okpulse/url-strip/result"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "url-strip",
		Short:         "Strip tracking parameters from URLs",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newStripCmd(), newDomainsCmd(), newVersionCmd())
	return root
}

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <url>",
		Short: "Print the cleaned form of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := urlstrip.Strip(args[0])
			if u, ok := result.GetOk(res); ok {
				fmt.Fprintln(cmd.OutOrStdout(), u.String())
				return nil
			}
			return result.UnwrapErr(res)
		},
	}
}

func newDomainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List hostnames with a registered site rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range urlstrip.Domains() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "url-strip %s\n", version)
		},
	}
}
