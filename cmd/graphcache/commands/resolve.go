package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/graphcache/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [documents...]",
		Short: "Store and report the resolution results of each document",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			lenient, _ := cmd.Flags().GetBool("lenient")
			trace, _ := cmd.Flags().GetBool("trace")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.ResolveOptions{Lenient: lenient, Trace: trace}
			if watch {
				return c.app.Watch(cmd.Context(), args, opts)
			}
			return c.app.Resolve(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolP("lenient", "l", false, "Report unresolved dependencies without failing")
	cmd.Flags().BoolP("watch", "w", false, "Resolve again whenever a document changes")
	cmd.Flags().Bool("trace", false, "Log the duration of every resolution step")
	return cmd
}
