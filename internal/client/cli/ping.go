package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c SyncClient) error {
				if err := c.Ping(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(opts.out, "OK")
				return err
			})
		},
	}
}
