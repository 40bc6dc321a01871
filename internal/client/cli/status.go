package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last pull and push recorded for the token's user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c SyncClient) error {
				resp, err := c.Status(ctx)
				if err != nil {
					return err
				}
				return printJSON(opts.out, resp)
			})
		},
	}
}
