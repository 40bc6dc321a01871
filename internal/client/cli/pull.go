package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newPullCommand(opts *RootOptions) *cobra.Command {
	var since int64

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Fetch changes since a checkpoint",
		Long: `Fetch the change log since --since (milliseconds). Without --since the
server returns every active record.

Examples:
  syncctl pull
  syncctl pull --since 1700000000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lastPulledAt *int64
			if cmd.Flags().Changed("since") {
				lastPulledAt = &since
			}
			return opts.withClient(cmd.Context(), func(ctx context.Context, c SyncClient) error {
				resp, err := c.Pull(ctx, lastPulledAt)
				if err != nil {
					return err
				}
				return printJSON(opts.out, resp)
			})
		},
	}

	cmd.Flags().Int64Var(&since, "since", 0, "last pulled checkpoint in milliseconds")

	return cmd
}
