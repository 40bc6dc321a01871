package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todosync/internal/server/auth"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	*RootOptions
	UserID string
	Secret string
	TTL    time.Duration
}

func newTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &tokenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for a user",
		Long: `Mint an HS256 access token for development and testing.

The secret must match the server's -s flag.

Examples:
  syncctl token --user u1
  syncctl token --user u1 --secret s3cret --ttl 1h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.UserID == "" {
				return errors.New("--user is required")
			}
			secret := opts.Secret
			if secret == "" {
				secret = opts.cfg.SecretKey
			}
			token, err := auth.GenerateToken(opts.UserID, []byte(secret), opts.TTL)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(opts.out, token)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.UserID, "user", "u", "", "user id to embed in the token (required)")
	cmd.Flags().StringVar(&opts.Secret, "secret", "", "signing secret (defaults to config secret_key)")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", 24*time.Hour, "token validity")

	return cmd
}
