package cli

import (
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/todosync/internal/client/config"
	"github.com/dmitrijs2005/todosync/internal/client/syncclient"
	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"github.com/spf13/cobra"
)

// SyncClient is the subset of syncclient.Client used by the commands.
type SyncClient interface {
	Ping(ctx context.Context) error
	Pull(ctx context.Context, lastPulledAt *int64) (*pb.PullResponse, error)
	Push(ctx context.Context, changes *pb.Changes, lastPulledAt *int64) (*pb.PushResponse, error)
	Status(ctx context.Context) (*pb.StatusResponse, error)
	Close() error
}

// RootOptions holds global flags and the resolved configuration.
type RootOptions struct {
	ConfigPath string
	Addr       string
	Token      string
	Timeout    time.Duration

	cfg       *config.Config
	out       io.Writer
	newClient func(addr, token string) (SyncClient, error)
}

func defaultClient(addr, token string) (SyncClient, error) {
	return syncclient.New(addr, token)
}

// NewRootCommand creates the root command for syncctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultClient)
}

func newRootCommand(newClient func(addr, token string) (SyncClient, error)) *cobra.Command {
	opts := &RootOptions{newClient: newClient}

	cmd := &cobra.Command{
		Use:           "syncctl",
		Short:         "TodoSync command-line client",
		Long:          "Talks to a TodoSync server: pull and push change sets, inspect sync status.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Addr, "addr", "a", "", "server address (host:port)")
	cmd.PersistentFlags().StringVarP(&opts.Token, "token", "t", "", "access token")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "request timeout")

	cmd.AddCommand(newTokenCommand(opts))
	cmd.AddCommand(newPingCommand(opts))
	cmd.AddCommand(newPullCommand(opts))
	cmd.AddCommand(newPushCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))

	return cmd
}

// resolve loads the config file and lets explicit flags override it.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	if o.Addr != "" {
		cfg.ServerEndpointAddr = o.Addr
	}
	if o.Token != "" {
		cfg.AccessToken = o.Token
	}
	if o.Timeout > 0 {
		cfg.RequestTimeout = o.Timeout
	}

	o.cfg = cfg
	o.out = cmd.OutOrStdout()
	return nil
}

// withClient opens a client, runs fn under the request timeout and closes
// the client afterwards.
func (o *RootOptions) withClient(ctx context.Context, fn func(context.Context, SyncClient) error) error {
	c, err := o.newClient(o.cfg.ServerEndpointAddr, o.cfg.AccessToken)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	defer cancel()

	return fn(ctx, c)
}
