package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

func newPushCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push a change set read from a JSON file",
		Long: `Push a change set. The input is a JSON object of the form
{"changes": {"categories": {...}, "todos": {...}}, "lastPulledAt": 0}.
Field names may be given in snake_case or lowerCamelCase.

Examples:
  syncctl push --file changes.json
  cat changes.json | syncctl push --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readPushRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return opts.withClient(cmd.Context(), func(ctx context.Context, c SyncClient) error {
				resp, err := c.Push(ctx, req.Changes, req.LastPulledAt)
				if err != nil {
					return err
				}
				return printJSON(opts.out, resp)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `JSON file with the change set, "-" for stdin (required)`)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readPushRequest(stdin io.Reader, file string) (*pb.PushRequest, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read change set: %w", err)
	}

	var req pb.PushRequest
	if err := protojson.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse change set: %w", err)
	}
	return &req, nil
}
