package syncclient

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todosync/internal/common"
	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type Client struct {
	endpointURL string
	accessToken string
	conn        *grpc.ClientConn
	client      pb.SyncServiceClient
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.accessToken != "" {
		ctx = withAccessToken(ctx, c.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// New dials endpointURL lazily; the first RPC establishes the connection.
func New(endpointURL, accessToken string, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{endpointURL: endpointURL, accessToken: accessToken}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewSyncServiceClient(conn)
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return c.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

// Pull fetches everything changed since lastPulledAt, or the full active
// set when lastPulledAt is nil.
func (c *Client) Pull(ctx context.Context, lastPulledAt *int64) (*pb.PullResponse, error) {
	resp, err := c.client.Pull(ctx, &pb.PullRequest{LastPulledAt: lastPulledAt})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp, nil
}

func (c *Client) Push(ctx context.Context, changes *pb.Changes, lastPulledAt *int64) (*pb.PushResponse, error) {
	resp, err := c.client.Push(ctx, &pb.PushRequest{Changes: changes, LastPulledAt: lastPulledAt})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp, nil
}

func (c *Client) Status(ctx context.Context) (*pb.StatusResponse, error) {
	resp, err := c.client.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp, nil
}

func (c *Client) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrMalformedRequest, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
