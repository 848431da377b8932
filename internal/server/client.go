package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/funvibe/calcx/internal/evaluator"
)

// Client calls a remote calcx.v1.Calculator.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to target without transport security. Extra options are
// appended, so tests can supply a custom dialer.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Evaluate sends src to the server. The returned error is a transport or
// decoding failure; evaluation errors come back inside the Outcome.
func (c *Client) Evaluate(ctx context.Context, src string) (evaluator.Outcome, error) {
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, EvaluateMethod, wrapperspb.Bytes([]byte(src)), resp); err != nil {
		return evaluator.Outcome{}, fmt.Errorf("evaluate rpc: %w", err)
	}
	return DecodeOutcome(resp)
}
