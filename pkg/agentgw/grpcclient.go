package agentgw

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	agentv1 "github.com/strandkit/strand/proto"

	"github.com/strandkit/strand/pkg/config"
)

// GRPCClient is the production transport to the agent service.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client agentv1.AgentServiceClient
}

// NewGRPCClient connects to the agent service.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to agent service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: agentv1.NewAgentServiceClient(conn),
	}, nil
}

// Close releases the connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) invoke(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
	resp, err := c.client.Invoke(ctx, &agentv1.InvokeRequest{
		AgentName:     req.AgentName,
		Action:        req.Action,
		CorrelationId: req.CorrelationID,
		PayloadJson:   req.PayloadJSON,
		MaxTokens:     int32(req.MaxTokens),
	})
	if err != nil {
		return nil, err
	}
	out := &InvokeResponse{PayloadJSON: resp.PayloadJson}
	if resp.Usage != nil {
		out.TotalTokens = int(resp.Usage.TotalTokens)
	}
	return out, nil
}

// New connects a gateway to the agent service at cfg.Endpoint. Close the
// returned client on shutdown.
func New(cfg *config.AgentConfig, budget *BudgetTracker) (*Gateway, *GRPCClient, error) {
	client, err := NewGRPCClient(cfg.Endpoint)
	if err != nil {
		return nil, nil, err
	}
	gw, err := newGateway(client.invoke, cfg, budget)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return gw, client, nil
}
