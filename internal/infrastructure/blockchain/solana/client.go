package sdk

import (
	"context"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
)

// Client is the thin balance-query adapter over a Solana RPC node. It is
// the only component of this package that touches the network.
type Client struct {
	c *client.Client
}

// Network defines Solana cluster
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
)

func DefaultRPCURL(network Network) string {
	switch network {
	case NetworkMainnet:
		return "https://api.mainnet-beta.solana.com"
	case NetworkTestnet:
		return "https://api.testnet.solana.com"
	case NetworkDevnet:
		fallthrough
	default:
		return "https://api.devnet.solana.com"
	}
}

// NewClient builds a client against an explicit RPC endpoint. The endpoint
// is always injected by configuration, never read from ambient state here.
func NewClient(rpcURL string) *Client {
	return &Client{c: client.NewClient(rpcURL)}
}

// GetBalance returns the balance in lamports for a given public key
// (base58). The address is assumed to be validated by the caller.
func (c *Client) GetBalance(ctx context.Context, req models.BalanceRequest) (uint64, error) {
	bal, err := c.c.GetBalance(ctx, req.PublicKey)
	if err != nil {
		return 0, err
	}
	return bal, nil
}
