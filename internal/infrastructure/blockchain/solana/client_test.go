package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
)

func TestDefaultRPCURL(t *testing.T) {
	tests := []struct {
		name    string
		network sdk.Network
		want    string
	}{
		{"mainnet", sdk.NetworkMainnet, "https://api.mainnet-beta.solana.com"},
		{"testnet", sdk.NetworkTestnet, "https://api.testnet.solana.com"},
		{"devnet", sdk.NetworkDevnet, "https://api.devnet.solana.com"},
		{"unknown falls back to devnet", sdk.Network("localnet"), "https://api.devnet.solana.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sdk.DefaultRPCURL(tt.network))
		})
	}
}
