package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whiteelite/solana-gateway/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("API_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_NETWORK", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_TOPIC", "")

	cfg := config.FromEnv()
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.RPCURL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "solana-gateway.operations", cfg.KafkaTopic)
}

func TestFromEnv_NetworkSelectsClusterURL(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("SOLANA_NETWORK", "devnet")

	cfg := config.FromEnv()
	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPCURL)
}

func TestFromEnv_ExplicitURLBeatsNetwork(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "http://localhost:8899")
	t.Setenv("SOLANA_NETWORK", "testnet")

	cfg := config.FromEnv()
	assert.Equal(t, "http://localhost:8899", cfg.RPCURL)
}

func TestFromEnv_PortFallback(t *testing.T) {
	t.Setenv("API_ADDR", "")
	t.Setenv("PORT", "8080")

	cfg := config.FromEnv()
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
}

func TestFromEnv_Explicit(t *testing.T) {
	t.Setenv("API_ADDR", "127.0.0.1:9000")
	t.Setenv("SOLANA_RPC_URL", "https://api.devnet.solana.com")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg := config.FromEnv()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPCURL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}
