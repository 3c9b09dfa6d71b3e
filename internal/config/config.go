package config

import (
	"os"
	"strings"

	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
)

// Config gathers every process-wide setting. It is built once in main and
// passed into the container so the core never reads the environment itself.
type Config struct {
	// Addr is the serve address, e.g. "0.0.0.0:3000".
	Addr string
	// RPCURL is the Solana RPC endpoint used for balance lookups.
	RPCURL string
	// Mode switches debug features (pprof, echo debug) when set to "debug".
	Mode string

	// KafkaBrokers enables the operation audit trail when non-empty.
	KafkaBrokers []string
	KafkaTopic   string
}

const (
	defaultAddr  = "0.0.0.0:3000"
	defaultTopic = "solana-gateway.operations"
)

// FromEnv reads configuration from the process environment, applying
// defaults for anything unset. godotenv is expected to have been loaded
// by the caller already.
func FromEnv() Config {
	cfg := Config{
		Addr:       os.Getenv("API_ADDR"),
		RPCURL:     os.Getenv("SOLANA_RPC_URL"),
		Mode:       os.Getenv("API_MODE"),
		KafkaTopic: os.Getenv("KAFKA_TOPIC"),
	}

	if port := os.Getenv("PORT"); port != "" && cfg.Addr == "" {
		cfg.Addr = "0.0.0.0:" + port
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	// An explicit SOLANA_RPC_URL wins; otherwise SOLANA_NETWORK picks a
	// public cluster endpoint, defaulting to mainnet.
	if cfg.RPCURL == "" {
		network := sdk.Network(os.Getenv("SOLANA_NETWORK"))
		if network == "" {
			network = sdk.NetworkMainnet
		}
		cfg.RPCURL = sdk.DefaultRPCURL(network)
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = defaultTopic
	}
	return cfg
}
