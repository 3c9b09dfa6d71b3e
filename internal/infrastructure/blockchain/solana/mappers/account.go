package mappers

import (
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
)

// ToKeypair renders a generated account as the domain keypair: the secret is
// the full 64-byte private key, the public key its last 32 bytes.
func ToKeypair(account types.Account) entities.Keypair {
	return entities.Keypair{
		PublicKey: entities.PublicKey(base58.Encode(account.PrivateKey[32:])),
		SecretKey: entities.SecretKey(base58.Encode(account.PrivateKey)),
	}
}
