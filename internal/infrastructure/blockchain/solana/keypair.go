package sdk

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/mappers"
)

const (
	// AddressLength is the raw byte size of a public key.
	AddressLength = 32
	// SecretKeyLength is the raw byte size of a keypair: 32-byte seed
	// followed by the 32-byte public half.
	SecretKeyLength = 64
	// SignatureLength is the raw byte size of an ed25519 signature.
	SignatureLength = 64
)

// GenerateKeypair creates a fresh ed25519 keypair. The secret is the full
// 64-byte private key, base58 encoded; the public key is its last 32 bytes.
func GenerateKeypair() entities.Keypair {
	account := types.NewAccount()
	return mappers.ToKeypair(account)
}

// ParseAddress decodes a base58 address and requires exactly 32 bytes.
func ParseAddress(text string) (common.PublicKey, error) {
	raw, err := DecodeBase58(text)
	if err != nil {
		return common.PublicKey{}, err
	}
	if len(raw) != AddressLength {
		return common.PublicKey{}, fmt.Errorf("%w: got %d", ErrInvalidAddress, len(raw))
	}
	return common.PublicKeyFromBytes(raw), nil
}

// KeypairFromSecret decodes a base58 secret and requires exactly 64 bytes.
// The embedded public half must match the key derived from the seed; a
// secret that fails this check could sign with a key it does not announce.
func KeypairFromSecret(secret string) (types.Account, error) {
	raw, err := DecodeBase58(secret)
	if err != nil {
		return types.Account{}, err
	}
	if len(raw) != SecretKeyLength {
		return types.Account{}, fmt.Errorf("%w: got %d", ErrInvalidSecret, len(raw))
	}
	derived := ed25519.NewKeyFromSeed(raw[:32])
	if !bytes.Equal(derived[32:], raw[32:]) {
		return types.Account{}, ErrSecretKeyMismatch
	}
	return types.AccountFromBytes(raw)
}

// Sign produces a deterministic ed25519 signature over the exact byte
// sequence supplied. The message is never re-encoded or normalized.
func Sign(account types.Account, message []byte) []byte {
	return ed25519.Sign(account.PrivateKey, message)
}

// ParseSignature decodes a base58 signature and requires exactly 64 bytes.
func ParseSignature(text string) ([]byte, error) {
	raw, err := DecodeBase58(text)
	if err != nil {
		return nil, err
	}
	if len(raw) != SignatureLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSignature, len(raw))
	}
	return raw, nil
}

// Verify reports whether signature is valid for message under pubkey.
// Inputs are structurally validated by the parse functions; a
// cryptographically invalid signature is a false result, not an error.
func Verify(pubkey common.PublicKey, signature, message []byte) bool {
	return ed25519.Verify(pubkey.Bytes(), message, signature)
}
