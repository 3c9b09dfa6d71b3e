package sdk_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
)

func TestGenerateKeypair_ReturnsValidBase58Keys(t *testing.T) {
	keypair := sdk.GenerateKeypair()

	if keypair.SecretKey == "" {
		t.Fatalf("expected non-empty secret key")
	}
	if keypair.PublicKey == "" {
		t.Fatalf("expected non-empty public key")
	}

	priv, err := base58.Decode(string(keypair.SecretKey))
	if err != nil {
		t.Fatalf("secret key is not valid base58: %v", err)
	}
	if len(priv) != 64 {
		t.Fatalf("unexpected secret key length: got %d, want 64", len(priv))
	}

	pub, err := base58.Decode(string(keypair.PublicKey))
	if err != nil {
		t.Fatalf("public key is not valid base58: %v", err)
	}
	if len(pub) != 32 {
		t.Fatalf("unexpected public key length: got %d, want 32", len(pub))
	}

	if got, want := priv[32:], pub; string(got) != string(want) {
		t.Fatalf("public key mismatch: does not match last 32 bytes of secret key")
	}
}

func TestParseAddress_RoundTrip(t *testing.T) {
	keypair := sdk.GenerateKeypair()

	pub, err := sdk.ParseAddress(string(keypair.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, string(keypair.PublicKey), pub.ToBase58())
	assert.Equal(t, string(keypair.PublicKey), sdk.EncodeBase58(pub.Bytes()))
}

func TestParseAddress_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad alphabet", "not-valid-base58!!", sdk.ErrInvalidEncoding},
		{"empty", "", sdk.ErrInvalidAddress},
		{"too short", sdk.EncodeBase58(make([]byte, 31)), sdk.ErrInvalidAddress},
		{"too long", sdk.EncodeBase58(make([]byte, 33)), sdk.ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sdk.ParseAddress(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKeypairFromSecret_RoundTrip(t *testing.T) {
	keypair := sdk.GenerateKeypair()

	account, err := sdk.KeypairFromSecret(string(keypair.SecretKey))
	require.NoError(t, err)
	assert.Equal(t, string(keypair.PublicKey), account.PublicKey.ToBase58())
}

func TestKeypairFromSecret_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad encoding", "!!!", sdk.ErrInvalidEncoding},
		{"seed only", sdk.EncodeBase58(make([]byte, 32)), sdk.ErrInvalidSecret},
		{"63 bytes", sdk.EncodeBase58(make([]byte, 63)), sdk.ErrInvalidSecret},
		{"65 bytes", sdk.EncodeBase58(make([]byte, 65)), sdk.ErrInvalidSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sdk.KeypairFromSecret(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKeypairFromSecret_MismatchedPublicHalf(t *testing.T) {
	keypair := sdk.GenerateKeypair()

	raw, err := base58.Decode(string(keypair.SecretKey))
	require.NoError(t, err)

	// corrupt one byte of the embedded public half
	raw[40] ^= 0xff
	_, err = sdk.KeypairFromSecret(sdk.EncodeBase58(raw))
	assert.ErrorIs(t, err, sdk.ErrSecretKeyMismatch)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	keypair := sdk.GenerateKeypair()
	account, err := sdk.KeypairFromSecret(string(keypair.SecretKey))
	require.NoError(t, err)

	message := []byte("hello solana gateway")
	signature := sdk.Sign(account, message)
	require.Len(t, signature, sdk.SignatureLength)

	assert.True(t, sdk.Verify(account.PublicKey, signature, message))

	// altering any single byte of the message invalidates the signature
	for i := range message {
		tampered := append([]byte(nil), message...)
		tampered[i] ^= 0x01
		assert.False(t, sdk.Verify(account.PublicKey, signature, tampered), "byte %d", i)
	}
}

func TestSign_MatchesStdlibEd25519(t *testing.T) {
	keypair := sdk.GenerateKeypair()
	account, err := sdk.KeypairFromSecret(string(keypair.SecretKey))
	require.NoError(t, err)

	message := []byte("deterministic signatures")
	want := ed25519.Sign(account.PrivateKey, message)
	assert.Equal(t, want, sdk.Sign(account, message))
}

func TestParseSignature_Rejects(t *testing.T) {
	_, err := sdk.ParseSignature(sdk.EncodeBase58(make([]byte, 63)))
	assert.ErrorIs(t, err, sdk.ErrInvalidSignature)

	_, err = sdk.ParseSignature("###")
	assert.ErrorIs(t, err, sdk.ErrInvalidEncoding)
}
