package sdk_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
)

func TestDecodeBase58_RoundTrip(t *testing.T) {
	raw := []byte{0, 1, 2, 3, 255, 254, 128, 42}

	decoded, err := sdk.DecodeBase58(sdk.EncodeBase58(raw))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, decoded))
}

func TestDecodeBase58_InvalidAlphabet(t *testing.T) {
	_, err := sdk.DecodeBase58("not-valid-base58!!")
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrInvalidEncoding)
}

func TestDecodeBase58_ZeroAndLodlOAreRejected(t *testing.T) {
	// 0, O, I and l are outside the base58 alphabet
	for _, in := range []string{"0", "O", "I", "l"} {
		_, err := sdk.DecodeBase58(in)
		assert.ErrorIs(t, err, sdk.ErrInvalidEncoding, "input %q", in)
	}
}

func TestDecodeBase64_RoundTrip(t *testing.T) {
	raw := []byte{2, 0, 0, 0, 64, 66, 15, 0, 0, 0, 0, 0}

	decoded, err := sdk.DecodeBase64(sdk.EncodeBase64(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeBase64_BadPadding(t *testing.T) {
	_, err := sdk.DecodeBase64("%%%%")
	assert.ErrorIs(t, err, sdk.ErrInvalidEncoding)
}
