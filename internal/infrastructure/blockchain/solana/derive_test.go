package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
)

func TestDeriveAssociatedTokenAddress_Deterministic(t *testing.T) {
	owner := testKey(9)
	mint := testKey(10)

	first, err := sdk.DeriveAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	second, err := sdk.DeriveAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, owner, first)
	assert.NotEqual(t, mint, first)
}

func TestDeriveAssociatedTokenAddress_DependsOnBothInputs(t *testing.T) {
	mint := testKey(10)

	one, err := sdk.DeriveAssociatedTokenAddress(testKey(9), mint)
	require.NoError(t, err)
	two, err := sdk.DeriveAssociatedTokenAddress(testKey(11), mint)
	require.NoError(t, err)
	assert.NotEqual(t, one, two)

	three, err := sdk.DeriveAssociatedTokenAddress(testKey(9), testKey(12))
	require.NoError(t, err)
	assert.NotEqual(t, one, three)
}
