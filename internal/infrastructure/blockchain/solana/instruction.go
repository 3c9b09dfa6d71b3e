package sdk

import (
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
)

// The builders below are pure: validated params in, one unsigned instruction
// out. Account order is part of the on-chain calling convention for each
// program and must never be rearranged; consumers rely on positions.

func appendUint64LE(data []byte, v uint64) []byte {
	return append(data,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

// InitializeMint builds the SPL Token InitializeMint instruction.
// Accounts: [mint (writable), rent sysvar (readonly)].
func InitializeMint(p models.InitializeMintParams) types.Instruction {
	// InitializeMint: 0, decimals u8, mintAuthority pubkey, freezeAuthority COption (0 = none)
	data := make([]byte, 0, 1+1+32+1)
	data = append(data, 0)
	data = append(data, p.Decimals)
	data = append(data, p.MintAuthority.Bytes()...)
	data = append(data, 0) // no freeze authority

	return types.Instruction{
		ProgramID: common.TokenProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: p.Mint, IsSigner: false, IsWritable: true},
			{PubKey: common.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}
}

// MintTo builds the SPL Token MintTo instruction.
// Accounts: [mint (writable), destination token account (writable),
// mint authority (signer)].
func MintTo(p models.MintToParams) types.Instruction {
	// MintTo: 7, amount u64 little-endian
	data := make([]byte, 0, 1+8)
	data = append(data, 7)
	data = appendUint64LE(data, p.Amount)

	return types.Instruction{
		ProgramID: common.TokenProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: p.Mint, IsSigner: false, IsWritable: true},
			{PubKey: p.Destination, IsSigner: false, IsWritable: true},
			{PubKey: p.Authority, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}
}

// TokenTransfer builds the SPL Token Transfer instruction.
// Accounts: [source token account (writable), destination token account
// (writable), owner (signer)].
func TokenTransfer(p models.TokenTransferParams) types.Instruction {
	// Transfer: 3, amount u64 little-endian
	data := make([]byte, 0, 1+8)
	data = append(data, 3)
	data = appendUint64LE(data, p.Amount)

	return types.Instruction{
		ProgramID: common.TokenProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: p.Source, IsSigner: false, IsWritable: true},
			{PubKey: p.Destination, IsSigner: false, IsWritable: true},
			{PubKey: p.Owner, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}
}

// SolTransfer builds the System Program Transfer instruction. This is the
// one payload assembled without an SPL discriminator helper: the System
// Program uses a 4-byte little-endian discriminator (Transfer = 2) followed
// by the lamport amount. A zero amount is rejected.
func SolTransfer(p models.SolTransferParams) (types.Instruction, error) {
	if p.Lamports == 0 {
		return types.Instruction{}, ErrZeroAmount
	}

	// Transfer: 2 u32 little-endian, lamports u64 little-endian
	data := make([]byte, 0, 4+8)
	data = append(data, 2, 0, 0, 0)
	data = appendUint64LE(data, p.Lamports)

	return types.Instruction{
		ProgramID: common.SystemProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: p.From, IsSigner: true, IsWritable: true},
			{PubKey: p.To, IsSigner: false, IsWritable: true},
		},
		Data: data,
	}, nil
}
