package models

import "github.com/blocto/solana-go-sdk/common"

// Validated, typed parameter sets consumed by the instruction builders.
// Construction happens only after every address has passed parsing.

type InitializeMintParams struct {
	Mint          common.PublicKey
	MintAuthority common.PublicKey
	Decimals      uint8
}

type MintToParams struct {
	Mint        common.PublicKey
	Destination common.PublicKey // token account receiving the minted amount
	Authority   common.PublicKey
	Amount      uint64
}

type TokenTransferParams struct {
	Source      common.PublicKey // token account debited
	Destination common.PublicKey // token account credited
	Owner       common.PublicKey
	Amount      uint64
}

type SolTransferParams struct {
	From     common.PublicKey
	To       common.PublicKey
	Lamports uint64
}

type BalanceRequest struct {
	PublicKey string
}
