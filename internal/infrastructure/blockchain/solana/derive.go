package sdk

import (
	"github.com/blocto/solana-go-sdk/common"
)

// DeriveAssociatedTokenAddress derives the ATA PDA for owner+mint.
// The seed order is fixed by the associated token account program.
func DeriveAssociatedTokenAddress(owner, mint common.PublicKey) (common.PublicKey, error) {
	seeds := [][]byte{
		owner.Bytes(),
		common.TokenProgramID.Bytes(),
		mint.Bytes(),
	}
	pda, _, err := common.FindProgramAddress(seeds, common.SPLAssociatedTokenAccountProgramID)
	if err != nil {
		return common.PublicKey{}, err
	}
	return pda, nil
}
