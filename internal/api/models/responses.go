package models

// Response payloads. Instruction payloads keep the historical snake_case
// field names; each operation has an explicit record rather than a loose map
// so field order and types stay stable.

type EchoResponse struct {
	Status string      `json:"status"`
	Echoed EchoMessage `json:"echoed"`
}

type BalanceResponse struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
	// Sol is lossy and for display only; lamports is authoritative.
	Sol float64 `json:"sol"`
}

type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

type AccountMetaResponse struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type InstructionResponse struct {
	ProgramID       string                `json:"program_id"`
	Accounts        []AccountMetaResponse `json:"accounts"`
	InstructionData string                `json:"instruction_data"`
}

// SolTransferResponse lists accounts as bare addresses; the System Program
// transfer convention is positional [from, to].
type SolTransferResponse struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

// LegacyAccountResponse is the reduced account shape of the send-token
// response, kept for compatibility with existing consumers.
type LegacyAccountResponse struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

type SendTokenResponse struct {
	ProgramID       string                  `json:"program_id"`
	Accounts        []LegacyAccountResponse `json:"accounts"`
	InstructionData string                  `json:"instruction_data"`
}

type SignMessageResponse struct {
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
	Message   string `json:"message"`
}

type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}
