package models

// Request bodies. Field names mirror the public API contract (camelCase).

type EchoMessage struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type CreateTokenRequest struct {
	MintAuthority string `json:"mintAuthority"`
	Mint          string `json:"mint"`
	Decimals      uint8  `json:"decimals"`
}

type MintTokenRequest struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
	Amount      uint64 `json:"amount"`
}

type SignMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

type SendSolRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports uint64 `json:"lamports"`
}

type SendTokenRequest struct {
	Destination string `json:"destination"`
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	Amount      uint64 `json:"amount"`
}
