package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

type (
	// PublicKey is a base58-rendered 32-byte account address.
	PublicKey string
	// SecretKey is a base58-rendered 64-byte keypair (seed + public half).
	SecretKey string
	// Signature is a base58-rendered 64-byte ed25519 signature.
	Signature string
)

type Keypair struct {
	entities.Entity

	PublicKey PublicKey
	SecretKey SecretKey
}

type SignedMessage struct {
	entities.Entity

	Message   string
	Signature Signature
	PublicKey PublicKey
}

type VerifiedMessage struct {
	entities.Entity

	Message   string
	PublicKey PublicKey
	Valid     bool
}

// Balance holds lamports as the authoritative value; Sol is the lossy
// display conversion (1 SOL = 1e9 lamports) and is never used for math.
type Balance struct {
	entities.Entity

	Address  PublicKey
	Lamports uint64
	Sol      decimal.Decimal
}

type Operation string

const (
	OperationEcho            Operation = "echo"
	OperationBalance         Operation = "balance"
	OperationGenerateKeypair Operation = "generate_keypair"
	OperationCreateToken     Operation = "create_token"
	OperationMintToken       Operation = "mint_token"
	OperationSignMessage     Operation = "sign_message"
	OperationVerifyMessage   Operation = "verify_message"
	OperationSendSol         Operation = "send_sol"
	OperationSendToken       Operation = "send_token"
)

// AuditEvent records one successfully served operation for the audit trail.
type AuditEvent struct {
	entities.Entity

	ID        uuid.UUID `json:"id"`
	Operation Operation `json:"operation"`
	Detail    string    `json:"detail"`
	At        time.Time `json:"at"`
}

func NewAuditEvent(op Operation, detail string) AuditEvent {
	return AuditEvent{
		ID:        uuid.New(),
		Operation: op,
		Detail:    detail,
		At:        time.Now().UTC(),
	}
}
