package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/rs/zerolog"
	"github.com/samber/do"
	"github.com/shopspring/decimal"

	apimodels "github.com/whiteelite/solana-gateway/internal/api/models"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/domain/repositories"
	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
	sdkmodels "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
	"github.com/whiteelite/solana-gateway/internal/pkg/logging"
)

// BalanceFetcher is the remote ledger dependency of the balance operation.
// It is only ever called with an address that already passed parsing.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, req sdkmodels.BalanceRequest) (uint64, error)
}

// ServiceGateway validates raw request fields, maps them onto typed
// parameters and runs the signing/verification/instruction-building core.
// It holds no mutable state; every method is safe for concurrent use.
type ServiceGateway struct {
	balances BalanceFetcher
	audit    repositories.MessageQueueProducer[entities.AuditEvent]
	logger   zerolog.Logger
}

func NewServiceGateway(container *do.Injector) (*ServiceGateway, error) {
	balances, err := do.Invoke[BalanceFetcher](container)
	if err != nil {
		return nil, err
	}

	// The audit trail is optional; absence just disables recording.
	audit, _ := do.Invoke[repositories.MessageQueueProducer[entities.AuditEvent]](container)

	return &ServiceGateway{
		balances: balances,
		audit:    audit,
		logger:   logging.WithComponent("gateway"),
	}, nil
}

// record emits an audit event without ever blocking the request path.
func (s *ServiceGateway) record(op entities.Operation, detail string) {
	if s.audit == nil {
		return
	}
	select {
	case s.audit.ToProduceBuffered() <- entities.NewAuditEvent(op, detail):
	default:
		s.logger.Warn().Str("operation", string(op)).Msg("audit buffer full, event dropped")
	}
}

func (s *ServiceGateway) Echo(req apimodels.EchoMessage) apimodels.EchoResponse {
	s.record(entities.OperationEcho, req.Name)
	return apimodels.EchoResponse{Status: "Received", Echoed: req}
}

// Balance short-circuits on a malformed address without touching the RPC
// node. Any client failure collapses into one opaque message.
func (s *ServiceGateway) Balance(ctx context.Context, address string) (*apimodels.BalanceResponse, error) {
	pub, err := sdk.ParseAddress(address)
	if err != nil {
		return nil, errors.New("Invalid address format")
	}

	lamports, err := s.balances.GetBalance(ctx, sdkmodels.BalanceRequest{PublicKey: pub.ToBase58()})
	if err != nil {
		s.logger.Warn().Err(err).Str("address", address).Msg("balance lookup failed")
		return nil, errors.New("Failed to fetch balance")
	}

	balance := entities.Balance{
		Address:  entities.PublicKey(pub.ToBase58()),
		Lamports: lamports,
		// display only, never authoritative
		Sol: decimal.NewFromUint64(lamports).Shift(-9),
	}

	s.record(entities.OperationBalance, address)
	return &apimodels.BalanceResponse{
		Address:  string(balance.Address),
		Lamports: balance.Lamports,
		Sol:      balance.Sol.InexactFloat64(),
	}, nil
}

func (s *ServiceGateway) GenerateKeypair() *apimodels.KeypairResponse {
	keypair := sdk.GenerateKeypair()
	s.record(entities.OperationGenerateKeypair, string(keypair.PublicKey))
	return &apimodels.KeypairResponse{
		Pubkey: string(keypair.PublicKey),
		Secret: string(keypair.SecretKey),
	}
}

func (s *ServiceGateway) CreateToken(req apimodels.CreateTokenRequest) (*apimodels.InstructionResponse, error) {
	if req.Mint == "" || req.MintAuthority == "" {
		return nil, errors.New("Missing required fields: mint and mint_authority")
	}

	mint, err := sdk.ParseAddress(req.Mint)
	if err != nil {
		return nil, errors.New("Invalid mint address")
	}
	authority, err := sdk.ParseAddress(req.MintAuthority)
	if err != nil {
		return nil, errors.New("Invalid mint authority address")
	}

	ix := sdk.InitializeMint(sdkmodels.InitializeMintParams{
		Mint:          mint,
		MintAuthority: authority,
		Decimals:      req.Decimals,
	})

	s.record(entities.OperationCreateToken, req.Mint)
	return instructionResponse(ix), nil
}

func (s *ServiceGateway) MintToken(req apimodels.MintTokenRequest) (*apimodels.InstructionResponse, error) {
	if req.Mint == "" || req.Destination == "" || req.Authority == "" {
		return nil, errors.New("Missing required fields: mint, destination, and authority")
	}

	mint, err := sdk.ParseAddress(req.Mint)
	if err != nil {
		return nil, errors.New("Invalid mint address")
	}
	authority, err := sdk.ParseAddress(req.Authority)
	if err != nil {
		return nil, errors.New("Invalid authority address")
	}
	destination, err := sdk.ParseAddress(req.Destination)
	if err != nil {
		return nil, errors.New("Invalid destination address")
	}

	// Tokens land in the destination wallet's associated token account.
	ata, err := sdk.DeriveAssociatedTokenAddress(destination, mint)
	if err != nil {
		return nil, fmt.Errorf("Failed to create mint instruction: %v", err)
	}

	ix := sdk.MintTo(sdkmodels.MintToParams{
		Mint:        mint,
		Destination: ata,
		Authority:   authority,
		Amount:      req.Amount,
	})

	s.record(entities.OperationMintToken, req.Mint)
	return instructionResponse(ix), nil
}

func (s *ServiceGateway) SignMessage(req apimodels.SignMessageRequest) (*apimodels.SignMessageResponse, error) {
	account, err := sdk.KeypairFromSecret(req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, sdk.ErrInvalidEncoding):
			return nil, errors.New("Invalid base58 encoding")
		case errors.Is(err, sdk.ErrSecretKeyMismatch):
			return nil, errors.New("Invalid keypair: public key does not match seed")
		default:
			return nil, errors.New("Invalid keypair: must be 64 bytes")
		}
	}

	// Sign the exact bytes supplied; no normalization.
	signed := entities.SignedMessage{
		Message:   req.Message,
		Signature: entities.Signature(sdk.EncodeBase58(sdk.Sign(account, []byte(req.Message)))),
		PublicKey: entities.PublicKey(account.PublicKey.ToBase58()),
	}

	s.record(entities.OperationSignMessage, string(signed.PublicKey))
	return &apimodels.SignMessageResponse{
		Signature: string(signed.Signature),
		Pubkey:    string(signed.PublicKey),
		Message:   signed.Message,
	}, nil
}

// VerifyMessage returns valid=false for a cryptographically bad signature;
// only structurally malformed inputs produce an error.
func (s *ServiceGateway) VerifyMessage(req apimodels.VerifyMessageRequest) (*apimodels.VerifyMessageResponse, error) {
	pub, err := sdk.ParseAddress(req.Pubkey)
	if err != nil {
		return nil, errors.New("Invalid signature or pubkey")
	}
	signature, err := sdk.ParseSignature(req.Signature)
	if err != nil {
		return nil, errors.New("Invalid signature or pubkey")
	}

	verified := entities.VerifiedMessage{
		Message:   req.Message,
		PublicKey: entities.PublicKey(req.Pubkey),
		Valid:     sdk.Verify(pub, signature, []byte(req.Message)),
	}

	s.record(entities.OperationVerifyMessage, req.Pubkey)
	return &apimodels.VerifyMessageResponse{
		Valid:   verified.Valid,
		Message: verified.Message,
		Pubkey:  string(verified.PublicKey),
	}, nil
}

func (s *ServiceGateway) SendSol(req apimodels.SendSolRequest) (*apimodels.SolTransferResponse, error) {
	if req.Lamports == 0 {
		return nil, errors.New("Amount must be greater than 0")
	}

	from, err := sdk.ParseAddress(req.From)
	if err != nil {
		return nil, errors.New("Invalid sender public key")
	}
	to, err := sdk.ParseAddress(req.To)
	if err != nil {
		return nil, errors.New("Invalid recipient public key")
	}

	ix, err := sdk.SolTransfer(sdkmodels.SolTransferParams{
		From:     from,
		To:       to,
		Lamports: req.Lamports,
	})
	if err != nil {
		return nil, errors.New("Amount must be greater than 0")
	}

	accounts := make([]string, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, a.PubKey.ToBase58())
	}

	s.record(entities.OperationSendSol, req.From)
	return &apimodels.SolTransferResponse{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: sdk.EncodeBase64(ix.Data),
	}, nil
}

func (s *ServiceGateway) SendToken(req apimodels.SendTokenRequest) (*apimodels.SendTokenResponse, error) {
	if req.Destination == "" || req.Owner == "" || req.Mint == "" {
		return nil, errors.New("Missing required fields: destination, owner, and mint")
	}

	destination, err := sdk.ParseAddress(req.Destination)
	if err != nil {
		return nil, errors.New("Invalid destination public key")
	}
	owner, err := sdk.ParseAddress(req.Owner)
	if err != nil {
		return nil, errors.New("Invalid owner public key")
	}
	mint, err := sdk.ParseAddress(req.Mint)
	if err != nil {
		return nil, errors.New("Invalid mint public key")
	}

	fromATA, err := sdk.DeriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, fmt.Errorf("Failed to create transfer instruction: %v", err)
	}
	toATA, err := sdk.DeriveAssociatedTokenAddress(destination, mint)
	if err != nil {
		return nil, fmt.Errorf("Failed to create transfer instruction: %v", err)
	}

	ix := sdk.TokenTransfer(sdkmodels.TokenTransferParams{
		Source:      fromATA,
		Destination: toATA,
		Owner:       owner,
		Amount:      req.Amount,
	})

	// The response account list keeps the legacy positional contract
	// [owner, destination ATA, owner]; the instruction itself stays
	// canonical [source ATA, destination ATA, owner].
	accounts := []apimodels.LegacyAccountResponse{
		{Pubkey: owner.ToBase58(), IsSigner: false},
		{Pubkey: toATA.ToBase58(), IsSigner: false},
		{Pubkey: owner.ToBase58(), IsSigner: false},
	}

	s.record(entities.OperationSendToken, req.Mint)
	return &apimodels.SendTokenResponse{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: sdk.EncodeBase64(ix.Data),
	}, nil
}

func instructionResponse(ix types.Instruction) *apimodels.InstructionResponse {
	accounts := make([]apimodels.AccountMetaResponse, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		accounts = append(accounts, apimodels.AccountMetaResponse{
			Pubkey:     a.PubKey.ToBase58(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	return &apimodels.InstructionResponse{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: sdk.EncodeBase64(ix.Data),
	}
}
