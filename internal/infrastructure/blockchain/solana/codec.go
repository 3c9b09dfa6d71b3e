package sdk

import (
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
)

// DecodeBase58 decodes text, classifying malformed alphabet input as
// ErrInvalidEncoding. It never returns a truncated result.
func DecodeBase58(text string) ([]byte, error) {
	raw, err := base58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return raw, nil
}

// EncodeBase58 renders raw bytes in the canonical base58 alphabet.
func EncodeBase58(raw []byte) string {
	return base58.Encode(raw)
}

// DecodeBase64 decodes standard-alphabet base64 with padding.
func DecodeBase64(text string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return raw, nil
}

// EncodeBase64 renders raw bytes as standard base64. Instruction payloads
// travel in this encoding.
func EncodeBase64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
