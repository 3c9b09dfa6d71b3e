package models

import "github.com/google/uuid"

// Message is the wire model for one audit record. Hash doubles as the
// partition key so records for identical payloads land together.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
	Hash    string    `json:"hash"`
}
