package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/Airplanefox77/Sakura-Money-Tracker/internal/transactions"
)

// Account is a single registered user's durable record: credentials plus
// the synced transaction list.
type Account struct {
	ID             string                     `json:"id"`
	Email          string                     `json:"email"`
	CredentialHash string                     `json:"credentialHash"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
	Transactions   []transactions.Transaction `json:"transactions"`
	Meta           map[string]any             `json:"meta"`
}

// Touch refreshes UpdatedAt; call on every mutation before persisting.
func (a *Account) Touch() {
	a.UpdatedAt = time.Now().UTC()
}

// NormalizeEmail lowercases and trims a login email. All lookups and id
// derivation go through this so casing and stray whitespace never produce
// a second account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountID derives the storage id for an email. It is a pure function of
// the normalized email, so the same login always maps to the same record.
func AccountID(email string) string {
	sum := sha256.Sum256([]byte(NormalizeEmail(email)))
	return hex.EncodeToString(sum[:])
}
