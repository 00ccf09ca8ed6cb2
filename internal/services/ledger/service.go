package ledger

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"kiib/internal/cache"
	"kiib/internal/domain"
)

// Service exposes the points ledger: fetching the caller's history,
// crediting points (admin), and verifying row signatures.
type Service struct {
	client domain.APIClient
	cache  *cache.Cache
}

// New returns a ledger service. cache may be nil to disable the offline
// snapshot.
func New(client domain.APIClient, c *cache.Cache) *Service {
	return &Service{client: client, cache: c}
}

// History fetches the caller's transactions and refreshes the offline cache
// on success. A cache write failure does not fail the fetch.
func (s *Service) History(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.client.History(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.ReplaceTransactions(ctx, txs)
	}
	return txs, nil
}

// CachedHistory returns the transactions from the last successful fetch.
func (s *Service) CachedHistory(ctx context.Context) ([]domain.Transaction, error) {
	if s.cache == nil {
		return nil, fmt.Errorf("offline cache disabled")
	}
	return s.cache.Transactions(ctx)
}

// Accrue credits points to a student. The backend enforces the admin role.
func (s *Service) Accrue(ctx context.Context, req domain.AccrueRequest) (domain.AccrueResult, error) {
	return s.client.Accrue(ctx, req)
}

// Verify checks each transaction's signature against the given hex-encoded
// Ed25519 admin public key and returns one result slot per transaction
// (nil for a valid signature).
//
// The backend signs each row's own hash and stores the signature as the
// hex of sig||message (libsodium's combined form). History is filtered to
// the calling user while prev_hash links the global chain, so chain
// contiguity is not checkable here; only per-row signatures are.
func (s *Service) Verify(txs []domain.Transaction, adminPublicKeyHex string) []error {
	results := make([]error, len(txs))

	pub, err := hex.DecodeString(adminPublicKeyHex)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		for i := range results {
			results[i] = fmt.Errorf("invalid admin public key")
		}
		return results
	}

	for i, tx := range txs {
		results[i] = verifyRow(ed25519.PublicKey(pub), tx)
	}
	return results
}

func verifyRow(pub ed25519.PublicKey, tx domain.Transaction) error {
	if tx.Signature == "" {
		return fmt.Errorf("transaction %d: no signature", tx.ID)
	}
	combined, err := hex.DecodeString(tx.Signature)
	if err != nil || len(combined) < ed25519.SignatureSize {
		return fmt.Errorf("transaction %d: malformed signature", tx.ID)
	}
	sig := combined[:ed25519.SignatureSize]
	msg := combined[ed25519.SignatureSize:]

	if string(msg) != tx.CurrentHash {
		return fmt.Errorf("transaction %d: signed message does not match row hash", tx.ID)
	}
	if !ed25519.Verify(pub, msg, sig) {
		return fmt.Errorf("transaction %d: signature invalid", tx.ID)
	}
	return nil
}

// Compile-time assertion that Service implements domain.LedgerService.
var _ domain.LedgerService = (*Service)(nil)
