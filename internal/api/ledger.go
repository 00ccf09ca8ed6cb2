package api

import (
	"context"

	"kiib/internal/domain"
)

// History returns the caller's ledger transactions, newest first.
func (c *Client) History(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.getJSON(ctx, "/ledger/history", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Accrue credits points to a student. The backend rejects non-admin callers.
func (c *Client) Accrue(ctx context.Context, req domain.AccrueRequest) (domain.AccrueResult, error) {
	var result domain.AccrueResult
	if err := c.postJSON(ctx, "/ledger/accrue", req, &result); err != nil {
		return domain.AccrueResult{}, err
	}
	return result, nil
}
