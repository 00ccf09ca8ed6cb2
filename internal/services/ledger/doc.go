// Package ledger exposes the points ledger: history with an offline
// snapshot, admin accrual, and Ed25519 verification of row signatures.
package ledger
