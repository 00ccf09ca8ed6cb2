package types

// Transaction is one row of the points ledger as returned by the backend.
//
// Besides the display fields, each row carries the server-side chain
// fields: CurrentHash is the row's own digest, PrevHash links it to the
// row written before it (globally, across all users), and Signature is
// the crediting admin's Ed25519 signature over CurrentHash.
type Transaction struct {
	ID           int64     `json:"id"`
	TargetUserID int64     `json:"target_user_id,omitempty"`
	AdminID      int64     `json:"admin_id,omitempty"`
	Amount       int64     `json:"amount"`
	Reason       string    `json:"reason"`
	PrevHash     string    `json:"prev_hash,omitempty"`
	CurrentHash  string    `json:"current_hash,omitempty"`
	Signature    string    `json:"signature,omitempty"`
	CreatedAt    Timestamp `json:"created_at"`
}

// AccrueRequest credits points to a student. Admin-only on the backend.
type AccrueRequest struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount"`
	Reason   string `json:"reason"`
}

// AccrueResult is the backend's reply to a successful accrual.
type AccrueResult struct {
	Status     string `json:"status"`
	NewBalance int64  `json:"new_balance"`
}
