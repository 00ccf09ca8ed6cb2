package ledger_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"kiib/internal/cache"
	"kiib/internal/domain"
	"kiib/internal/services/ledger"
)

// fakeClient implements domain.APIClient for service tests.
type fakeClient struct {
	txs        []domain.Transaction
	historyErr error
	accrued    []domain.AccrueRequest
}

func (f *fakeClient) Login(ctx context.Context, u, p string) (domain.Credential, error) {
	return domain.Credential{}, nil
}
func (f *fakeClient) Register(ctx context.Context, r domain.Registration) (domain.UserProfile, error) {
	return domain.UserProfile{}, nil
}
func (f *fakeClient) Me(ctx context.Context) (domain.UserProfile, error) {
	return domain.UserProfile{}, nil
}
func (f *fakeClient) UpdateProfile(ctx context.Context, u domain.ProfileUpdate) (domain.UserProfile, error) {
	return domain.UserProfile{}, nil
}
func (f *fakeClient) History(ctx context.Context) ([]domain.Transaction, error) {
	return f.txs, f.historyErr
}
func (f *fakeClient) Accrue(ctx context.Context, req domain.AccrueRequest) (domain.AccrueResult, error) {
	f.accrued = append(f.accrued, req)
	return domain.AccrueResult{Status: "success", NewBalance: 100 + req.Amount}, nil
}
func (f *fakeClient) ListPosts(ctx context.Context) ([]domain.Post, error) { return nil, nil }
func (f *fakeClient) CreatePost(ctx context.Context, d domain.PostDraft) (domain.Post, error) {
	return domain.Post{}, nil
}
func (f *fakeClient) DeletePost(ctx context.Context, id int64) error         { return nil }
func (f *fakeClient) UploadAchievement(ctx context.Context, n string, r io.Reader) error {
	return nil
}

var _ domain.APIClient = (*fakeClient)(nil)

// signRow produces the backend's combined hex signature (sig || message)
// over the row's hash, the way PyNaCl emits it.
func signRow(priv ed25519.PrivateKey, hash string) string {
	sig := ed25519.Sign(priv, []byte(hash))
	return hex.EncodeToString(append(sig, []byte(hash)...))
}

func signedTx(t *testing.T, priv ed25519.PrivateKey, id int64, amount int64, reason string) domain.Transaction {
	t.Helper()
	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%s", id, amount, reason))))
	return domain.Transaction{
		ID: id, Amount: amount, Reason: reason,
		CurrentHash: hash,
		Signature:   signRow(priv, hash),
	}
}

func TestVerify_AcceptsValidSignatures(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	svc := ledger.New(&fakeClient{}, nil)
	txs := []domain.Transaction{
		signedTx(t, priv, 1, 10, "CTF win"),
		signedTx(t, priv, 2, 5, "Talk"),
	}

	for i, res := range svc.Verify(txs, hex.EncodeToString(pub)) {
		if res != nil {
			t.Fatalf("transaction %d rejected: %v", i, res)
		}
	}
}

func TestVerify_RejectsTamperedRow(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(rand.Reader)
	svc := ledger.New(&fakeClient{}, nil)

	tampered := signedTx(t, priv, 1, 10, "CTF win")
	tampered.CurrentHash = "0000" + tampered.CurrentHash[4:]

	results := svc.Verify([]domain.Transaction{tampered}, hex.EncodeToString(pub))
	if results[0] == nil {
		t.Fatal("tampered row accepted")
	}
}

func TestVerify_RejectsWrongKeyAndMissingSignature(t *testing.T) {
	_, priv, _ := ed25519.GenerateKey(rand.Reader)
	otherPub, _, _ := ed25519.GenerateKey(rand.Reader)
	svc := ledger.New(&fakeClient{}, nil)

	txs := []domain.Transaction{
		signedTx(t, priv, 1, 10, "CTF win"),
		{ID: 2, Amount: 5, Reason: "no signature"},
	}
	results := svc.Verify(txs, hex.EncodeToString(otherPub))
	if results[0] == nil {
		t.Fatal("signature from the wrong key accepted")
	}
	if results[1] == nil {
		t.Fatal("unsigned row accepted")
	}
}

func TestHistory_WritesThroughToCache(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	client := &fakeClient{txs: []domain.Transaction{{ID: 1, Amount: 10, Reason: "CTF win"}}}
	svc := ledger.New(client, c)

	if _, err := svc.History(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}

	cached, err := svc.CachedHistory(context.Background())
	if err != nil {
		t.Fatalf("cached history: %v", err)
	}
	if len(cached) != 1 || cached[0].Reason != "CTF win" {
		t.Fatalf("cache not refreshed: %+v", cached)
	}
}

func TestHistory_FetchFailureLeavesCacheAlone(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer c.Close()

	client := &fakeClient{txs: []domain.Transaction{{ID: 1, Amount: 10, Reason: "kept"}}}
	svc := ledger.New(client, c)
	if _, err := svc.History(context.Background()); err != nil {
		t.Fatalf("seed history: %v", err)
	}

	client.historyErr = fmt.Errorf("backend down")
	if _, err := svc.History(context.Background()); err == nil {
		t.Fatal("expected fetch failure")
	}

	cached, err := svc.CachedHistory(context.Background())
	if err != nil || len(cached) != 1 || cached[0].Reason != "kept" {
		t.Fatalf("cache damaged by failed fetch: %+v err=%v", cached, err)
	}
}

func TestAccrue_ForwardsRequest(t *testing.T) {
	client := &fakeClient{}
	svc := ledger.New(client, nil)

	res, err := svc.Accrue(context.Background(), domain.AccrueRequest{
		Username: "43K002", Amount: 25, Reason: "Grant",
	})
	if err != nil {
		t.Fatalf("accrue: %v", err)
	}
	if res.NewBalance != 125 {
		t.Fatalf("new balance = %d", res.NewBalance)
	}
	if len(client.accrued) != 1 || client.accrued[0].Username != "43K002" {
		t.Fatalf("request not forwarded: %+v", client.accrued)
	}
}
