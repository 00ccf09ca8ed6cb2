package app

import (
	"net/http"
	"path/filepath"

	"kiib/internal/api"
	"kiib/internal/cache"
	"kiib/internal/domain"
	accountsvc "kiib/internal/services/account"
	achievementsvc "kiib/internal/services/achievements"
	ledgersvc "kiib/internal/services/ledger"
	postssvc "kiib/internal/services/posts"
	sessionsvc "kiib/internal/services/session"
	"kiib/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Credentials  domain.CredentialStore
	Session      domain.SessionService
	Account      domain.AccountService
	Ledger       domain.LedgerService
	Posts        domain.PostsService
	Achievements domain.AchievementsService
	Client       domain.APIClient
	Cache        *cache.Cache
	HTTP         *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// File-based credential store, sealed when a passphrase is configured.
	var creds domain.CredentialStore
	if cfg.Passphrase != "" {
		creds = store.NewEncryptedCredentialFileStore(cfg.Home, cfg.Passphrase)
	} else {
		creds = store.NewCredentialFileStore(cfg.Home)
	}

	// Ensure an HTTP client is available for outbound calls.
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := api.New(cfg.ServerURL, httpClient, creds)

	// A broken cache degrades the offline paths, never the online ones.
	localCache, err := cache.Open(filepath.Join(cfg.Home, "cache.db"))
	if err != nil {
		localCache = nil
	}

	session := sessionsvc.New(creds)
	// A 401 evicts the persisted credential inside the client; subscribing
	// the session keeps the in-memory state from diverging.
	client.OnUnauthorized(session.Invalidate)

	return &Wire{
		Credentials:  creds,
		Session:      session,
		Account:      accountsvc.New(client),
		Ledger:       ledgersvc.New(client, localCache),
		Posts:        postssvc.New(client, localCache),
		Achievements: achievementsvc.New(client),
		Client:       client,
		Cache:        localCache,
		HTTP:         httpClient,
	}, nil
}

// Close releases resources held by the wire.
func (w *Wire) Close() error {
	if w.Cache != nil {
		return w.Cache.Close()
	}
	return nil
}
