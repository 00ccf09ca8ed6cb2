package cache

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"kiib/internal/domain"
)

// Cache is a local SQLite snapshot of the last successful history and posts
// fetches, so both remain viewable without a reachable backend. It is a
// read-only fallback, never a write queue.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path and ensures its schema.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY,
			amount INTEGER NOT NULL,
			reason TEXT NOT NULL,
			prev_hash TEXT NOT NULL DEFAULT '',
			current_hash TEXT NOT NULL DEFAULT '',
			signature TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// ReplaceTransactions swaps the cached history for txs wholesale.
func (c *Cache) ReplaceTransactions(ctx context.Context, txs []domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dbtx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	if _, err := dbtx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return err
	}
	for _, tx := range txs {
		_, err := dbtx.ExecContext(ctx,
			`INSERT INTO transactions (id, amount, reason, prev_hash, current_hash, signature, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			tx.ID, tx.Amount, tx.Reason, tx.PrevHash, tx.CurrentHash, tx.Signature,
			tx.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}
	return dbtx.Commit()
}

// Transactions returns the cached history, newest first.
func (c *Cache) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, amount, reason, prev_hash, current_hash, signature, created_at
		 FROM transactions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var createdAt string
		if err := rows.Scan(&tx.ID, &tx.Amount, &tx.Reason, &tx.PrevHash, &tx.CurrentHash,
			&tx.Signature, &createdAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			tx.CreatedAt = domain.Timestamp{Time: ts}
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// ReplacePosts swaps the cached posts for posts wholesale.
func (c *Cache) ReplacePosts(ctx context.Context, posts []domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dbtx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbtx.Rollback()

	if _, err := dbtx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return err
	}
	for _, p := range posts {
		_, err := dbtx.ExecContext(ctx,
			`INSERT INTO posts (id, title, content, image_url, created_at) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Content, p.ImageURL, p.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}
	return dbtx.Commit()
}

// Posts returns the cached posts, newest first.
func (c *Cache) Posts(ctx context.Context) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, content, image_url, created_at FROM posts
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.ImageURL, &createdAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			p.CreatedAt = domain.Timestamp{Time: ts}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
