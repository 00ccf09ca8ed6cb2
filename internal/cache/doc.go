// Package cache keeps a local SQLite snapshot of fetched backend data.
//
// The ledger and posts services write through to it after every successful
// fetch; the --offline command paths read from it when the backend is
// unreachable. The snapshot always reflects the last successful fetch,
// nothing more.
package cache
