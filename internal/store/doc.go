// Package store provides file-based persistence for the client's login state.
//
// It contains the concrete implementation of the domain credential store,
// serialising the bearer credential as JSON under the configured home
// directory — plaintext by default, or sealed in a passphrase-derived
// chacha20poly1305 envelope. All methods are concurrency-safe via internal
// locking, and writes are atomic (temp file then rename).
package store
