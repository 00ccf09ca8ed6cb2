// Package session implements the in-memory authority for authentication
// state, restored from the persisted credential at startup.
package session
