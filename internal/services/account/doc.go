// Package account exposes profile operations: fetching and updating the
// authenticated account, and registering new student accounts.
package account
