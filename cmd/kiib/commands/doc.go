// Package commands defines the kiib CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login       Log in and store the bearer credential
//   - logout      Discard the stored credential
//   - whoami      Show the current session state
//   - register    Create a new student account
//   - profile     Show or update your profile
//   - history     Show your transaction history (with --offline / --verify)
//   - accrue      Credit points to a student (admin)
//   - posts       List, publish and delete announcements
//   - upload      Submit an achievement file for review
//   - dashboard   Balance, recent transactions and announcements at a glance
//
// # Implementation
//
// The root command builds a dependency graph (credential store, API client,
// services) before any subcommand runs and restores the session exactly once,
// so handlers see a settled anonymous-or-authenticated state. The root
// context is cancelled on SIGINT/SIGTERM, aborting in-flight requests.
package commands
