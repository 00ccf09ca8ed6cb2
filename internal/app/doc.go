// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, API client and high-level services from
// Config, exposing them via the Wire struct for commands to use. The wiring
// also subscribes the session service to the API client's 401 eviction so
// in-memory and persisted login state cannot diverge.
package app
