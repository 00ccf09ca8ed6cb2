// Package api provides the HTTP implementation of the domain.APIClient
// interface used by kiib.
//
// The backend is a REST service exposing authentication, the points ledger,
// announcement posts and achievement uploads. This package offers a concrete
// HTTP client for it and is the single choke point for all backend calls.
//
// Request decoration: every outgoing request carries a generated
// X-Request-Id, and the persisted bearer credential is attached as an
// Authorization header when one exists. Reading the credential store is
// best-effort and never blocks or fails a request.
//
// Response handling: a 401 evicts the persisted credential and fires the
// registered invalidation hook before the original failure is returned.
// Every other non-2xx status is returned as *APIError carrying the method,
// path, status and the backend's detail message; network failures pass
// through verbatim. The client never retries and never swallows errors.
//
// All requests accept a context for cancellation and deadlines.
package api
