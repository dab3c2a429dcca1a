// Package client contains the transport and local storage used by the
// admin screens.
//
// # Overview
//
// The package provides:
//  1. The Client interface: list a resource collection with a dispatched
//     query.Request, and create, update or delete a single record.
//  2. HTTPClient, a net/http implementation against the REST backend. Every
//     request carries an X-Request-ID header. List responses are accepted
//     both as a {"data": [...]} envelope and as a bare array; numbers are
//     decoded as json.Number.
//  3. InitDatabase and RunMigrations, which open the local SQLite journal and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable and undecodable list bodies wrap
// ErrMalformedResponse; match them with errors.Is. Non-2xx responses are
// returned as *APIError, whose Message is the backend's "message" field and
// may be shown to the user verbatim (see PublicMessage).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; cancellation is reported as the context's error rather
// than ErrUnavailable.
package client
