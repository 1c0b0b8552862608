// Package modeladapter provides the HTTP base shared by model server clients.
//
// It contains:
//   - [ModelAdapter], an embeddable struct with request building, auth, custom headers and JSON helpers
//   - [StatusError], returned for non-2xx replies with the status code and raw body
//   - [github.com/germanamz/almanac/pkg/modeladapter/usage], a thread-safe eval counter tracker
//
// This package contains no server-specific code. Concrete clients live in
// packages under pkg/providers.
package modeladapter
