// Package api is the thin HTTP client of the Genfit backend.
//
// Authenticated calls read the bearer token from a TokenSource on every
// request; nothing is cached. When no token is stored the request is sent
// without an Authorization header and the backend's answer is returned as is.
//
// # Errors
//
// Every failure is a *common.NetworkError. It matches common.ErrUnavailable
// when no response was received and common.ErrUnauthorized on 401/403. A
// failure to read the token is returned unchanged (a *common.StorageError).
// Nothing is retried.
package api
