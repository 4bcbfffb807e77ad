// Package middleware groups the HTTP middleware of the report server.
//
// Two cross-cutting concerns live here as subpackages:
//
//   - auth checks the X-API-Key header against the configured key and
//     rejects everything else; an empty key disables the check.
//   - rayid stamps every request with a fresh ray id, stored in the
//     request locals and echoed in the response headers, so log lines
//     of one request can be correlated.
//
// Both are registered globally in the serve command, rayid first so the
// rejection of an unauthenticated request is traceable too.
package middleware
