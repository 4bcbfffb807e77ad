// Package server holds configuration for the report HTTP server.
//
// The server itself is assembled in the serve command from Fiber, the
// middleware stack, and the feature loader; this package only carries the
// settings (listen port, API key) so they can participate in the central
// config loading.
package server
