package server

import "context"

// Server defines the lifecycle contract of the service's transport server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT is received
	// and then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done or the listener fails. A
	// graceful shutdown returns nil.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
