// Package server wires and runs the application's transport servers.
//
// It starts the HTTP and gRPC listeners together with the background
// workers, waits for a termination signal and shuts everything down
// gracefully.
package server
