// Package server runs the HTTP transport with signal handling and graceful
// shutdown.
package server
