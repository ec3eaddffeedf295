// Package server runs the HTTP transport of the gift catalog and shuts it
// down gracefully when the run context is cancelled.
package server
