// Package database owns the connections to the store backends.
package database

// Service is a connected backend.
type Service interface {
	Health() map[string]string
	Close() error
}
