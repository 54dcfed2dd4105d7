package repositories

import (
	"context"
	"errors"
)

// Sentinel storage errors. Repositories map driver-level failures onto these
// so callers never match on driver types.
var (
	// ErrNotFound is returned when a well-formed id resolves to no record.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable is returned when the backing store cannot be reached or
	// an operation exceeds its deadline.
	ErrUnavailable = errors.New("store unavailable")
)

// Repository aggregates the per-domain repositories.
type Repository interface {
	Assignment() AssignmentRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close(ctx context.Context) error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize(ctx context.Context) error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
