package services

import (
	"context"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
	"github.com/INFR3120-F25/coursetrack-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Use business validator types
type CreateAssignmentRequest = validator.AssignmentCreateRequest
type UpdateAssignmentRequest = validator.AssignmentUpdateRequest

type ValidationErrors = validator.ValidationErrors

// AssignmentService orchestrates validation, persistence and event
// publication for assignment CRUD.
type AssignmentService interface {
	// List returns all assignments ordered by ascending due date.
	List(ctx context.Context) ([]*models.Assignment, error)

	// GetByID returns ErrAssignmentNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Assignment, error)

	// Create validates the form, applies enum defaults, stamps the creator
	// and creation time, and persists the new assignment.
	Create(ctx context.Context, req *CreateAssignmentRequest, createdBy string) (*models.Assignment, error)

	// Update applies a partial update of the mutable fields. Unknown enum
	// values are rejected, not defaulted.
	Update(ctx context.Context, id string, req *UpdateAssignmentRequest) error

	// Delete removes the assignment; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// ServiceManager bundles the services behind one constructor.
type ServiceManager interface {
	Assignment() AssignmentService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
