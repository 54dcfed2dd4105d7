package repositories

import (
	"context"
	"time"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

// AssignmentUpdate carries the mutable fields of a partial update. Nil fields
// are left untouched; id, createdAt and createdBy are not representable here
// and therefore can never change through this path.
type AssignmentUpdate struct {
	CourseName  *string
	Title       *string
	DueDate     *time.Time
	Status      *models.AssignmentStatus
	Priority    *models.AssignmentPriority
	Description *string
}

// AssignmentRepository is the persistence contract for assignment documents.
type AssignmentRepository interface {
	// List returns every assignment ordered by ascending due date; ties keep
	// insertion order.
	List(ctx context.Context) ([]*models.Assignment, error)

	// GetByID returns ErrNotFound for a well-formed but unknown id.
	GetByID(ctx context.Context, id string) (*models.Assignment, error)

	// Create assigns the id and persists the document.
	Create(ctx context.Context, assignment *models.Assignment) error

	// Update applies a partial update; ErrNotFound when id does not resolve.
	Update(ctx context.Context, id string, update AssignmentUpdate) error

	// Delete removes the document if present; deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
