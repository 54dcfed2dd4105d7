package services

import (
	"context"
	"log/slog"

	"github.com/INFR3120-F25/coursetrack-service/internal/events"
	"github.com/INFR3120-F25/coursetrack-service/internal/repositories"
	"github.com/INFR3120-F25/coursetrack-service/internal/validator"
)

type defaultServiceManager struct {
	assignment AssignmentService
	repo       repositories.Repository
	publisher  events.EventPublisher
}

func NewDefaultServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ServiceManager {
	return &defaultServiceManager{
		assignment: NewAssignmentService(repo, logger, validator, publisher),
		repo:       repo,
		publisher:  publisher,
	}
}

func (m *defaultServiceManager) Assignment() AssignmentService {
	return m.assignment
}

func (m *defaultServiceManager) Initialize(ctx context.Context) error {
	return m.repo.Ping(ctx)
}

func (m *defaultServiceManager) Shutdown(ctx context.Context) error {
	return m.publisher.Close()
}
