package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/INFR3120-F25/coursetrack-service/internal/events"
	"github.com/INFR3120-F25/coursetrack-service/internal/models"
	"github.com/INFR3120-F25/coursetrack-service/internal/repositories"
	"github.com/INFR3120-F25/coursetrack-service/internal/validator"
)

type assignmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewAssignmentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) AssignmentService {
	return &assignmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *assignmentService) List(ctx context.Context) ([]*models.Assignment, error) {
	assignments, err := s.repo.Assignment().List(ctx)
	if err != nil {
		s.logger.Error("failed to list assignments", "error", err)
		return nil, s.mapStoreError(err)
	}
	return assignments, nil
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	assignment, err := s.repo.Assignment().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("failed to get assignment", "assignment_id", id, "error", err)
		return nil, s.mapStoreError(err)
	}
	return assignment, nil
}

func (s *assignmentService) Create(ctx context.Context, req *CreateAssignmentRequest, createdBy string) (*models.Assignment, error) {
	if errs := s.validator.GetBusinessValidator().ValidateAssignmentCreate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	dueDate, err := validator.ParseDueDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	// Unknown or empty enum values take the schema defaults on create.
	status := models.AssignmentStatus(req.Status)
	if !status.Valid() {
		status = models.DefaultStatus
	}
	priority := models.AssignmentPriority(req.Priority)
	if !priority.Valid() {
		priority = models.DefaultPriority
	}

	if createdBy == "" {
		createdBy = models.AnonymousCreator
	}

	assignment := &models.Assignment{
		CourseName:  req.CourseName,
		Title:       req.Title,
		DueDate:     dueDate,
		Status:      status,
		Priority:    priority,
		Description: req.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Assignment().Create(ctx, assignment); err != nil {
		s.logger.Error("failed to create assignment", "title", req.Title, "error", err)
		return nil, s.mapStoreError(err)
	}

	s.logger.Info("assignment created",
		"assignment_id", assignment.ID.Hex(),
		"course_name", assignment.CourseName,
		"created_by", assignment.CreatedBy)

	s.publish(ctx, events.AssignmentCreated, assignment)

	return assignment, nil
}

func (s *assignmentService) Update(ctx context.Context, id string, req *UpdateAssignmentRequest) error {
	if errs := s.validator.GetBusinessValidator().ValidateAssignmentUpdate(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	update := repositories.AssignmentUpdate{
		CourseName:  req.CourseName,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		dueDate, err := validator.ParseDueDate(*req.DueDate)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		update.DueDate = &dueDate
	}
	if req.Status != nil {
		status := models.AssignmentStatus(*req.Status)
		update.Status = &status
	}
	if req.Priority != nil {
		priority := models.AssignmentPriority(*req.Priority)
		update.Priority = &priority
	}

	if err := s.repo.Assignment().Update(ctx, id, update); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("failed to update assignment", "assignment_id", id, "error", err)
		return s.mapStoreError(err)
	}

	s.logger.Info("assignment updated", "assignment_id", id)

	s.publishID(ctx, events.AssignmentUpdated, id)
	return nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Assignment().Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete assignment", "assignment_id", id, "error", err)
		return s.mapStoreError(err)
	}

	s.logger.Info("assignment deleted", "assignment_id", id)

	s.publishID(ctx, events.AssignmentDeleted, id)
	return nil
}

func (s *assignmentService) publish(ctx context.Context, eventType events.EventType, assignment *models.Assignment) {
	s.send(ctx, &events.AssignmentEvent{
		Type:         eventType,
		AssignmentID: assignment.ID.Hex(),
		CourseName:   assignment.CourseName,
		Title:        assignment.Title,
		CreatedBy:    assignment.CreatedBy,
	})
}

func (s *assignmentService) publishID(ctx context.Context, eventType events.EventType, id string) {
	s.send(ctx, &events.AssignmentEvent{
		Type:         eventType,
		AssignmentID: id,
	})
}

func (s *assignmentService) send(ctx context.Context, event *events.AssignmentEvent) {
	event.OccurredAt = time.Now().UTC()
	if err := s.publisher.PublishAssignmentEvent(ctx, event); err != nil {
		// Events are best-effort; the write already succeeded.
		s.logger.Warn("failed to publish assignment event", "type", string(event.Type), "error", err)
	}
}

func (s *assignmentService) mapStoreError(err error) error {
	if errors.Is(err, repositories.ErrUnavailable) {
		return ErrStoreUnavailable
	}
	return err
}
