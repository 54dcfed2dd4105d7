package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// dueDateLayouts are the accepted form encodings for due dates: a plain
// date input and a datetime-local input.
var dueDateLayouts = []string{"2006-01-02", "2006-01-02T15:04"}

// ParseDueDate parses a form-submitted due date. Layouts are tried in order.
func ParseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable due date %q", s)
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates a struct against its validate tags
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	var errs ValidationErrors

	err := bv.validate.Struct(s)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, ValidationError{
				Field:   fe.Field(),
				Message: bv.getErrorMessage(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
	}

	return errs
}

// ValidateAssignmentCreate validates the add-assignment form
func (bv *BusinessValidator) ValidateAssignmentCreate(req *AssignmentCreateRequest) ValidationErrors {
	return bv.Validate(req)
}

// ValidateAssignmentUpdate validates the edit-assignment form
func (bv *BusinessValidator) ValidateAssignmentUpdate(req *AssignmentUpdateRequest) ValidationErrors {
	errs := bv.Validate(req)

	if req.Empty() {
		errs = append(errs, ValidationError{
			Field:   "request",
			Message: "no updatable fields provided",
			Rule:    "business_logic",
		})
	}

	return errs
}

// ImmutableFields are assignment fields that may never appear in an update
// payload; CheckImmutable rejects them before any store access.
var ImmutableFields = []string{"id", "_id", "createdAt", "createdBy"}

// CheckImmutable returns errors for every immutable field present in the
// submitted form values.
func (bv *BusinessValidator) CheckImmutable(present func(field string) bool) ValidationErrors {
	var errs ValidationErrors
	for _, field := range ImmutableFields {
		if present(field) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "field is immutable",
				Rule:    "immutable",
			})
		}
	}
	return errs
}

// registerBusinessRules registers custom validators
func (bv *BusinessValidator) registerBusinessRules() {
	bv.validate.RegisterValidation("assignment_status", func(fl validator.FieldLevel) bool {
		return models.AssignmentStatus(fl.Field().String()).Valid()
	})

	bv.validate.RegisterValidation("assignment_priority", func(fl validator.FieldLevel) bool {
		return models.AssignmentPriority(fl.Field().String()).Valid()
	})

	bv.validate.RegisterValidation("due_date", func(fl validator.FieldLevel) bool {
		_, err := ParseDueDate(fl.Field().String())
		return err == nil
	})
}

// getErrorMessage converts a validator tag failure to a readable message
func (bv *BusinessValidator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "assignment_status":
		return "must be one of: Not Started, In Progress, Completed"
	case "assignment_priority":
		return "must be one of: Low, Medium, High"
	case "due_date":
		return "must be a parseable date (YYYY-MM-DD)"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
