package validator

// AssignmentCreateRequest carries the add-assignment form fields.
// Status and Priority are plain strings here: unknown values are defaulted
// by the service, not rejected, matching the collection's schema defaults.
type AssignmentCreateRequest struct {
	CourseName  string `form:"courseName" validate:"required,min=1,max=200"`
	Title       string `form:"title" validate:"required,min=1,max=200"`
	DueDate     string `form:"dueDate" validate:"required,due_date"`
	Status      string `form:"status"`
	Priority    string `form:"priority"`
	Description string `form:"description" validate:"omitempty,max=2000"`
}

// AssignmentUpdateRequest carries the edit-assignment form fields.
// All fields are optional (partial update); unlike create, an unknown
// status or priority is rejected rather than defaulted.
type AssignmentUpdateRequest struct {
	CourseName  *string `form:"courseName" validate:"omitempty,min=1,max=200"`
	Title       *string `form:"title" validate:"omitempty,min=1,max=200"`
	DueDate     *string `form:"dueDate" validate:"omitempty,due_date"`
	Status      *string `form:"status" validate:"omitempty,assignment_status"`
	Priority    *string `form:"priority" validate:"omitempty,assignment_priority"`
	Description *string `form:"description" validate:"omitempty,max=2000"`
}

// Empty reports whether the update carries no fields at all.
func (r *AssignmentUpdateRequest) Empty() bool {
	return r.CourseName == nil && r.Title == nil && r.DueDate == nil &&
		r.Status == nil && r.Priority == nil && r.Description == nil
}
