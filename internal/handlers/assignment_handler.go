package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/INFR3120-F25/coursetrack-service/internal/services"
	"github.com/INFR3120-F25/coursetrack-service/internal/utils"
	"github.com/INFR3120-F25/coursetrack-service/internal/validator"
)

// AssignmentHandler serves the assignment pages and form submissions.
type AssignmentHandler struct {
	service   services.AssignmentService
	validator *validator.Validator
	logger    utils.Logger
}

func NewAssignmentHandler(service services.AssignmentService, validator *validator.Validator, logger utils.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Home renders the landing page.
func (h *AssignmentHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{"User": IdentityFromContext(c)})
}

// List renders all assignments, earliest due date first. Public.
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.HTML(http.StatusOK, "list", gin.H{
		"Assignments": assignments,
		"User":        IdentityFromContext(c),
	})
}

// Export streams the assignment list as a spreadsheet. Public, like List.
func (h *AssignmentHandler) Export(c *gin.Context) {
	assignments, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Course", "Title", "Due Date", "Status", "Priority", "Description", "Created By"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for row, a := range assignments {
		values := []interface{}{
			a.CourseName, a.Title, a.DueDate.Format("2006-01-02"),
			string(a.Status), string(a.Priority), a.Description, a.CreatedBy,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="assignments.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("failed to stream export", "error", err)
	}
}

// AddForm renders the creation form. Session required.
func (h *AssignmentHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add", gin.H{"User": IdentityFromContext(c)})
}

// AddSubmit creates an assignment from the posted form and redirects to the
// list. Session required.
func (h *AssignmentHandler) AddSubmit(c *gin.Context) {
	var req services.CreateAssignmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusInternalServerError, "Error creating assignment")
		return
	}

	identity := IdentityFromContext(c)
	if _, err := h.service.Create(c.Request.Context(), &req, identity.CreatorName()); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/assignments")
}

// EditForm renders the edit form for one assignment; 404 when the id does
// not resolve. Session required.
func (h *AssignmentHandler) EditForm(c *gin.Context) {
	assignment, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit", gin.H{
		"Assignment": assignment,
		"User":       IdentityFromContext(c),
	})
}

// EditSubmit applies the posted changes and redirects to the list. Session
// required.
func (h *AssignmentHandler) EditSubmit(c *gin.Context) {
	// id, createdAt and createdBy are immutable; reject them up front.
	bv := h.validator.GetBusinessValidator()
	if errs := bv.CheckImmutable(func(field string) bool {
		_, present := c.GetPostForm(field)
		return present
	}); len(errs) > 0 {
		c.String(http.StatusInternalServerError, "Error updating assignment: %s", errs.Error())
		return
	}

	req := updateRequestFromForm(c)
	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/assignments")
}

// Delete removes the assignment and redirects to the list. Deleting an
// unknown id still redirects. Session required.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/assignments")
}

// updateRequestFromForm builds a partial update out of the fields actually
// posted, so absent fields stay untouched.
func updateRequestFromForm(c *gin.Context) *services.UpdateAssignmentRequest {
	req := &services.UpdateAssignmentRequest{}
	if v, ok := c.GetPostForm("courseName"); ok {
		req.CourseName = &v
	}
	if v, ok := c.GetPostForm("title"); ok {
		req.Title = &v
	}
	if v, ok := c.GetPostForm("dueDate"); ok {
		req.DueDate = &v
	}
	if v, ok := c.GetPostForm("status"); ok {
		req.Status = &v
	}
	if v, ok := c.GetPostForm("priority"); ok {
		req.Priority = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		req.Description = &v
	}
	return req
}

// handleServiceError maps service errors onto the HTTP surface. Validation
// failures surface as a 500 with a plain message; no internal detail ever
// reaches the body.
func (h *AssignmentHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAssignmentNotFound):
		c.String(http.StatusNotFound, "Assignment not found")
	case errors.Is(err, services.ErrValidationFailed):
		c.String(http.StatusInternalServerError, "Error saving assignment: %s", err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		h.logger.Error("store unavailable", "path", c.Request.URL.Path)
		c.String(http.StatusInternalServerError, "Error loading assignments")
	default:
		h.logger.Error("unexpected service error", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}
