package validator

import (
	"testing"
	"time"
)

func TestValidateAssignmentCreate(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name    string
		req     AssignmentCreateRequest
		wantErr bool
	}{
		{
			name: "valid full form",
			req: AssignmentCreateRequest{
				CourseName: "INFR3120",
				Title:      "Final Project",
				DueDate:    "2025-12-01",
				Status:     "Not Started",
				Priority:   "High",
			},
		},
		{
			name: "valid without enums",
			req: AssignmentCreateRequest{
				CourseName: "MATH1010",
				Title:      "Problem Set 3",
				DueDate:    "2025-10-15T23:59",
			},
		},
		{
			name:    "missing course name",
			req:     AssignmentCreateRequest{Title: "t", DueDate: "2025-12-01"},
			wantErr: true,
		},
		{
			name:    "missing title",
			req:     AssignmentCreateRequest{CourseName: "c", DueDate: "2025-12-01"},
			wantErr: true,
		},
		{
			name:    "missing due date",
			req:     AssignmentCreateRequest{CourseName: "c", Title: "t"},
			wantErr: true,
		},
		{
			name:    "unparseable due date",
			req:     AssignmentCreateRequest{CourseName: "c", Title: "t", DueDate: "first of never"},
			wantErr: true,
		},
		{
			// enum values are defaulted on create, not rejected
			name: "unknown status accepted",
			req: AssignmentCreateRequest{
				CourseName: "c", Title: "t", DueDate: "2025-12-01", Status: "Procrastinating",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateAssignmentCreate(&tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("ValidateAssignmentCreate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateAssignmentUpdate(t *testing.T) {
	bv := NewBusinessValidator()
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     AssignmentUpdateRequest
		wantErr bool
	}{
		{
			name: "valid partial update",
			req:  AssignmentUpdateRequest{Status: str("Completed")},
		},
		{
			name:    "unknown status rejected",
			req:     AssignmentUpdateRequest{Status: str("Done-ish")},
			wantErr: true,
		},
		{
			name:    "unknown priority rejected",
			req:     AssignmentUpdateRequest{Priority: str("Critical")},
			wantErr: true,
		},
		{
			name:    "unparseable due date rejected",
			req:     AssignmentUpdateRequest{DueDate: str("soon")},
			wantErr: true,
		},
		{
			name:    "empty update rejected",
			req:     AssignmentUpdateRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateAssignmentUpdate(&tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("ValidateAssignmentUpdate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2025-12-01")
	if err != nil {
		t.Fatalf("ParseDueDate() error = %v", err)
	}
	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDueDate() = %v, want %v", got, want)
	}

	if _, err := ParseDueDate("12/01/2025"); err == nil {
		t.Error("ParseDueDate() accepted an unsupported layout")
	}
}

func TestCheckImmutable(t *testing.T) {
	bv := NewBusinessValidator()

	form := map[string]bool{"createdBy": true, "title": true}
	errs := bv.CheckImmutable(func(f string) bool { return form[f] })
	if len(errs) != 1 || errs[0].Field != "createdBy" {
		t.Errorf("CheckImmutable() = %v, want one createdBy error", errs)
	}

	if errs := bv.CheckImmutable(func(string) bool { return false }); len(errs) != 0 {
		t.Errorf("CheckImmutable() on clean form = %v, want none", errs)
	}
}
