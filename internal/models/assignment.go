package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentStatus string

const (
	StatusNotStarted AssignmentStatus = "Not Started"
	StatusInProgress AssignmentStatus = "In Progress"
	StatusCompleted  AssignmentStatus = "Completed"
)

// DefaultStatus is applied when a create request carries no status or an
// unknown one, matching the collection's schema defaults.
const DefaultStatus = StatusNotStarted

func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type AssignmentPriority string

const (
	PriorityLow    AssignmentPriority = "Low"
	PriorityMedium AssignmentPriority = "Medium"
	PriorityHigh   AssignmentPriority = "High"
)

const DefaultPriority = PriorityMedium

func (p AssignmentPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AnonymousCreator is recorded when an assignment is created without a
// resolvable display name.
const AnonymousCreator = "Anonymous"

// Assignment is a single tracked course deliverable.
// CreatedBy and CreatedAt are set once at insertion and never updated.
type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseName  string             `bson:"courseName" json:"course_name"`
	Title       string             `bson:"title" json:"title"`
	DueDate     time.Time          `bson:"dueDate" json:"due_date"`
	Status      AssignmentStatus   `bson:"status" json:"status"`
	Priority    AssignmentPriority `bson:"priority" json:"priority"`
	Description string             `bson:"description" json:"description"`
	CreatedBy   string             `bson:"createdBy" json:"created_by"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}

func (Assignment) CollectionName() string {
	return "assignments"
}
