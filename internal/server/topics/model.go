package topics

import (
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

// Importance ranks how critical a topic is to the student.
type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
	ImportanceLow    Importance = "Low"
)

// ParseImportance validates a client-supplied importance value.
func ParseImportance(s string) (Importance, error) {
	switch Importance(s) {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
		return Importance(s), nil
	}
	return "", common.ErrorValidation
}

// Status tracks a topic through the study lifecycle.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", common.ErrorValidation
}

// Topic is one syllabus entry. UserID is the owning identity: every query
// and mutation filters on it, and it is never taken from a request body.
type Topic struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Subject     string     `json:"subject"`
	TopicName   string     `json:"topicName"`
	Importance  Importance `json:"importance"`
	Status      Status     `json:"status"`
	LastStudied *time.Time `json:"lastStudied"`
	CreatedAt   time.Time  `json:"createdAt"`
}
