// Package api implements the HTTP client for the StudyTrack backend.
package api

import (
	"context"
	"time"
)

// User is the public account representation returned by the server.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Topic mirrors the syllabus topic JSON returned by the server.
type Topic struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Subject     string     `json:"subject"`
	TopicName   string     `json:"topicName"`
	Importance  string     `json:"importance"`
	Status      string     `json:"status"`
	LastStudied *time.Time `json:"lastStudied"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Client defines the remote operations the CLI needs.
type Client interface {
	Register(ctx context.Context, username, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) (string, User, error)
	AddTopic(ctx context.Context, token, subject, topicName, importance string) (*Topic, error)
	ListTopics(ctx context.Context, token string) ([]Topic, error)
	UpdateTopicStatus(ctx context.Context, token, id, status string) (*Topic, error)
	DeleteTopic(ctx context.Context, token, id string) error
	Ping(ctx context.Context) error
}
