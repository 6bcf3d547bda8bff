package services

import (
	"context"

	"github.com/dmitrijs2005/studytrack/internal/client/api"
	"github.com/dmitrijs2005/studytrack/internal/client/session"
)

// TopicService defines syllabus operations for the CLI. Every call requires
// a logged-in session; without one the calls fail with api.ErrUnauthorized
// before touching the network.
type TopicService interface {
	Add(ctx context.Context, subject, topicName, importance string) (*api.Topic, error)
	List(ctx context.Context) ([]api.Topic, error)
	MarkCompleted(ctx context.Context, id string) (*api.Topic, error)
	Delete(ctx context.Context, id string) error
}

type topicService struct {
	client  api.Client
	session *session.Session
}

// NewTopicService constructs a TopicService bound to the given API client
// and session.
func NewTopicService(client api.Client, sess *session.Session) TopicService {
	return &topicService{client: client, session: sess}
}

func (s *topicService) Add(ctx context.Context, subject, topicName, importance string) (*api.Topic, error) {
	if !s.session.IsLoggedIn() {
		return nil, api.ErrUnauthorized
	}
	return s.client.AddTopic(ctx, s.session.Token, subject, topicName, importance)
}

func (s *topicService) List(ctx context.Context) ([]api.Topic, error) {
	if !s.session.IsLoggedIn() {
		return nil, api.ErrUnauthorized
	}
	return s.client.ListTopics(ctx, s.session.Token)
}

func (s *topicService) MarkCompleted(ctx context.Context, id string) (*api.Topic, error) {
	if !s.session.IsLoggedIn() {
		return nil, api.ErrUnauthorized
	}
	return s.client.UpdateTopicStatus(ctx, s.session.Token, id, "Completed")
}

func (s *topicService) Delete(ctx context.Context, id string) error {
	if !s.session.IsLoggedIn() {
		return api.ErrUnauthorized
	}
	return s.client.DeleteTopic(ctx, s.session.Token, id)
}
