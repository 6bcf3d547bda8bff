// Package topics implements the ownership-scoped syllabus records. The
// caller identity always comes from the verified session token, never from
// the request payload.
package topics

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create inserts a new topic owned by userID with the default Pending
// status. Any owner id a client may have put in the payload is ignored by
// construction: the field is stamped here.
func (s *Service) Create(ctx context.Context, userID, subject, topicName, importance string) (*Topic, error) {

	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	if subject == "" || topicName == "" || importance == "" {
		return nil, common.ErrorMissingField
	}

	imp, err := ParseImportance(importance)
	if err != nil {
		return nil, err
	}

	topic := &Topic{
		ID:         uuid.NewString(),
		UserID:     userID,
		Subject:    subject,
		TopicName:  topicName,
		Importance: imp,
		Status:     StatusPending,
	}

	topic, err = s.repo.Create(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("error creating topic: %w", err)
	}

	return topic, nil
}

// List returns the caller's topics and nothing else.
func (s *Service) List(ctx context.Context, userID string) ([]Topic, error) {

	if userID == "" {
		return nil, common.ErrorUnauthorized
	}

	topics, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing topics: %w", err)
	}

	return topics, nil
}

// UpdateStatus moves a topic to the given status and stamps the last-studied
// time. A topic owned by another user surfaces as common.ErrorNotFound.
func (s *Service) UpdateStatus(ctx context.Context, userID, topicID, status string) (*Topic, error) {

	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	if topicID == "" || status == "" {
		return nil, common.ErrorMissingField
	}

	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	topic, err := s.repo.UpdateStatus(ctx, topicID, userID, st, s.now())
	if err != nil {
		return nil, err
	}

	return topic, nil
}

// Delete removes a caller-owned topic; same not-found collapse as updates.
func (s *Service) Delete(ctx context.Context, userID, topicID string) error {

	if userID == "" {
		return common.ErrorUnauthorized
	}
	if topicID == "" {
		return common.ErrorMissingField
	}

	return s.repo.Delete(ctx, topicID, userID)
}
