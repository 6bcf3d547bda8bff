package topics

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo keeps topics in a slice and honors the ownership filter the same
// way the SQL repository does.
type fakeRepo struct {
	topics []Topic
}

func (r *fakeRepo) Create(ctx context.Context, topic *Topic) (*Topic, error) {
	topic.CreatedAt = time.Now()
	r.topics = append(r.topics, *topic)
	return topic, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Topic, error) {
	out := make([]Topic, 0)
	for _, t := range r.topics {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id, userID string, status Status, lastStudied time.Time) (*Topic, error) {
	for i := range r.topics {
		if r.topics[i].ID == id && r.topics[i].UserID == userID {
			r.topics[i].Status = status
			ls := lastStudied
			r.topics[i].LastStudied = &ls
			t := r.topics[i]
			return &t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, id, userID string) error {
	for i := range r.topics {
		if r.topics[i].ID == id && r.topics[i].UserID == userID {
			r.topics = append(r.topics[:i], r.topics[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func TestCreate_DefaultsAndOwnerStamp(t *testing.T) {
	s := NewService(&fakeRepo{})

	topic, err := s.Create(context.Background(), "user-a", "Math", "Derivatives", "High")
	require.NoError(t, err)

	assert.NotEmpty(t, topic.ID)
	assert.Equal(t, "user-a", topic.UserID)
	assert.Equal(t, StatusPending, topic.Status, "new topics default to Pending")
	assert.Nil(t, topic.LastStudied)
}

func TestCreate_Validation(t *testing.T) {
	s := NewService(&fakeRepo{})
	ctx := context.Background()

	_, err := s.Create(ctx, "user-a", "", "Derivatives", "High")
	assert.ErrorIs(t, err, common.ErrorMissingField)

	_, err = s.Create(ctx, "user-a", "Math", "", "High")
	assert.ErrorIs(t, err, common.ErrorMissingField)

	_, err = s.Create(ctx, "user-a", "Math", "Derivatives", "Urgent")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Create(ctx, "", "Math", "Derivatives", "High")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestList_ScopedToOwner(t *testing.T) {
	s := NewService(&fakeRepo{})
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", "Math", "Derivatives", "High")
	require.NoError(t, err)

	// Round trip: the creator sees the topic exactly once.
	mine, err := s.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
	assert.Equal(t, "Math", mine[0].Subject)
	assert.Equal(t, "Derivatives", mine[0].TopicName)
	assert.Equal(t, ImportanceHigh, mine[0].Importance)
	assert.Equal(t, StatusPending, mine[0].Status)

	// A different account sees an empty list, not an error.
	theirs, err := s.List(ctx, "user-b")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUpdateStatus_StampsLastStudied(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	ctx := context.Background()
	created, err := s.Create(ctx, "user-a", "Math", "Derivatives", "High")
	require.NoError(t, err)

	updated, err := s.UpdateStatus(ctx, "user-a", created.ID, "Completed")
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, updated.Status)
	require.NotNil(t, updated.LastStudied)
	assert.Equal(t, fixed, *updated.LastStudied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	s := NewService(&fakeRepo{})
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", "Math", "Derivatives", "High")
	require.NoError(t, err)

	_, err = s.UpdateStatus(ctx, "user-a", created.ID, "Done")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpdateAndDelete_OtherOwnerLooksLikeMissing(t *testing.T) {
	s := NewService(&fakeRepo{})
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", "Math", "Derivatives", "High")
	require.NoError(t, err)

	// user-b targeting user-a's topic...
	_, errForeign := s.UpdateStatus(ctx, "user-b", created.ID, "Completed")
	// ...must be indistinguishable from targeting a nonexistent id.
	_, errMissing := s.UpdateStatus(ctx, "user-b", "no-such-id", "Completed")

	assert.ErrorIs(t, errForeign, common.ErrorNotFound)
	assert.ErrorIs(t, errMissing, common.ErrorNotFound)
	assert.Equal(t, errMissing.Error(), errForeign.Error())

	errDelForeign := s.Delete(ctx, "user-b", created.ID)
	errDelMissing := s.Delete(ctx, "user-b", "no-such-id")
	assert.ErrorIs(t, errDelForeign, common.ErrorNotFound)
	assert.ErrorIs(t, errDelMissing, common.ErrorNotFound)

	// And the record is untouched.
	mine, err := s.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, StatusPending, mine[0].Status)
}

func TestDelete_Owned(t *testing.T) {
	s := NewService(&fakeRepo{})
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", "Math", "Derivatives", "High")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "user-a", created.ID))

	mine, err := s.List(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
