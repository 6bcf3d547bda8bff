package topics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, topic *Topic) (*Topic, error) {

	query :=
		`INSERT INTO topics (id, user_id, subject, topic_name, importance, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		topic.ID, topic.UserID, topic.Subject, topic.TopicName, topic.Importance, topic.Status).
		Scan(&topic.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return topic, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Topic, error) {

	query :=
		`SELECT id, user_id, subject, topic_name, importance, status, last_studied, created_at
		 FROM topics
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	topics := make([]Topic, 0)
	for rows.Next() {
		var t Topic
		var lastStudied sql.NullTime
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.TopicName, &t.Importance, &t.Status, &lastStudied, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if lastStudied.Valid {
			t.LastStudied = &lastStudied.Time
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return topics, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, userID string, status Status, lastStudied time.Time) (*Topic, error) {

	// The ownership filter is part of the WHERE clause: a row under another
	// owner yields zero rows, same as a nonexistent id.
	query :=
		`UPDATE topics
		 SET status = $1, last_studied = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, user_id, subject, topic_name, importance, status, last_studied, created_at
		 `

	var t Topic
	var ls sql.NullTime
	err := r.db.QueryRowContext(ctx, query, status, lastStudied, id, userID).
		Scan(&t.ID, &t.UserID, &t.Subject, &t.TopicName, &t.Importance, &t.Status, &ls, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if ls.Valid {
		t.LastStudied = &ls.Time
	}

	return &t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {

	query :=
		`DELETE FROM topics
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
