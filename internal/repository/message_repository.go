package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classhub/classhub-backend/internal/model"
)

// MessageRepository persists the per-class message feed.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Insert appends a message. The timestamp is assigned by the store, never
// taken from the caller, and is filled into msg along with the generated id.
func (r *MessageRepository) Insert(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (class_id, sender_id, sender_name, sender_role, body, timestamp)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 RETURNING id, timestamp`,
		msg.ClassID, msg.SenderID, msg.SenderName, msg.SenderRole, msg.Body,
	).Scan(&msg.ID, &msg.Timestamp)
}

// ListByClass retrieves a class's messages newest first, bounded at limit.
func (r *MessageRepository) ListByClass(ctx context.Context, classID string, limit int) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_id, sender_id, sender_name, sender_role, body, timestamp
		 FROM messages
		 WHERE class_id = $1
		 ORDER BY timestamp DESC
		 LIMIT $2`, classID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ClassID, &m.SenderID, &m.SenderName, &m.SenderRole, &m.Body, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetByID retrieves one message.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*model.Message, error) {
	m := &model.Message{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_id, sender_id, sender_name, sender_role, body, timestamp
		 FROM messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.ClassID, &m.SenderID, &m.SenderName, &m.SenderRole, &m.Body, &m.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Delete removes a message by id.
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return err
}
