package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classhub/classhub-backend/internal/model"
)

// TutorLogRepository persists the AI tutor audit trail. Writes come from the
// background worker, never from the request path.
type TutorLogRepository struct {
	pool *pgxpool.Pool
}

// NewTutorLogRepository creates a new TutorLogRepository.
func NewTutorLogRepository(pool *pgxpool.Pool) *TutorLogRepository {
	return &TutorLogRepository{pool: pool}
}

// Insert appends one exchange to the log.
func (r *TutorLogRepository) Insert(ctx context.Context, entry *model.TutorLog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO ai_tutor_logs (user_id, question, answer)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		entry.UserID, entry.Question, entry.Answer,
	).Scan(&entry.ID, &entry.CreatedAt)
}
