package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classhub/classhub-backend/internal/model"
)

// AttendanceRepository persists the append-only attendance ledger.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// MarkBatch writes one record per entry inside a single transaction: either
// the whole batch is durable or none of it is. A unique index on
// (student_id, date) rejects re-marking; the violation rolls back the
// entire batch and surfaces as ErrAlreadyMarked.
func (r *AttendanceRepository) MarkBatch(ctx context.Context, classID, date string, entries []model.MarkAttendanceEntry, markedBy string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO attendance_records
			   (student_id, student_name, class_id, date, status, marked_by, marked_at)
			 VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			e.StudentID, e.StudentName, classID, date, e.Status, markedBy)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return 0, ErrAlreadyMarked
			}
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(entries), nil
}

// HistoryFor retrieves a student's attendance history, most recent date
// first, bounded at limit.
func (r *AttendanceRepository) HistoryFor(ctx context.Context, studentID string, limit int) ([]model.AttendanceEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date, status FROM attendance_records
		 WHERE student_id = $1
		 ORDER BY date DESC
		 LIMIT $2`, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.AttendanceEntry{}
	for rows.Next() {
		var e model.AttendanceEntry
		if err := rows.Scan(&e.Date, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// StatusOn retrieves a student's status for one date, picking the most
// recently marked row.
func (r *AttendanceRepository) StatusOn(ctx context.Context, studentID, date string) (model.AttendanceStatus, error) {
	var status model.AttendanceStatus
	err := r.pool.QueryRow(ctx,
		`SELECT status FROM attendance_records
		 WHERE student_id = $1 AND date = $2
		 ORDER BY marked_at DESC
		 LIMIT 1`, studentID, date,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return status, nil
}
