package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classhub/classhub-backend/internal/model"
)

// HomeworkRepository handles assignment and submission data access.
// Submissions live in their own table keyed (assignment_id, student_id), so
// a per-student turn-in is a single-row upsert rather than a read-modify-write
// of an embedded map.
type HomeworkRepository struct {
	pool *pgxpool.Pool
}

// NewHomeworkRepository creates a new HomeworkRepository.
func NewHomeworkRepository(pool *pgxpool.Pool) *HomeworkRepository {
	return &HomeworkRepository{pool: pool}
}

// Create inserts a new assignment and fills in its store-generated id.
func (r *HomeworkRepository) Create(ctx context.Context, hw *model.HomeworkAssignment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO homework_assignments
		   (class_id, subject, due_date, description, assigned_by, assigned_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		hw.ClassID, hw.Subject, hw.DueDate, hw.Description, hw.AssignedBy, hw.AssignedDate,
	).Scan(&hw.ID)
}

// ListByClass retrieves a class's assignments ascending by due date, each
// carrying its full submissions map (empty for a fresh assignment).
func (r *HomeworkRepository) ListByClass(ctx context.Context, classID string) ([]model.HomeworkAssignment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_id, subject, due_date, description, assigned_by, assigned_date
		 FROM homework_assignments
		 WHERE class_id = $1
		 ORDER BY due_date`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []model.HomeworkAssignment{}
	index := map[string]int{}
	for rows.Next() {
		var hw model.HomeworkAssignment
		if err := rows.Scan(&hw.ID, &hw.ClassID, &hw.Subject, &hw.DueDate, &hw.Description, &hw.AssignedBy, &hw.AssignedDate); err != nil {
			return nil, err
		}
		hw.Submissions = map[string]model.Submission{}
		index[hw.ID] = len(assignments)
		assignments = append(assignments, hw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subRows, err := r.pool.Query(ctx,
		`SELECT s.assignment_id, s.student_id, s.submitted, s.submitted_at
		 FROM homework_submissions s
		 JOIN homework_assignments a ON a.id = s.assignment_id
		 WHERE a.class_id = $1`, classID)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	for subRows.Next() {
		var assignmentID, studentID string
		var sub model.Submission
		if err := subRows.Scan(&assignmentID, &studentID, &sub.Submitted, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		if i, ok := index[assignmentID]; ok {
			assignments[i].Submissions[studentID] = sub
		}
	}
	return assignments, subRows.Err()
}

// ListForStudent retrieves a class's assignments ascending by due date with
// the given student's turn-in flag resolved per assignment.
func (r *HomeworkRepository) ListForStudent(ctx context.Context, classID, studentID string) ([]model.StudentHomework, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.subject, a.due_date, a.description,
		        COALESCE(s.submitted, FALSE)
		 FROM homework_assignments a
		 LEFT JOIN homework_submissions s
		   ON s.assignment_id = a.id AND s.student_id = $2
		 WHERE a.class_id = $1
		 ORDER BY a.due_date`, classID, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	homework := []model.StudentHomework{}
	for rows.Next() {
		var hw model.StudentHomework
		if err := rows.Scan(&hw.ID, &hw.Subject, &hw.DueDate, &hw.Description, &hw.Submitted); err != nil {
			return nil, err
		}
		homework = append(homework, hw)
	}
	return homework, rows.Err()
}

// UpsertSubmission records a student's turn-in. Repeat calls refresh
// submitted_at; an unknown assignment surfaces as ErrNotFound via the
// foreign key.
func (r *HomeworkRepository) UpsertSubmission(ctx context.Context, assignmentID, studentID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO homework_submissions (assignment_id, student_id, submitted, submitted_at)
		 VALUES ($1, $2, TRUE, NOW())
		 ON CONFLICT (assignment_id, student_id)
		 DO UPDATE SET submitted = TRUE, submitted_at = NOW()`,
		assignmentID, studentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23503: assignment does not exist; 22P02: malformed uuid.
			if pgErr.Code == "23503" || pgErr.Code == "22P02" {
				return ErrNotFound
			}
		}
		return err
	}
	return nil
}

// PendingCount counts a class's assignments the student has not submitted.
// A single query, so the result is consistent with one snapshot of the
// assignment set and always lands in [0, assignment count].
func (r *HomeworkRepository) PendingCount(ctx context.Context, studentID, classID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM homework_assignments a
		 WHERE a.class_id = $1
		   AND NOT EXISTS (
		     SELECT 1 FROM homework_submissions s
		     WHERE s.assignment_id = a.id AND s.student_id = $2 AND s.submitted
		   )`, classID, studentID,
	).Scan(&count)
	return count, err
}

// GetByID retrieves one assignment without its submissions.
func (r *HomeworkRepository) GetByID(ctx context.Context, id string) (*model.HomeworkAssignment, error) {
	hw := &model.HomeworkAssignment{Submissions: map[string]model.Submission{}}
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_id, subject, due_date, description, assigned_by, assigned_date
		 FROM homework_assignments WHERE id = $1`, id,
	).Scan(&hw.ID, &hw.ClassID, &hw.Subject, &hw.DueDate, &hw.Description, &hw.AssignedBy, &hw.AssignedDate)
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
	return hw, nil
}
