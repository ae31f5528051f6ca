package service

import (
	"context"

	"github.com/classhub/classhub-backend/internal/model"
)

// Store capabilities consumed by the services. The pgx repositories satisfy
// these; tests substitute in-memory fakes.

// UserStore is the identity lookup capability.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListStudentsByClass(ctx context.Context, classID string) ([]model.ClassStudent, error)
	FindChildOf(ctx context.Context, parentID string) (*model.User, error)
}

// AttendanceStore is the attendance ledger capability.
type AttendanceStore interface {
	MarkBatch(ctx context.Context, classID, date string, entries []model.MarkAttendanceEntry, markedBy string) (int, error)
	HistoryFor(ctx context.Context, studentID string, limit int) ([]model.AttendanceEntry, error)
	StatusOn(ctx context.Context, studentID, date string) (model.AttendanceStatus, error)
}

// HomeworkStore is the assignment/submission tracking capability.
type HomeworkStore interface {
	Create(ctx context.Context, hw *model.HomeworkAssignment) error
	GetByID(ctx context.Context, id string) (*model.HomeworkAssignment, error)
	ListByClass(ctx context.Context, classID string) ([]model.HomeworkAssignment, error)
	ListForStudent(ctx context.Context, classID, studentID string) ([]model.StudentHomework, error)
	UpsertSubmission(ctx context.Context, assignmentID, studentID string) error
	PendingCount(ctx context.Context, studentID, classID string) (int, error)
}

// MessageStore is the class feed capability.
type MessageStore interface {
	Insert(ctx context.Context, msg *model.Message) error
	ListByClass(ctx context.Context, classID string, limit int) ([]model.Message, error)
	GetByID(ctx context.Context, id string) (*model.Message, error)
	Delete(ctx context.Context, id string) error
}
