package service

import (
	"context"
	"time"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

// HomeworkService handles assignment and submission tracking.
type HomeworkService struct {
	homework HomeworkStore
}

// NewHomeworkService creates a new HomeworkService.
func NewHomeworkService(homework HomeworkStore) *HomeworkService {
	return &HomeworkService{homework: homework}
}

// Assign creates a new assignment with an empty submission set and returns
// its id. The assigned date is set server-side.
func (s *HomeworkService) Assign(ctx context.Context, classID, subject, dueDate, description, assignedBy string) (string, error) {
	hw := &model.HomeworkAssignment{
		ClassID:      classID,
		Subject:      subject,
		DueDate:      dueDate,
		Description:  description,
		AssignedBy:   assignedBy,
		AssignedDate: time.Now().Format("2006-01-02"),
		Submissions:  map[string]model.Submission{},
	}
	if err := s.homework.Create(ctx, hw); err != nil {
		return "", err
	}
	return hw.ID, nil
}

// ListForClass returns a class's assignments ascending by due date, each
// with its submissions map.
func (s *HomeworkService) ListForClass(ctx context.Context, classID string) ([]model.HomeworkAssignment, error) {
	return s.homework.ListByClass(ctx, classID)
}

// ListForStudent returns a class's assignments with the student's own
// turn-in flag resolved.
func (s *HomeworkService) ListForStudent(ctx context.Context, classID, studentID string) ([]model.StudentHomework, error) {
	return s.homework.ListForStudent(ctx, classID, studentID)
}

// Submit marks an assignment turned in by a student. The assignment must
// belong to the student's class; assignments from other classes read as
// absent so the submissions map only ever holds enrolled students.
// Idempotent: repeating the call only refreshes the submission timestamp.
func (s *HomeworkService) Submit(ctx context.Context, assignmentID, studentID, classID string) error {
	hw, err := s.homework.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if hw.ClassID != classID {
		return repository.ErrNotFound
	}
	return s.homework.UpsertSubmission(ctx, assignmentID, studentID)
}

// PendingCountFor counts the class's assignments the student has not yet
// submitted, over a single coherent read of the assignment set.
func (s *HomeworkService) PendingCountFor(ctx context.Context, studentID, classID string) (int, error) {
	return s.homework.PendingCount(ctx, studentID, classID)
}
