package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

// DefaultHistoryLimit bounds attendance history reads.
const DefaultHistoryLimit = 30

// AttendanceService handles the attendance ledger business logic.
type AttendanceService struct {
	records AttendanceStore
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(records AttendanceStore) *AttendanceService {
	return &AttendanceService{records: records}
}

// Mark writes a whole class's attendance for one date as an all-or-nothing
// batch and returns how many records were written. An empty batch or a
// student listed twice is rejected before touching the store.
func (s *AttendanceService) Mark(ctx context.Context, classID, date string, entries []model.MarkAttendanceEntry, markedBy string) (int, error) {
	if len(entries) == 0 {
		return 0, fmt.Errorf("%w: empty attendance batch", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.StudentID]; dup {
			return 0, fmt.Errorf("%w: student %s listed twice", ErrInvalidInput, e.StudentID)
		}
		seen[e.StudentID] = struct{}{}
	}
	return s.records.MarkBatch(ctx, classID, date, entries, markedBy)
}

// HistoryFor returns a student's attendance history, most recent first,
// with display-cased statuses.
func (s *AttendanceService) HistoryFor(ctx context.Context, studentID string, limit int) ([]model.AttendanceEntry, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	entries, err := s.records.HistoryFor(ctx, studentID, limit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Status = capitalize(entries[i].Status)
	}
	return entries, nil
}

// TodayStatus resolves a student's status for the given date, returning
// "Not Marked" when no record exists.
func (s *AttendanceService) TodayStatus(ctx context.Context, studentID, date string) (string, error) {
	status, err := s.records.StatusOn(ctx, studentID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.AttendanceNotMarked, nil
		}
		return "", err
	}
	return capitalize(string(status)), nil
}

// capitalize upper-cases the first byte: "present" → "Present".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
