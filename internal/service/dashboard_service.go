package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

// DashboardService derives the role-scoped landing views by joining the
// identity store with the attendance ledger and homework tracker. It holds
// no state of its own; every view is computed per call.
type DashboardService struct {
	users      UserStore
	attendance *AttendanceService
	homework   *HomeworkService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(users UserStore, attendance *AttendanceService, homework *HomeworkService) *DashboardService {
	return &DashboardService{users: users, attendance: attendance, homework: homework}
}

// StudentDashboard joins the student's profile with today's attendance
// status and the pending homework count for their class.
func (s *DashboardService) StudentDashboard(ctx context.Context, studentID, today string) (*model.StudentDashboard, error) {
	user, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	classID := ""
	if user.ClassID != nil {
		classID = *user.ClassID
	}

	status, err := s.attendance.TodayStatus(ctx, studentID, today)
	if err != nil {
		return nil, fmt.Errorf("resolve today's attendance: %w", err)
	}

	pending, err := s.homework.PendingCountFor(ctx, studentID, classID)
	if err != nil {
		return nil, fmt.Errorf("count pending homework: %w", err)
	}

	return &model.StudentDashboard{
		Name:            user.Name,
		ClassID:         classID,
		TodayAttendance: status,
		PendingHomework: pending,
	}, nil
}

// TeacherDashboard returns the teacher's identity summary.
func (s *DashboardService) TeacherDashboard(ctx context.Context, teacherID string) (*model.TeacherDashboard, error) {
	user, err := s.users.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	classID := ""
	if user.ClassID != nil {
		classID = *user.ClassID
	}
	return &model.TeacherDashboard{Name: user.Name, ClassID: classID}, nil
}

// ParentDashboard resolves the parent's linked child. Reads of the child's
// attendance and homework then go through the student-facing operations
// with the resolved child id.
func (s *DashboardService) ParentDashboard(ctx context.Context, parentID string) (*model.ParentDashboard, error) {
	child, err := s.users.FindChildOf(ctx, parentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoLinkedChild
		}
		return nil, err
	}

	classID := ""
	if child.ClassID != nil {
		classID = *child.ClassID
	}
	return &model.ParentDashboard{ChildID: child.ID, ChildName: child.Name, ClassID: classID}, nil
}
