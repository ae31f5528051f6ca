package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/classhub/classhub-backend/internal/model"
)

func seedClass(t *testing.T, users *fakeUserStore) {
	t.Helper()
	classID := "C1"
	parentID := "p1"

	accounts := []*model.User{
		{ID: "t1", Email: "teacher@example.com", Name: "Dian", Role: model.RoleTeacher, ClassID: &classID},
		{ID: "p1", Email: "parent@example.com", Name: "Bambang", Role: model.RoleParent},
		{ID: "s1", Email: "s1@example.com", Name: "Budi", Role: model.RoleStudent, ClassID: &classID, ParentID: &parentID, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "s2", Email: "s2@example.com", Name: "Siti", Role: model.RoleStudent, ClassID: &classID},
	}
	for _, u := range accounts {
		if err := users.Create(context.Background(), u); err != nil {
			t.Fatalf("seed %s: %v", u.ID, err)
		}
	}
}

func newDashboardFixture(t *testing.T) (*DashboardService, *fakeAttendanceStore, *fakeHomeworkStore) {
	t.Helper()
	users := newFakeUserStore()
	seedClass(t, users)
	attendance := &fakeAttendanceStore{}
	homework := &fakeHomeworkStore{}
	svc := NewDashboardService(users, NewAttendanceService(attendance), NewHomeworkService(homework))
	return svc, attendance, homework
}

func TestStudentDashboard(t *testing.T) {
	ctx := context.Background()
	svc, attendance, homework := newDashboardFixture(t)

	attendance.MarkBatch(ctx, "C1", "2026-09-01", []model.MarkAttendanceEntry{
		{StudentID: "s1", StudentName: "Budi", Status: model.AttendancePresent},
	}, "t1")
	homework.Create(ctx, &model.HomeworkAssignment{ClassID: "C1", Subject: "Mathematics", DueDate: "2026-09-10"})
	homework.Create(ctx, &model.HomeworkAssignment{ClassID: "C1", Subject: "Science", DueDate: "2026-09-12"})

	dash, err := svc.StudentDashboard(ctx, "s1", "2026-09-01")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Name != "Budi" || dash.ClassID != "C1" {
		t.Errorf("identity = %q/%q, want Budi/C1", dash.Name, dash.ClassID)
	}
	if dash.TodayAttendance != "Present" {
		t.Errorf("today = %q, want Present", dash.TodayAttendance)
	}
	if dash.PendingHomework != 2 {
		t.Errorf("pending = %d, want 2", dash.PendingHomework)
	}

	t.Run("UnmarkedDay", func(t *testing.T) {
		dash, err := svc.StudentDashboard(ctx, "s2", "2026-09-01")
		if err != nil {
			t.Fatalf("dashboard: %v", err)
		}
		if dash.TodayAttendance != model.AttendanceNotMarked {
			t.Errorf("today = %q, want %q", dash.TodayAttendance, model.AttendanceNotMarked)
		}
	})
}

func TestTeacherDashboard(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDashboardFixture(t)

	dash, err := svc.TeacherDashboard(ctx, "t1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Name != "Dian" || dash.ClassID != "C1" {
		t.Errorf("got %+v, want Dian/C1", dash)
	}
}

func TestParentDashboard(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDashboardFixture(t)

	dash, err := svc.ParentDashboard(ctx, "p1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.ChildID != "s1" || dash.ChildName != "Budi" || dash.ClassID != "C1" {
		t.Errorf("got %+v, want child s1 Budi in C1", dash)
	}

	t.Run("NoLinkedChild", func(t *testing.T) {
		users := newFakeUserStore()
		users.Create(ctx, &model.User{ID: "p2", Email: "p2@example.com", Name: "Lone", Role: model.RoleParent})
		svc := NewDashboardService(users, NewAttendanceService(&fakeAttendanceStore{}), NewHomeworkService(&fakeHomeworkStore{}))

		_, err := svc.ParentDashboard(ctx, "p2")
		if !errors.Is(err, ErrNoLinkedChild) {
			t.Errorf("err = %v, want ErrNoLinkedChild", err)
		}
	})
}
