package service

import (
	"context"
	"errors"
	"testing"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

func TestAttendanceMark(t *testing.T) {
	ctx := context.Background()

	t.Run("WritesWholeBatch", func(t *testing.T) {
		store := &fakeAttendanceStore{}
		svc := NewAttendanceService(store)

		entries := []model.MarkAttendanceEntry{
			{StudentID: "s1", StudentName: "Budi", Status: model.AttendancePresent},
			{StudentID: "s2", StudentName: "Siti", Status: model.AttendanceAbsent},
		}
		marked, err := svc.Mark(ctx, "C1", "2026-09-01", entries, "t1")
		if err != nil {
			t.Fatalf("mark: %v", err)
		}
		if marked != 2 {
			t.Errorf("marked = %d, want 2", marked)
		}
	})

	t.Run("RejectsEmptyBatch", func(t *testing.T) {
		svc := NewAttendanceService(&fakeAttendanceStore{})

		_, err := svc.Mark(ctx, "C1", "2026-09-01", nil, "t1")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("RejectsDuplicateStudent", func(t *testing.T) {
		svc := NewAttendanceService(&fakeAttendanceStore{})

		entries := []model.MarkAttendanceEntry{
			{StudentID: "s1", StudentName: "Budi", Status: model.AttendancePresent},
			{StudentID: "s1", StudentName: "Budi", Status: model.AttendanceAbsent},
		}
		_, err := svc.Mark(ctx, "C1", "2026-09-01", entries, "t1")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("RejectsSecondMarkForSameDay", func(t *testing.T) {
		store := &fakeAttendanceStore{}
		svc := NewAttendanceService(store)

		entries := []model.MarkAttendanceEntry{
			{StudentID: "s1", StudentName: "Budi", Status: model.AttendancePresent},
		}
		if _, err := svc.Mark(ctx, "C1", "2026-09-01", entries, "t1"); err != nil {
			t.Fatalf("first mark: %v", err)
		}
		_, err := svc.Mark(ctx, "C1", "2026-09-01", entries, "t1")
		if !errors.Is(err, repository.ErrAlreadyMarked) {
			t.Errorf("err = %v, want ErrAlreadyMarked", err)
		}
		// The original record must survive the rejected re-mark.
		status, err := store.StatusOn(ctx, "s1", "2026-09-01")
		if err != nil || status != model.AttendancePresent {
			t.Errorf("status = %q, %v; want present", status, err)
		}
	})
}

func TestAttendanceHistory(t *testing.T) {
	ctx := context.Background()
	store := &fakeAttendanceStore{}
	svc := NewAttendanceService(store)

	days := []string{"2026-08-28", "2026-08-29", "2026-08-31"}
	for _, d := range days {
		entries := []model.MarkAttendanceEntry{
			{StudentID: "s1", StudentName: "Budi", Status: model.AttendancePresent},
		}
		if _, err := svc.Mark(ctx, "C1", d, entries, "t1"); err != nil {
			t.Fatalf("mark %s: %v", d, err)
		}
	}

	history, err := svc.HistoryFor(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("len = %d, want 3", len(history))
	}
	if history[0].Date != "2026-08-31" {
		t.Errorf("first entry %q, want newest first", history[0].Date)
	}
	for _, e := range history {
		if e.Status != "Present" {
			t.Errorf("status %q, want display-cased Present", e.Status)
		}
	}

	t.Run("ClampsLimit", func(t *testing.T) {
		history, err := svc.HistoryFor(ctx, "s1", 2)
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		if len(history) != 2 {
			t.Errorf("len = %d, want 2", len(history))
		}
	})
}

func TestAttendanceTodayStatus(t *testing.T) {
	ctx := context.Background()
	store := &fakeAttendanceStore{}
	svc := NewAttendanceService(store)

	entries := []model.MarkAttendanceEntry{
		{StudentID: "s1", StudentName: "Budi", Status: model.AttendanceAbsent},
	}
	if _, err := svc.Mark(ctx, "C1", "2026-09-01", entries, "t1"); err != nil {
		t.Fatalf("mark: %v", err)
	}

	status, err := svc.TodayStatus(ctx, "s1", "2026-09-01")
	if err != nil {
		t.Fatalf("today status: %v", err)
	}
	if status != "Absent" {
		t.Errorf("status = %q, want Absent", status)
	}

	t.Run("UnmarkedDayIsNotAnError", func(t *testing.T) {
		status, err := svc.TodayStatus(ctx, "s1", "2026-09-02")
		if err != nil {
			t.Fatalf("today status: %v", err)
		}
		if status != model.AttendanceNotMarked {
			t.Errorf("status = %q, want %q", status, model.AttendanceNotMarked)
		}
	})
}
