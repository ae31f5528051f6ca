package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

// In-memory store fakes backing the service tests.

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	if _, ok := f.users[u.ID]; ok {
		return repository.ErrAlreadyExists
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrAlreadyExists
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) ListStudentsByClass(_ context.Context, classID string) ([]model.ClassStudent, error) {
	var out []model.ClassStudent
	for _, u := range f.users {
		if u.Role == model.RoleStudent && u.ClassID != nil && *u.ClassID == classID {
			out = append(out, model.ClassStudent{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUserStore) FindChildOf(_ context.Context, parentID string) (*model.User, error) {
	var child *model.User
	for _, u := range f.users {
		if u.Role != model.RoleStudent || u.ParentID == nil || *u.ParentID != parentID {
			continue
		}
		if child == nil || u.CreatedAt.Before(child.CreatedAt) {
			child = u
		}
	}
	if child == nil {
		return nil, repository.ErrNotFound
	}
	cp := *child
	return &cp, nil
}

type fakeAttendanceStore struct {
	records []model.AttendanceRecord
}

func (f *fakeAttendanceStore) MarkBatch(_ context.Context, classID, date string, entries []model.MarkAttendanceEntry, markedBy string) (int, error) {
	for _, e := range entries {
		for _, r := range f.records {
			if r.StudentID == e.StudentID && r.Date == date {
				return 0, repository.ErrAlreadyMarked
			}
		}
	}
	for _, e := range entries {
		f.records = append(f.records, model.AttendanceRecord{
			StudentID:   e.StudentID,
			StudentName: e.StudentName,
			ClassID:     classID,
			Date:        date,
			Status:      e.Status,
			MarkedBy:    markedBy,
			MarkedAt:    time.Now(),
		})
	}
	return len(entries), nil
}

func (f *fakeAttendanceStore) HistoryFor(_ context.Context, studentID string, limit int) ([]model.AttendanceEntry, error) {
	var out []model.AttendanceEntry
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, model.AttendanceEntry{Date: r.Date, Status: string(r.Status)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAttendanceStore) StatusOn(_ context.Context, studentID, date string) (model.AttendanceStatus, error) {
	for _, r := range f.records {
		if r.StudentID == studentID && r.Date == date {
			return r.Status, nil
		}
	}
	return "", repository.ErrNotFound
}

type fakeHomeworkStore struct {
	assignments []model.HomeworkAssignment
	nextID      int
}

func (f *fakeHomeworkStore) Create(_ context.Context, hw *model.HomeworkAssignment) error {
	f.nextID++
	hw.ID = "hw-" + strconv.Itoa(f.nextID)
	cp := *hw
	cp.Submissions = map[string]model.Submission{}
	f.assignments = append(f.assignments, cp)
	return nil
}

func (f *fakeHomeworkStore) GetByID(_ context.Context, id string) (*model.HomeworkAssignment, error) {
	for _, a := range f.assignments {
		if a.ID == id {
			cp := a
			cp.Submissions = map[string]model.Submission{}
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeHomeworkStore) ListByClass(_ context.Context, classID string) ([]model.HomeworkAssignment, error) {
	var out []model.HomeworkAssignment
	for _, a := range f.assignments {
		if a.ClassID == classID {
			cp := a
			cp.Submissions = map[string]model.Submission{}
			for k, v := range a.Submissions {
				cp.Submissions[k] = v
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out, nil
}

func (f *fakeHomeworkStore) ListForStudent(_ context.Context, classID, studentID string) ([]model.StudentHomework, error) {
	var out []model.StudentHomework
	for _, a := range f.assignments {
		if a.ClassID != classID {
			continue
		}
		sub, ok := a.Submissions[studentID]
		out = append(out, model.StudentHomework{
			ID:          a.ID,
			Subject:     a.Subject,
			DueDate:     a.DueDate,
			Description: a.Description,
			Submitted:   ok && sub.Submitted,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out, nil
}

func (f *fakeHomeworkStore) UpsertSubmission(_ context.Context, assignmentID, studentID string) error {
	for i := range f.assignments {
		if f.assignments[i].ID == assignmentID {
			now := time.Now()
			f.assignments[i].Submissions[studentID] = model.Submission{Submitted: true, SubmittedAt: &now}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeHomeworkStore) PendingCount(_ context.Context, studentID, classID string) (int, error) {
	count := 0
	for _, a := range f.assignments {
		if a.ClassID != classID {
			continue
		}
		if sub, ok := a.Submissions[studentID]; !ok || !sub.Submitted {
			count++
		}
	}
	return count, nil
}

type fakeMessageStore struct {
	messages []model.Message
	nextID   int
}

func (f *fakeMessageStore) Insert(_ context.Context, msg *model.Message) error {
	f.nextID++
	msg.ID = "msg-" + strconv.Itoa(f.nextID)
	msg.Timestamp = time.Now()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageStore) ListByClass(_ context.Context, classID string, limit int) ([]model.Message, error) {
	var out []model.Message
	for i := len(f.messages) - 1; i >= 0 && len(out) < limit; i-- {
		if f.messages[i].ClassID == classID {
			out = append(out, f.messages[i])
		}
	}
	return out, nil
}

func (f *fakeMessageStore) GetByID(_ context.Context, id string) (*model.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMessageStore) Delete(_ context.Context, id string) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
