package service

import (
	"context"
	"errors"
	"testing"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

func TestMessagePost(t *testing.T) {
	ctx := context.Background()
	store := &fakeMessageStore{}
	svc := NewMessageService(store)

	msg, err := svc.Post(ctx, "C1", "t1", "Dian", model.RoleTeacher, "Welcome!")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if msg.ID == "" {
		t.Error("message id not assigned")
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not assigned at write time")
	}

	t.Run("RejectsBlankBody", func(t *testing.T) {
		_, err := svc.Post(ctx, "C1", "t1", "Dian", model.RoleTeacher, "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})
}

func TestMessageListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := &fakeMessageStore{}
	svc := NewMessageService(store)

	for _, body := range []string{"first", "second", "third"} {
		if _, err := svc.Post(ctx, "C1", "t1", "Dian", model.RoleTeacher, body); err != nil {
			t.Fatalf("post %q: %v", body, err)
		}
	}

	messages, err := svc.ListForClass(ctx, "C1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("len = %d, want 3", len(messages))
	}
	if messages[0].Body != "third" {
		t.Errorf("first message %q, want newest first", messages[0].Body)
	}

	t.Run("ClampsLimit", func(t *testing.T) {
		messages, err := svc.ListForClass(ctx, "C1", 2)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(messages) != 2 {
			t.Errorf("len = %d, want 2", len(messages))
		}
	})
}

func TestMessageDelete(t *testing.T) {
	ctx := context.Background()
	store := &fakeMessageStore{}
	svc := NewMessageService(store)

	msg, err := svc.Post(ctx, "C1", "s1", "Budi", model.RoleStudent, "hello")
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	t.Run("OtherUserForbidden", func(t *testing.T) {
		err := svc.Delete(ctx, msg.ID, "s2")
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		// Existence is reported before ownership.
		err := svc.Delete(ctx, "no-such-id", "s2")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("SenderCanDelete", func(t *testing.T) {
		if err := svc.Delete(ctx, msg.ID, "s1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		messages, err := svc.ListForClass(ctx, "C1", 0)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(messages) != 0 {
			t.Errorf("message still present after delete")
		}
	})
}
