package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
)

// UserService handles profile business logic over the identity store.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateProfile writes a new profile. When no id is supplied one is issued.
// Students and teachers must carry a class id. The store reports a duplicate
// id or email as repository.ErrAlreadyExists.
func (s *UserService) CreateProfile(ctx context.Context, u *model.User) error {
	if u.Email == "" || u.Name == "" {
		return fmt.Errorf("%w: email and name are required", ErrInvalidInput)
	}
	switch u.Role {
	case model.RoleStudent, model.RoleTeacher:
		if u.ClassID == nil || *u.ClassID == "" {
			return fmt.Errorf("%w: class_id is required for role %s", ErrInvalidInput, u.Role)
		}
	case model.RoleParent:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, u.Role)
	}

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return s.users.Create(ctx, u)
}

// GetProfile retrieves a profile by id.
func (s *UserService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByEmail retrieves a profile by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// FindChildOf resolves the student linked to a parent account. A parent
// with no linked student gets ErrNoLinkedChild.
func (s *UserService) FindChildOf(ctx context.Context, parentID string) (*model.User, error) {
	child, err := s.users.FindChildOf(ctx, parentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoLinkedChild
		}
		return nil, err
	}
	return child, nil
}

// ListClassStudents lists the students enrolled in a class.
func (s *UserService) ListClassStudents(ctx context.Context, classID string) ([]model.ClassStudent, error) {
	return s.users.ListStudentsByClass(ctx, classID)
}
