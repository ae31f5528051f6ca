package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classhub/classhub-backend/internal/model"
)

// UserRepository handles user profile data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a new profile. Returns ErrAlreadyExists when the id or
// email is already taken.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, class_id, parent_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.ClassID, u.ParentID,
	).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a profile by its opaque id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, role, password_hash, class_id, parent_id, created_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.ClassID, &u.ParentID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves a profile by email for login.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, role, password_hash, class_id, parent_id, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.ClassID, &u.ParentID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListStudentsByClass retrieves all student profiles in a class, ordered by name.
func (r *UserRepository) ListStudentsByClass(ctx context.Context, classID string) ([]model.ClassStudent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email FROM users
		 WHERE role = $1 AND class_id = $2
		 ORDER BY name`, model.RoleStudent, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.ClassStudent{}
	for rows.Next() {
		var s model.ClassStudent
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// FindChildOf resolves the student linked to a parent. Linkage is not
// guaranteed unique; the earliest-created student wins. Returns ErrNotFound
// when no student is linked.
func (r *UserRepository) FindChildOf(ctx context.Context, parentID string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, role, password_hash, class_id, parent_id, created_at
		 FROM users
		 WHERE role = $1 AND parent_id = $2
		 ORDER BY created_at
		 LIMIT 1`, model.RoleStudent, parentID,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.ClassID, &u.ParentID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
