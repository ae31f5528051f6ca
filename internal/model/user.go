package model

import "time"

// Role classifies a user account.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
)

// User represents a profile in the identity store. IDs are opaque strings
// issued at registration; other records reference them by id only.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	ClassID      *string   `json:"class_id,omitempty"`
	ParentID     *string   `json:"parent_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Role     Role   `json:"role" binding:"required,oneof=student teacher parent"`
	ClassID  string `json:"class_id" binding:"omitempty,max=50"` // required for student/teacher, checked in service
	ParentID string `json:"parent_id" binding:"omitempty,max=50"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AddStudentRequest is the payload for a teacher enrolling a new student
// directly into their class.
type AddStudentRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	ParentID string `json:"parent_id" binding:"omitempty,max=50"`
}

// ClassStudent is the slim student listing returned to teachers.
type ClassStudent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
