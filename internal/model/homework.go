package model

import "time"

// Submission is one student's turn-in state for one assignment.
type Submission struct {
	Submitted   bool       `json:"submitted"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// HomeworkAssignment is a class-scoped assignment. Submissions are stored in
// their own table keyed (assignment_id, student_id) and assembled into the
// map here for API responses; a student with no row has not submitted.
type HomeworkAssignment struct {
	ID           string                `json:"id"`
	ClassID      string                `json:"class_id"`
	Subject      string                `json:"subject"`
	DueDate      string                `json:"due_date"`
	Description  string                `json:"description"`
	AssignedBy   string                `json:"assigned_by"`
	AssignedDate string                `json:"assigned_date"`
	Submissions  map[string]Submission `json:"submissions"`
}

// StudentHomework is the per-student view of an assignment.
type StudentHomework struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
	Submitted   bool   `json:"submitted"`
}

// AssignHomeworkRequest is the payload for creating an assignment.
type AssignHomeworkRequest struct {
	ClassID     string `json:"class_id" binding:"required,max=50"`
	Subject     string `json:"subject" binding:"required,min=1,max=100"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description" binding:"max=2000"`
}
