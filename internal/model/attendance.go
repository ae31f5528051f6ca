package model

import "time"

// AttendanceStatus is the per-day attendance state of a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"

	// AttendanceNotMarked is a derived value, never stored.
	AttendanceNotMarked = "Not Marked"
)

// AttendanceRecord is one student's attendance for one calendar day.
// Dates are ISO YYYY-MM-DD strings so they sort lexicographically.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	ClassID     string           `json:"class_id"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	MarkedBy    string           `json:"marked_by"`
	MarkedAt    time.Time        `json:"marked_at"`
}

// AttendanceEntry is a single line of a student's attendance history.
type AttendanceEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// MarkAttendanceEntry is one student's status inside a batch mark request.
type MarkAttendanceEntry struct {
	StudentID   string           `json:"student_id" binding:"required,max=50"`
	StudentName string           `json:"student_name" binding:"required,max=100"`
	Status      AttendanceStatus `json:"status" binding:"required,oneof=present absent"`
}

// MarkAttendanceRequest is the payload for a teacher marking a whole class.
type MarkAttendanceRequest struct {
	ClassID    string                `json:"class_id" binding:"required,max=50"`
	Date       string                `json:"date" binding:"required,datetime=2006-01-02"`
	Attendance []MarkAttendanceEntry `json:"attendance" binding:"required,min=1,dive"`
}
