package model

// StudentDashboard is the student's landing summary: identity joined with
// today's attendance and the count of unsubmitted homework.
type StudentDashboard struct {
	Name            string `json:"name"`
	ClassID         string `json:"class_id"`
	TodayAttendance string `json:"today_attendance"`
	PendingHomework int    `json:"pending_homework"`
}

// TeacherDashboard is the teacher's landing summary.
type TeacherDashboard struct {
	Name    string `json:"name"`
	ClassID string `json:"class_id"`
}

// ParentDashboard identifies the parent's linked child. When a parent is
// linked to several students the earliest-created one is shown.
type ParentDashboard struct {
	ChildID   string `json:"child_id"`
	ChildName string `json:"child_name"`
	ClassID   string `json:"class_id"`
}
