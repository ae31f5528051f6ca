package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
)

// StudentHandler handles the student-facing surface: dashboard, own
// attendance history, and homework listing and submission.
type StudentHandler struct {
	dashboardService  *service.DashboardService
	attendanceService *service.AttendanceService
	homeworkService   *service.HomeworkService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(
	dashboardService *service.DashboardService,
	attendanceService *service.AttendanceService,
	homeworkService *service.HomeworkService,
) *StudentHandler {
	return &StudentHandler{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
		homeworkService:   homeworkService,
	}
}

// Dashboard godoc
// GET /api/v1/student/dashboard
func (h *StudentHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)
	today := time.Now().Format("2006-01-02")

	dashboard, err := h.dashboardService.StudentDashboard(c.Request.Context(), claims.UserID, today)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

// Attendance godoc
// GET /api/v1/student/attendance
// Returns the student's own attendance history, newest first.
func (h *StudentHandler) Attendance(c *gin.Context) {
	claims := middleware.GetClaims(c)

	history, err := h.attendanceService.HistoryFor(c.Request.Context(), claims.UserID, service.DefaultHistoryLimit)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": history})
}

// Homework godoc
// GET /api/v1/student/homework
// Lists class assignments with the student's own submitted flag.
func (h *StudentHandler) Homework(c *gin.Context) {
	claims := middleware.GetClaims(c)

	homework, err := h.homeworkService.ListForStudent(c.Request.Context(), claims.ClassID, claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"homework": homework})
}

// SubmitHomework godoc
// PUT /api/v1/student/homework/:id/submit
// Marks an assignment submitted for the calling student. Submitting
// twice keeps the record submitted.
func (h *StudentHandler) SubmitHomework(c *gin.Context) {
	claims := middleware.GetClaims(c)
	assignmentID := c.Param("id")

	if err := h.homeworkService.Submit(c.Request.Context(), assignmentID, claims.UserID, claims.ClassID); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Homework submitted successfully"})
}
