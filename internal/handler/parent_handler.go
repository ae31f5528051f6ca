package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
)

// ParentHandler handles the parent-facing surface. The child is always
// resolved server-side from the parent's identity, never taken from the
// request.
type ParentHandler struct {
	dashboardService  *service.DashboardService
	userService       *service.UserService
	attendanceService *service.AttendanceService
	homeworkService   *service.HomeworkService
}

// NewParentHandler creates a new ParentHandler.
func NewParentHandler(
	dashboardService *service.DashboardService,
	userService *service.UserService,
	attendanceService *service.AttendanceService,
	homeworkService *service.HomeworkService,
) *ParentHandler {
	return &ParentHandler{
		dashboardService:  dashboardService,
		userService:       userService,
		attendanceService: attendanceService,
		homeworkService:   homeworkService,
	}
}

// Dashboard godoc
// GET /api/v1/parent/dashboard
func (h *ParentHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	dashboard, err := h.dashboardService.ParentDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

// ChildAttendance godoc
// GET /api/v1/parent/attendance
func (h *ParentHandler) ChildAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)

	child, err := h.userService.FindChildOf(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	history, err := h.attendanceService.HistoryFor(c.Request.Context(), child.ID, service.DefaultHistoryLimit)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"child_name": child.Name,
		"attendance": history,
	})
}

// ChildHomework godoc
// GET /api/v1/parent/homework
func (h *ParentHandler) ChildHomework(c *gin.Context) {
	claims := middleware.GetClaims(c)

	child, err := h.userService.FindChildOf(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	classID := ""
	if child.ClassID != nil {
		classID = *child.ClassID
	}

	homework, err := h.homeworkService.ListForStudent(c.Request.Context(), classID, child.ID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"child_name": child.Name,
		"homework":   homework,
	})
}
