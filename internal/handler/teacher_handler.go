package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
)

// TeacherHandler handles the teacher-facing surface: dashboard, class
// roster, attendance marking, and homework assignment.
type TeacherHandler struct {
	dashboardService  *service.DashboardService
	userService       *service.UserService
	attendanceService *service.AttendanceService
	homeworkService   *service.HomeworkService
	authService       *service.AuthService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(
	dashboardService *service.DashboardService,
	userService *service.UserService,
	attendanceService *service.AttendanceService,
	homeworkService *service.HomeworkService,
	authService *service.AuthService,
) *TeacherHandler {
	return &TeacherHandler{
		dashboardService:  dashboardService,
		userService:       userService,
		attendanceService: attendanceService,
		homeworkService:   homeworkService,
		authService:       authService,
	}
}

// Dashboard godoc
// GET /api/v1/teacher/dashboard
func (h *TeacherHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	dashboard, err := h.dashboardService.TeacherDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

// ListStudents godoc
// GET /api/v1/teacher/students/:class_id
// Lists the students of the teacher's own class.
func (h *TeacherHandler) ListStudents(c *gin.Context) {
	claims := middleware.GetClaims(c)
	classID := c.Param("class_id")

	if classID != claims.ClassID {
		response.Fail(c, http.StatusForbidden, response.ErrWrongClassroom)
		return
	}

	students, err := h.userService.ListClassStudents(c.Request.Context(), classID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// MarkAttendance godoc
// POST /api/v1/teacher/attendance
// Writes one day's attendance for the whole class as an atomic batch.
func (h *TeacherHandler) MarkAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.ClassID != claims.ClassID {
		response.Fail(c, http.StatusForbidden, response.ErrWrongClassroom)
		return
	}

	marked, err := h.attendanceService.Mark(c.Request.Context(), req.ClassID, req.Date, req.Attendance, claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Attendance marked successfully",
		"marked":  marked,
	})
}

// AssignHomework godoc
// POST /api/v1/teacher/homework
func (h *TeacherHandler) AssignHomework(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AssignHomeworkRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.ClassID != claims.ClassID {
		response.Fail(c, http.StatusForbidden, response.ErrWrongClassroom)
		return
	}

	id, err := h.homeworkService.Assign(c.Request.Context(), req.ClassID, req.Subject, req.DueDate, req.Description, claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     "Homework assigned successfully",
		"homework_id": id,
	})
}

// ListHomework godoc
// GET /api/v1/teacher/homework
// Lists the class's assignments with their full submission maps.
func (h *TeacherHandler) ListHomework(c *gin.Context) {
	claims := middleware.GetClaims(c)

	homework, err := h.homeworkService.ListForClass(c.Request.Context(), claims.ClassID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"homework": homework})
}

// AddStudent godoc
// POST /api/v1/teacher/students
// Enrolls a new student account directly into the teacher's class.
func (h *TeacherHandler) AddStudent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	classID := claims.ClassID
	student := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         model.RoleStudent,
		PasswordHash: hash,
		ClassID:      &classID,
		ParentID:     optional(req.ParentID),
	}

	if err := h.userService.CreateProfile(c.Request.Context(), student); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":      "Student added successfully",
		"student_id":   student.ID,
		"student_name": student.Name,
	})
}
