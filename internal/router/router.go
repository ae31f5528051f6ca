package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/handler"
	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Teacher *handler.TeacherHandler
	Student *handler.StudentHandler
	Parent  *handler.ParentHandler
	Message *handler.MessageHandler
	Tutor   *handler.TutorHandler
	ChatWS  *handler.ChatWSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check and Prometheus metrics.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authLimiter.Middleware(), handlers.Auth.Register)
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Teacher Group (JWT + Active Session + Role) ────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
		middleware.RequireRole(model.RoleTeacher),
	)
	{
		teacherAPI.GET("/dashboard", handlers.Teacher.Dashboard)
		teacherAPI.GET("/students/:class_id", handlers.Teacher.ListStudents)
		teacherAPI.POST("/students", handlers.Teacher.AddStudent)
		teacherAPI.POST("/attendance", handlers.Teacher.MarkAttendance)
		teacherAPI.POST("/homework", handlers.Teacher.AssignHomework)
		teacherAPI.GET("/homework", handlers.Teacher.ListHomework)
	}

	// ─── 3. Student Group (JWT + Active Session + Role) ────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
		middleware.RequireRole(model.RoleStudent),
	)
	{
		studentAPI.GET("/dashboard", handlers.Student.Dashboard)
		studentAPI.GET("/attendance", handlers.Student.Attendance)
		studentAPI.GET("/homework", handlers.Student.Homework)
		studentAPI.PUT("/homework/:id/submit", handlers.Student.SubmitHomework)
	}

	// ─── 4. Parent Group (JWT + Active Session + Role) ─────────────────
	parentAPI := router.Group("/api/v1/parent")
	parentAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
		middleware.RequireRole(model.RoleParent),
	)
	{
		parentAPI.GET("/dashboard", handlers.Parent.Dashboard)
		parentAPI.GET("/attendance", handlers.Parent.ChildAttendance)
		parentAPI.GET("/homework", handlers.Parent.ChildHomework)
	}

	// ─── 5. Messages Group (Students and Teachers) ─────────────────────
	messagesAPI := router.Group("/api/v1/messages")
	messagesAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
		middleware.RequireRole(model.RoleStudent, model.RoleTeacher),
	)
	{
		messagesAPI.GET("/class/:class_id", handlers.Message.List)
		messagesAPI.POST("", handlers.Message.Post)
		messagesAPI.DELETE("/:id", handlers.Message.Delete)
	}

	// ─── 6. AI Tutor Group (Any Authenticated User) ────────────────────
	aiAPI := router.Group("/api/v1/ai")
	aiAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckActiveSession(authService),
	)
	{
		aiAPI.POST("/chat", handlers.Tutor.Chat)
	}

	// ─── 7. WebSocket Group (WS Auth) ──────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/classes/:class_id/chat", handlers.ChatWS.ClassChatStream)
	}

	return router
}
