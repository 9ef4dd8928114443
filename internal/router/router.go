package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/config"
	"github.com/stemsi/student-admin/internal/handler"
	"github.com/stemsi/student-admin/internal/middleware"
	"github.com/stemsi/student-admin/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student *handler.StudentHandler
	Course  *handler.CourseHandler
	WS      *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// limiter guards the mutating routes; pass nil to leave them unthrottled.
func SetupRouter(
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the access log and upstream calls share it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	mutate := func(c *gin.Context) { c.Next() }
	if limiter != nil {
		mutate = limiter.Middleware()
	}

	// ─── 1. REST Group ─────────────────────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.NoStore())
	{
		students := api.Group("/students")
		{
			students.GET("", handlers.Student.ListStudents)
			students.POST("", mutate, handlers.Student.CreateStudent)
			students.GET("/:id", handlers.Student.GetStudent)
			students.PUT("/:id", mutate, handlers.Student.UpdateStudent)
			students.DELETE("/:id", mutate, handlers.Student.DeleteStudent)
			students.POST("/:id/enroll/:course_id", mutate, handlers.Student.Enroll)
			students.DELETE("/:id/unenroll/:course_id", mutate, handlers.Student.Unenroll)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", handlers.Course.ListCourses)
			courses.POST("", mutate, handlers.Course.CreateCourse)
		}
	}

	// ─── 2. WebSocket Group ────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/students/stream", handlers.WS.StudentStream)
	}

	return router
}
