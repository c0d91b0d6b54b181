package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/api/docs"
	"github.com/CPU-commits/Intranet_BLearning/controllers"
	"github.com/CPU-commits/Intranet_BLearning/middlewares"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/CPU-commits/Intranet_BLearning/services"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const BASE_PATH = "/api"

type RouterOptions struct {
	ClientURL string
	// Requests per second and client IP
	RateLimit uint
	Logger    *zap.Logger
	Tokens    *services.TokenManager
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
	})
}

func NewRouter(s *services.Services, opts RouterOptions) *gin.Engine {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap logger
	router.Use(ginzap.GinzapWithConfig(opts.Logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{BASE_PATH + "/swagger", BASE_PATH + "/healthz"},
	}))
	router.Use(ginzap.RecoveryWithZap(opts.Logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// Docs
	docs.SwaggerInfo.BasePath = BASE_PATH
	docs.SwaggerInfo.Version = "v1"
	// CORS
	httpOrigin := "http://" + opts.ClientURL
	httpsOrigin := "https://" + opts.ClientURL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	router.Use(secure.New(secure.Config{
		SSLHost:              "ssl." + opts.ClientURL,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}))
	// Rate limit
	limit := opts.RateLimit
	if limit == 0 {
		limit = 7
	}
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: limit,
	})
	router.Use(ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	}))
	// Routes
	teachingRoles := []string{models.INSTRUCTOR, models.ADMIN}

	api := router.Group(BASE_PATH)
	auth := api.Group("/auth")
	public := api.Group("", middlewares.OptionalJWTMiddleware(opts.Tokens))
	private := api.Group("", middlewares.JWTMiddleware(opts.Tokens))
	teaching := api.Group(
		"",
		middlewares.JWTMiddleware(opts.Tokens),
		middlewares.RolesMiddleware(teachingRoles),
	)
	admin := api.Group(
		"",
		middlewares.JWTMiddleware(opts.Tokens),
		middlewares.RolesMiddleware([]string{models.ADMIN}),
	)
	{
		// Init controllers
		authController := controllers.NewAuthController(s)
		courseController := controllers.NewCourseController(s)
		chapterController := controllers.NewChapterController(s)
		lessonController := controllers.NewLessonController(s)
		enrollmentController := controllers.NewEnrollmentController(s)
		progressController := controllers.NewProgressController(s)
		reviewController := controllers.NewReviewController(s)
		instructorController := controllers.NewInstructorController(s)
		profileController := controllers.NewProfileController(s)
		feedbackController := controllers.NewFeedbackController(s)
		// Define routes
		// Auth
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middlewares.JWTMiddleware(opts.Tokens), authController.Me)
		// Catalog
		public.GET("/courses", courseController.GetCourses)
		public.GET("/courses/search", courseController.SearchCourses)
		public.GET("/courses/:idCourse", courseController.GetCourse)
		public.GET("/courses/:idCourse/chapters", chapterController.GetChapters)
		public.GET("/courses/:idCourse/reviews", reviewController.GetReviews)
		public.GET("/chapters/:idChapter/lessons", lessonController.GetLessons)
		public.GET("/lessons/:idLesson", lessonController.GetLesson)
		public.GET("/instructors", instructorController.GetInstructors)
		public.GET("/instructors/:id", instructorController.GetInstructor)
		public.GET("/users/:id/profile", profileController.GetPublicProfile)
		// Courses
		teaching.POST("/courses", courseController.CreateCourse)
		teaching.PUT("/courses/:idCourse", courseController.UpdateCourse)
		teaching.DELETE("/courses/:idCourse", courseController.DeleteCourse)
		teaching.POST("/courses/:idCourse/thumbnail", courseController.UploadThumbnail)
		teaching.GET("/instructor/courses", courseController.GetInstructorCourses)
		teaching.GET(
			"/instructor/courses/:idCourse/export",
			instructorController.ExportEnrollments,
		)
		// Chapters
		teaching.POST("/courses/:idCourse/chapters", chapterController.CreateChapter)
		teaching.PUT("/courses/:idCourse/chapters/reorder", chapterController.ReorderChapters)
		teaching.PUT("/chapters/:idChapter", chapterController.UpdateChapter)
		teaching.DELETE("/chapters/:idChapter", chapterController.DeleteChapter)
		// Lessons
		teaching.POST("/chapters/:idChapter/lessons", lessonController.CreateLesson)
		teaching.PUT("/lessons/:idLesson", lessonController.UpdateLesson)
		teaching.DELETE("/lessons/:idLesson", lessonController.DeleteLesson)
		teaching.POST("/lessons/:idLesson/attachments", lessonController.UploadAttachment)
		teaching.DELETE(
			"/lessons/:idLesson/attachments/:idAttachment",
			lessonController.DeleteAttachment,
		)
		private.GET(
			"/lessons/:idLesson/attachments/download",
			lessonController.DownloadAttachments,
		)
		// Enrollments
		private.GET("/enrollments", enrollmentController.GetEnrollments)
		private.POST("/enrollments", enrollmentController.Enroll)
		private.GET("/enrollments/:id", enrollmentController.GetEnrollment)
		private.PUT("/enrollments/:id", enrollmentController.UpdateEnrollment)
		private.DELETE("/enrollments/:id", enrollmentController.DeleteEnrollment)
		private.GET("/enrollments/:id/certificate", enrollmentController.Certificate)
		// Progress
		private.POST("/progress", progressController.UpdateProgress)
		private.GET("/progress", progressController.GetProgress)
		private.GET("/progress/streak", progressController.GetStreak)
		private.GET("/achievements", progressController.GetAchievements)
		private.GET("/dashboard", progressController.GetDashboard)
		// Reviews
		private.POST("/courses/:idCourse/reviews", reviewController.CreateReview)
		private.PUT("/reviews/:id", reviewController.UpdateReview)
		private.DELETE("/reviews/:id", reviewController.DeleteReview)
		// Instructors
		private.POST("/instructors", instructorController.BecomeInstructor)
		teaching.GET("/instructors/me", instructorController.GetMe)
		teaching.PUT("/instructors/me", instructorController.UpdateMe)
		teaching.GET("/instructors/me/stats", instructorController.GetStats)
		// Profile
		private.GET("/profile", profileController.GetProfile)
		private.PUT("/profile", profileController.UpdateProfile)
		private.POST("/profile/avatar", profileController.UploadAvatar)
		private.GET("/settings", profileController.GetSettings)
		private.PUT("/settings", profileController.UpdateSettings)
		// Feedback
		private.POST("/feedback", feedbackController.CreateFeedback)
		private.GET("/feedback/mine", feedbackController.GetMyFeedback)
		admin.GET("/feedback", feedbackController.GetFeedback)
		admin.PUT("/feedback/:id", feedbackController.UpdateFeedback)
	}
	// Route docs
	router.GET(BASE_PATH+"/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Route healthz
	router.GET(BASE_PATH+"/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	return router
}
