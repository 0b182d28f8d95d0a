package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/foliocraft/backend/internal/api"
	"github.com/foliocraft/backend/internal/middleware"
)

// Handlers carries the request handlers wired into the route table.
type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Project     *api.ProjectHandler
	Skill       *api.SkillHandler
	Timeline    *api.TimelineHandler
	Testimonial *api.TestimonialHandler
	Blog        *api.BlogHandler
	Analytics   *api.AnalyticsHandler
	Upload      *api.UploadHandler
	Contact     *api.ContactHandler
	Template    *api.TemplateHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	AllowedOrigin string
	Production    bool
	AuthGuard     gin.HandlerFunc
	UploadLimit   *middleware.RateLimiter
	ContactLimit  *middleware.RateLimiter
}

// Setup configures the application routes. The error normalizer is the
// outermost middleware so every failing stage, including AuthGuard, gets
// the uniform envelope.
func Setup(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.MaxMultipartMemory = 8 << 20

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.ErrorNormalizer(opts.Production))
	router.NoRoute(middleware.NotFoundHandler)

	guard := opts.AuthGuard

	root := router.Group("/api")
	{
		root.GET("/health", api.HealthHandler)
		root.GET("/templates", h.Template.List)

		auth := root.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/password-reset", h.Auth.PasswordReset)
		}

		users := root.Group("/users")
		{
			users.GET("/:id", h.User.GetPortfolio)
			users.PATCH("/:id", guard, h.User.UpdateProfile)
			users.PATCH("/:id/settings", guard, h.User.UpsertSettings)

			users.GET("/:id/projects", h.Project.List)
			users.POST("/:id/projects", guard, h.Project.Create)

			users.GET("/:id/skills", h.Skill.List)
			users.POST("/:id/skills", guard, h.Skill.Create)

			users.GET("/:id/experience", h.Timeline.List)
			users.POST("/:id/experience", guard, h.Timeline.Create)

			users.GET("/:id/testimonials", h.Testimonial.List)
			users.POST("/:id/testimonials", guard, h.Testimonial.Create)

			users.GET("/:id/blog-posts", h.Blog.List)
			users.POST("/:id/blog-posts", guard, h.Blog.Create)

			users.GET("/:id/messages", guard, h.Contact.ListMessages)
		}

		projects := root.Group("/projects")
		{
			projects.GET("/:id", h.Project.Get)
			projects.PATCH("/:id", guard, h.Project.Update)
			projects.DELETE("/:id", guard, h.Project.Delete)
			projects.GET("/:id/comments", h.Project.ListComments)
			projects.POST("/:id/comments", h.Project.CreateComment)
		}

		root.PATCH("/skills/:id", guard, h.Skill.Update)
		root.DELETE("/skills/:id", guard, h.Skill.Delete)
		root.PATCH("/experience/:id", guard, h.Timeline.Update)
		root.DELETE("/experience/:id", guard, h.Timeline.Delete)
		root.PATCH("/testimonials/:id", guard, h.Testimonial.Update)
		root.DELETE("/testimonials/:id", guard, h.Testimonial.Delete)
		root.PATCH("/blog-posts/:id", guard, h.Blog.Update)
		root.DELETE("/blog-posts/:id", guard, h.Blog.Delete)

		root.GET("/analytics/:id", guard, h.Analytics.Get)

		root.POST("/upload/:type", guard, opts.UploadLimit.Middleware(middleware.UserKey), h.Upload.Upload)
		root.POST("/contact/:id", opts.ContactLimit.Middleware(middleware.IPKey), h.Contact.Create)
	}

	return router
}
