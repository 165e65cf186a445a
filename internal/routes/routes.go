package routes

import (
	"time"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/handlers"
	"github.com/devfolio/portfolio-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	OAuth      *handlers.OAuthHandler
	Project    *handlers.ProjectHandler
	Skill      *handlers.SkillHandler
	Experience *handlers.ExperienceHandler
	Education  *handlers.EducationHandler
	Blog       *handlers.BlogHandler
	Settings   *handlers.SettingsHandler
	File       *handlers.FileHandler
	Health     *handlers.HealthHandler
}

// Setup registers all routes. The JWT guard is installed once on the /api
// group with default-deny semantics; the public table below is the explicit
// opt-out list.
func Setup(app *fiber.App, cfg *config.Config, h *Handlers, oauthProviders []string) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	public := middleware.NewPublicRoutes(
		"GET /api/health",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/projects",
		"GET /api/skills",
		"GET /api/skill-categories",
		"GET /api/experiences",
		"GET /api/educations",
		"GET /api/blogs",
		"GET /api/blogs/slug/*",
		"GET /api/blog-tags",
		"GET /api/settings",
	)
	// The OAuth redirect/callback pair is public per configured provider;
	// /auth/me and the rest of /auth stay behind the guard.
	for _, name := range oauthProviders {
		public["GET /api/auth/"+name] = struct{}{}
		public["GET /api/auth/"+name+"/callback"] = struct{}{}
	}

	api.Use(middleware.Protect(cfg, public))

	// Health
	api.Get("/health", h.Health.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", h.Auth.Me)
	auth.Patch("/profile", h.Auth.UpdateProfile)
	auth.Post("/change-password", h.Auth.ChangePassword)
	auth.Get("/:provider", h.OAuth.Redirect)
	auth.Get("/:provider/callback", h.OAuth.Callback)

	// Projects
	api.Get("/projects", h.Project.List)
	api.Get("/projects/:id", h.Project.GetByID)
	api.Post("/projects", h.Project.Create)
	api.Patch("/projects/:id", h.Project.Update)
	api.Delete("/projects/:id", h.Project.Delete)

	// Skills
	api.Get("/skills", h.Skill.List)
	api.Post("/skills", h.Skill.Create)
	api.Patch("/skills/:id", h.Skill.Update)
	api.Delete("/skills/:id", h.Skill.Delete)

	// Skill categories
	api.Get("/skill-categories", h.Skill.ListCategories)
	api.Post("/skill-categories", h.Skill.CreateCategory)
	api.Patch("/skill-categories/:id", h.Skill.UpdateCategory)
	api.Delete("/skill-categories/:id", h.Skill.DeleteCategory)

	// Experiences
	api.Get("/experiences", h.Experience.List)
	api.Post("/experiences", h.Experience.Create)
	api.Patch("/experiences/:id", h.Experience.Update)
	api.Delete("/experiences/:id", h.Experience.Delete)

	// Educations
	api.Get("/educations", h.Education.List)
	api.Post("/educations", h.Education.Create)
	api.Patch("/educations/:id", h.Education.Update)
	api.Delete("/educations/:id", h.Education.Delete)

	// Blogs
	api.Get("/blogs", h.Blog.List)
	api.Get("/blogs/slug/:slug", h.Blog.GetBySlug)
	api.Get("/blogs/:id", h.Blog.GetByID)
	api.Post("/blogs", h.Blog.Create)
	api.Patch("/blogs/:id", h.Blog.Update)
	api.Delete("/blogs/:id", h.Blog.Delete)

	// Blog tags
	api.Get("/blog-tags", h.Blog.ListTags)
	api.Post("/blog-tags", h.Blog.CreateTag)
	api.Patch("/blog-tags/:id", h.Blog.UpdateTag)
	api.Delete("/blog-tags/:id", h.Blog.DeleteTag)

	// Settings
	api.Get("/settings", h.Settings.Get)
	api.Post("/settings", h.Settings.Create)
	api.Patch("/settings", h.Settings.Update)

	// Files
	api.Post("/files/upload", h.File.Upload)
	api.Delete("/files", h.File.Delete)
}
