package routes

import (
	"time"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/config"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/handlers"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	permissionsHandler *handlers.PermissionsHandler,
	forumHandler *handlers.ForumHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public reads
	api.Get("/posts", forumHandler.ListPosts)
	api.Get("/posts/:id", forumHandler.GetPost)
	api.Get("/posts/:id/comments", forumHandler.ListComments)
	api.Get("/categories", forumHandler.ListCategories)

	// Authenticated member routes
	jwt := middleware.JWTProtected(cfg)
	api.Get("/permissions", jwt, permissionsHandler.Get)
	api.Post("/posts", jwt, forumHandler.CreatePost)
	api.Put("/posts/:id", jwt, forumHandler.UpdatePost)
	api.Delete("/posts/:id", jwt, forumHandler.DeletePost)
	api.Post("/posts/:id/comments", jwt, forumHandler.CreateComment)
	api.Put("/comments/:id", jwt, forumHandler.UpdateComment)
	api.Delete("/comments/:id", jwt, forumHandler.DeleteComment)
	api.Post("/reports", jwt, moderationHandler.CreateReport)

	// Moderation panel (capability-gated; services re-check per mutation)
	mod := api.Group("/moderation", jwt, middleware.ModeratorRequired())
	mod.Get("/reports", moderationHandler.ListReports)
	mod.Get("/history", moderationHandler.History)
	mod.Get("/stats", moderationHandler.Stats)
	mod.Get("/posts/:id", moderationHandler.InspectPost)
	mod.Get("/comments/:id", moderationHandler.InspectComment)

	api.Post("/reports/:id/resolve", jwt, middleware.ModeratorRequired(), moderationHandler.ResolveReport)
	api.Post("/posts/:id/pin", jwt, middleware.ModeratorRequired(), forumHandler.PinPost)
	api.Post("/posts/:id/lock", jwt, middleware.ModeratorRequired(), forumHandler.LockPost)
	api.Post("/posts/:id/move", jwt, middleware.ModeratorRequired(), forumHandler.MovePost)
}
