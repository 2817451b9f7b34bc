package routes

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playtube/playtube-backend/internal/config"
	"github.com/playtube/playtube-backend/internal/handlers"
	"github.com/playtube/playtube-backend/internal/middleware"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Video        *handlers.VideoHandler
	Comment      *handlers.CommentHandler
	Like         *handlers.LikeHandler
	Tweet        *handlers.TweetHandler
	Playlist     *handlers.PlaylistHandler
	Subscription *handlers.SubscriptionHandler
	Dashboard    *handlers.DashboardHandler
	Health       *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/healthcheck", h.Health.Check)

	protected := middleware.JWTProtected(cfg)
	optional := middleware.JWTOptional(cfg)

	// Auth-sensitive endpoints get a stricter limit: 10 req/min per IP
	users := api.Group("/users")
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	users.Post("/register", authLimit, h.Auth.Register)
	users.Post("/login", authLimit, h.Auth.Login)
	users.Post("/refresh-token", authLimit, h.Auth.Refresh)
	users.Post("/logout", protected, h.Auth.Logout)
	users.Post("/change-password", protected, h.Auth.ChangePassword)
	users.Delete("/account", protected, h.Auth.DeleteAccount)

	users.Get("/current-user", protected, h.User.CurrentUser)
	users.Patch("/update-account", protected, h.User.UpdateAccount)
	users.Patch("/avatar", protected, h.User.UpdateAvatar)
	users.Patch("/cover-image", protected, h.User.UpdateCoverImage)
	users.Get("/history", protected, h.User.WatchHistory)
	// Channel profile works anonymously; a token only fills in is_subscribed.
	users.Get("/c/:username", optional, h.User.ChannelProfile)

	videos := api.Group("/videos")
	videos.Get("/", h.Video.List)
	videos.Post("/", protected, h.Video.Publish)
	videos.Get("/:id", optional, h.Video.Get)
	videos.Patch("/:id", protected, h.Video.Update)
	videos.Delete("/:id", protected, h.Video.Delete)
	videos.Patch("/toggle/publish/:id", protected, h.Video.TogglePublish)

	comments := api.Group("/comments")
	comments.Get("/:videoId", h.Comment.ListForVideo)
	comments.Post("/:videoId", protected, h.Comment.Add)
	comments.Patch("/c/:id", protected, h.Comment.Update)
	comments.Delete("/c/:id", protected, h.Comment.Delete)

	likes := api.Group("/likes", protected)
	likes.Post("/toggle/v/:id", h.Like.ToggleVideoLike)
	likes.Post("/toggle/c/:id", h.Like.ToggleCommentLike)
	likes.Post("/toggle/t/:id", h.Like.ToggleTweetLike)
	likes.Get("/videos", h.Like.LikedVideos)

	tweets := api.Group("/tweets", protected)
	tweets.Post("/", h.Tweet.Create)
	tweets.Get("/user", h.Tweet.ListMine)
	tweets.Patch("/:id", h.Tweet.Update)
	tweets.Delete("/:id", h.Tweet.Delete)

	playlist := api.Group("/playlist", protected)
	playlist.Post("/", h.Playlist.Create)
	playlist.Get("/user/:userId", h.Playlist.ListForUser)
	playlist.Get("/video/:videoId", h.Playlist.ContainingVideo)
	playlist.Get("/:id", h.Playlist.Get)
	playlist.Get("/:id/videos", h.Playlist.Videos)
	playlist.Patch("/:id", h.Playlist.Update)
	playlist.Delete("/:id", h.Playlist.Delete)
	playlist.Patch("/add/:videoId/:id", h.Playlist.AddVideo)
	playlist.Patch("/remove/:videoId/:id", h.Playlist.RemoveVideo)

	subscriptions := api.Group("/subscriptions")
	subscriptions.Post("/c/:channelId", protected, h.Subscription.Toggle)
	subscriptions.Get("/c/:channelId", h.Subscription.SubscriberCount)
	subscriptions.Get("/u/:subscriberId", h.Subscription.SubscribedChannelCount)

	dashboard := api.Group("/dashboard", protected)
	dashboard.Get("/stats", h.Dashboard.Stats)
	dashboard.Get("/videos", h.Dashboard.Videos)
}
