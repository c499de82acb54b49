// http собирает HTTP-слой social-сервиса: chi-роутер, мидлвары и регистрацию маршрутов.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-social-feed/internal/config"
	"github.com/pribylovaa/go-social-feed/internal/http/handlers"
	"github.com/pribylovaa/go-social-feed/internal/http/middleware"
	"github.com/pribylovaa/go-social-feed/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Auth     config.AuthConfig
	Limits   config.LimitsConfig
	BasePath string // по умолчанию "/api".
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Metrics(),
		middleware.Timeout(opts.Timeout),
		middleware.Authenticate(opts.Auth),
	)

	h := handlers.New(svc, opts.Limits)

	base := opts.BasePath
	if base == "" {
		base = "/api"
	}

	root.Route(base, func(r chi.Router) {
		registerPublicRoutes(r, h)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser())
			registerUserRoutes(r, h)
		})
	})

	return root
}

// registerPublicRoutes — маршруты, доступные без токена.
func registerPublicRoutes(r chi.Router, h *handlers.Handlers) {
	r.Get("/posts/{id}", h.GetPost)
	r.Get("/posts/user/{user_id}", h.ListUserPosts)

	r.Get("/comments/{id}", h.GetComment)
	r.Get("/comments/post/{post_id}", h.ListPostComments)
	r.Get("/comments/{id}/replies", h.ListReplies)

	r.Get("/likes/post/{post_id}", h.ListPostLikes)
	r.Get("/likes/user/{user_id}", h.ListUserLikes)

	r.Get("/users/profile/{user_id}", h.GetProfile)
	r.Get("/users/{user_id}/following", h.UserFollowing)
	r.Get("/users/{user_id}/followers", h.UserFollowers)
}

// registerUserRoutes — маршруты, требующие аутентифицированного пользователя.
func registerUserRoutes(r chi.Router, h *handlers.Handlers) {
	r.Post("/posts", h.CreatePost)
	r.Get("/posts/feed", h.Feed)
	r.Put("/posts/{id}", h.UpdatePost)
	r.Delete("/posts/{id}", h.DeletePost)

	r.Post("/comments", h.CreateComment)
	r.Put("/comments/{id}", h.UpdateComment)
	r.Delete("/comments/{id}", h.DeleteComment)

	r.Post("/likes", h.LikePost)
	r.Delete("/likes/{post_id}", h.UnlikePost)
	r.Get("/likes/status/{post_id}", h.LikeStatus)

	r.Post("/users/follow", h.Follow)
	r.Delete("/users/unfollow/{user_id}", h.Unfollow)
	r.Get("/users/following", h.MyFollowing)
	r.Get("/users/followers", h.MyFollowers)
	r.Get("/users/stats", h.MyStats)
	r.Put("/users/profile", h.UpdateProfile)
	r.Post("/users/profile/avatar", h.ConfirmAvatar)

	r.Post("/media/upload-url", h.MediaUploadURL)
}
