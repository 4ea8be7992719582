package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MohitAryal/Database-for-social-media/internal/cache"
	"github.com/MohitAryal/Database-for-social-media/internal/db"
	"github.com/MohitAryal/Database-for-social-media/internal/objects"
	"github.com/MohitAryal/Database-for-social-media/pkg/config"
	"github.com/MohitAryal/Database-for-social-media/pkg/logging"
)

// Ledger is the cache side of the API: recent posts and user interactions
type Ledger interface {
	CachePost(ctx context.Context, post *objects.Post) error
	RefreshCachedPost(ctx context.Context, post *objects.Post) error
	DeleteCachedPost(ctx context.Context, id int64) error
	GetRecentCachedPosts(ctx context.Context) ([]*objects.Post, error)
	TrackUserInteraction(ctx context.Context, userID int64, interactionType string, postID int64) error
	GetUserInteractions(ctx context.Context, userID int64) ([]objects.Interaction, error)
	ClearUserInteractions(ctx context.Context, userID int64) error
	Health(ctx context.Context) error
}

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Router sets up API routes
type Router struct {
	store    *db.Store
	database HealthChecker
	ledger   Ledger
	writes   *cache.WriteThrough
	cfg      *config.ServerConfig
	logger   *zap.Logger
}

// NewRouter creates a new API router. Cache side effects of write requests
// are handed to writes and never delay or fail the response.
func NewRouter(store *db.Store, database HealthChecker, ledger Ledger, writes *cache.WriteThrough, cfg *config.ServerConfig) *Router {
	return &Router{
		store:    store,
		database: database,
		ledger:   ledger,
		writes:   writes,
		cfg:      cfg,
		logger:   logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up middleware and all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(RequestID(), AccessLog(r.logger), CORS(r.cfg.CORSOrigins))
	if r.cfg.RateLimitRPS > 0 {
		engine.Use(RateLimit(NewIPRateLimiter(r.cfg.RateLimitRPS, r.cfg.RateLimitBurst)))
	}

	engine.GET("/health", r.healthHandler)

	// Users
	engine.POST("/users/", r.handle("create_user", r.createUser))
	engine.GET("/users/:id", r.handle("get_user", r.getUser))
	engine.GET("/users/:id/posts", r.handle("list_user_posts", r.listUserPosts))
	engine.GET("/users/:id/interactions", r.handle("user_interactions", r.userInteractions))
	engine.DELETE("/user/", r.handle("delete_user", r.deleteUser))

	// Posts
	engine.POST("/posts/", r.handle("create_post", r.createPost))
	engine.GET("/posts/:id", r.handle("get_post", r.getPost))
	engine.DELETE("/post/", r.handle("delete_post", r.deletePost))
	engine.GET("/feed/recent", r.handle("recent_posts", r.recentPosts))
	engine.POST("/posts/categories/assign", r.handle("assign_categories", r.assignCategories))

	// Comments
	engine.POST("/comments/", r.handle("create_comment", r.createComment))
	engine.GET("/posts/:id/comments", r.handle("list_comments", r.listComments))
	engine.GET("/comments/:id/details", r.handle("comment_details", r.commentDetails))
	engine.DELETE("/comment/", r.handle("delete_comment", r.deleteComment))

	// Likes and saves
	engine.POST("/comments/:id/like", r.handle("like_comment", r.likeComment))
	engine.DELETE("/comments/:id/like", r.handle("unlike_comment", r.unlikeComment))
	engine.POST("/posts/:id/like", r.handle("like_post", r.likePost))
	engine.DELETE("/post/like/", r.handle("unlike_post", r.unlikePost))
	engine.POST("/posts/:id/save", r.handle("save_post", r.savePost))
	engine.DELETE("/post/save/", r.handle("unsave_post", r.unsavePost))

	// Categories
	engine.POST("/categories/", r.handle("create_category", r.createCategory))
	engine.GET("/categories/", r.handle("list_categories", r.listCategories))
}

// enqueue schedules a cache side effect
func (r *Router) enqueue(name string, fn cache.Op) {
	r.writes.Enqueue(name, fn)
}

// track records a user interaction in the background
func (r *Router) track(userID int64, interactionType string, postID int64) {
	r.enqueue("track_interaction", func(ctx context.Context) error {
		return r.ledger.TrackUserInteraction(ctx, userID, interactionType, postID)
	})
}

// cacheReadFailed logs a failed cache read. A disabled cache is not a failure.
func (r *Router) cacheReadFailed(op string, err error) {
	if err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
		r.logger.Warn("Cache read failed", zap.String("op", op), zap.Error(err))
	}
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{
		"status":   "OK",
		"service":  "social-media-api",
		"database": "ok",
		"cache":    "ok",
	}

	if err := r.database.Health(ctx); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "DEGRADED"
		body["database"] = err.Error()
	}

	switch err := r.ledger.Health(ctx); {
	case err == nil:
	case errors.Is(err, cache.ErrCacheDisabled):
		body["cache"] = "disabled"
	default:
		body["cache"] = err.Error()
	}

	c.JSON(status, body)
}
