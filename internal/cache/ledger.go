package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/MohitAryal/Database-for-social-media/internal/objects"
	"github.com/MohitAryal/Database-for-social-media/pkg/config"
	"github.com/MohitAryal/Database-for-social-media/pkg/logging"
)

// RecentPostsKey holds post ids, newest first
const RecentPostsKey = "recent_posts"

const postKeyPrefix = "post:"

// PostKey returns the key of a cached post body
func PostKey(id int64) string {
	return postKeyPrefix + strconv.FormatInt(id, 10)
}

// InteractionsKey returns the key of a user's interaction list
func InteractionsKey(userID int64) string {
	return fmt.Sprintf("user:%d:interactions", userID)
}

// Ledger keeps the recent posts list, cached post bodies and per-user
// interaction lists in Redis. Lists are capped: the newest entries win.
type Ledger struct {
	cache            *Cache
	recentLimit      int64
	interactionLimit int64
	postTTL          time.Duration
	now              func() time.Time
	logger           *zap.Logger
}

// NewLedger creates a ledger on top of c. A nil cache yields a ledger whose
// operations all return ErrCacheDisabled.
func NewLedger(c *Cache, cfg *config.RedisConfig) *Ledger {
	return &Ledger{
		cache:            c,
		recentLimit:      int64(cfg.RecentLimit),
		interactionLimit: int64(cfg.InteractionLimit),
		postTTL:          cfg.PostTTL,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           logging.WithComponent("ledger"),
	}
}

func (l *Ledger) client() (*redis.Client, error) {
	if l == nil || !l.cache.enabled() {
		return nil, ErrCacheDisabled
	}
	return l.cache.client, nil
}

// CachePost stores the post body and moves its id to the front of the
// recent posts list.
func (l *Ledger) CachePost(ctx context.Context, post *objects.Post) error {
	client, err := l.client()
	if err != nil {
		return err
	}
	body, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to encode post: %w", err)
	}
	id := strconv.FormatInt(post.ID, 10)

	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, PostKey(post.ID), body, l.postTTL)
		pipe.LRem(ctx, RecentPostsKey, 0, id)
		pipe.LPush(ctx, RecentPostsKey, id)
		pipe.LTrim(ctx, RecentPostsKey, 0, l.recentLimit-1)
		return nil
	})
	return err
}

// RefreshCachedPost overwrites the body of a post that is already cached.
// Posts that are not cached are left alone and the recent list is untouched.
func (l *Ledger) RefreshCachedPost(ctx context.Context, post *objects.Post) error {
	client, err := l.client()
	if err != nil {
		return err
	}
	body, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to encode post: %w", err)
	}
	err = client.SetXX(ctx, PostKey(post.ID), body, l.postTTL).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// GetCachedPost returns the cached body of a post, or nil when absent
func (l *Ledger) GetCachedPost(ctx context.Context, id int64) (*objects.Post, error) {
	if l == nil {
		return nil, ErrCacheDisabled
	}
	raw, err := l.cache.Get(ctx, PostKey(id))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var post objects.Post
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		return nil, fmt.Errorf("failed to decode cached post %d: %w", id, err)
	}
	return &post, nil
}

// DeleteCachedPost removes the post body and its id from the recent list
func (l *Ledger) DeleteCachedPost(ctx context.Context, id int64) error {
	client, err := l.client()
	if err != nil {
		return err
	}
	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, PostKey(id))
		pipe.LRem(ctx, RecentPostsKey, 0, strconv.FormatInt(id, 10))
		return nil
	})
	return err
}

// GetRecentCachedPosts resolves the recent list in order. Ids whose body has
// expired or was evicted are skipped.
func (l *Ledger) GetRecentCachedPosts(ctx context.Context) ([]*objects.Post, error) {
	client, err := l.client()
	if err != nil {
		return nil, err
	}
	ids, err := client.LRange(ctx, RecentPostsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	posts := make([]*objects.Post, 0, len(ids))
	if len(ids) == 0 {
		return posts, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = postKeyPrefix + id
	}
	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var post objects.Post
		if err := json.Unmarshal([]byte(raw), &post); err != nil {
			l.logger.Warn("Skipping undecodable cached post", zap.String("key", keys[i]), zap.Error(err))
			continue
		}
		posts = append(posts, &post)
	}
	return posts, nil
}

// TrackUserInteraction records an interaction at the front of the user's list
func (l *Ledger) TrackUserInteraction(ctx context.Context, userID int64, interactionType string, postID int64) error {
	client, err := l.client()
	if err != nil {
		return err
	}
	body, err := json.Marshal(objects.Interaction{
		Type:      interactionType,
		PostID:    postID,
		Timestamp: l.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode interaction: %w", err)
	}

	key := InteractionsKey(userID)
	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, body)
		pipe.LTrim(ctx, key, 0, l.interactionLimit-1)
		return nil
	})
	return err
}

// GetUserInteractions returns the user's interactions, newest first
func (l *Ledger) GetUserInteractions(ctx context.Context, userID int64) ([]objects.Interaction, error) {
	client, err := l.client()
	if err != nil {
		return nil, err
	}
	raw, err := client.LRange(ctx, InteractionsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]objects.Interaction, 0, len(raw))
	for _, entry := range raw {
		var it objects.Interaction
		if err := json.Unmarshal([]byte(entry), &it); err != nil {
			l.logger.Warn("Skipping undecodable interaction", zap.Int64("user_id", userID), zap.Error(err))
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// ClearUserInteractions drops the user's interaction list
func (l *Ledger) ClearUserInteractions(ctx context.Context, userID int64) error {
	if l == nil {
		return ErrCacheDisabled
	}
	return l.cache.Delete(ctx, InteractionsKey(userID))
}

// Health checks the underlying Redis connection
func (l *Ledger) Health(ctx context.Context) error {
	if l == nil {
		return ErrCacheDisabled
	}
	return l.cache.Health(ctx)
}
