package service

import (
	"context"
	"encoding/json"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKeyPublicList = "quizhub:public:quizzes"
	cacheKeyPublicQuiz = "quizhub:public:quiz:"
)

// QuizCache 公开接口的读缓存。实现必须容忍后端故障：读失败视为未命中，写失败只记录日志。
type QuizCache interface {
	GetList(ctx context.Context) ([]PublicQuizSummary, bool)
	SetList(ctx context.Context, list []PublicQuizSummary)
	GetQuiz(ctx context.Context, slug string) (*PublicQuiz, bool)
	SetQuiz(ctx context.Context, slug string, quiz *PublicQuiz)
	// Invalidate 删除公开列表以及给定 slug 的缓存
	Invalidate(ctx context.Context, slugs ...string)
}

// NewQuizCache rdb 为空时返回不缓存的实现
func NewQuizCache(rdb *redis.Client, ttl time.Duration) QuizCache {
	if rdb == nil {
		return NoopQuizCache{}
	}
	return &RedisQuizCache{Client: rdb, TTL: ttl}
}

type RedisQuizCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *RedisQuizCache) GetList(ctx context.Context) ([]PublicQuizSummary, bool) {
	var list []PublicQuizSummary
	if !c.get(ctx, cacheKeyPublicList, &list) {
		return nil, false
	}
	return list, true
}

func (c *RedisQuizCache) SetList(ctx context.Context, list []PublicQuizSummary) {
	c.set(ctx, cacheKeyPublicList, list)
}

func (c *RedisQuizCache) GetQuiz(ctx context.Context, slug string) (*PublicQuiz, bool) {
	var quiz PublicQuiz
	if !c.get(ctx, cacheKeyPublicQuiz+slug, &quiz) {
		return nil, false
	}
	return &quiz, true
}

func (c *RedisQuizCache) SetQuiz(ctx context.Context, slug string, quiz *PublicQuiz) {
	c.set(ctx, cacheKeyPublicQuiz+slug, quiz)
}

func (c *RedisQuizCache) Invalidate(ctx context.Context, slugs ...string) {
	keys := []string{cacheKeyPublicList}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, cacheKeyPublicQuiz+slug)
		}
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("quiz cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *RedisQuizCache) get(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("quiz cache read failed", zap.String("key", key), zap.Error(err))
		}
		monitoring.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logger.Log.Warn("quiz cache decode failed", zap.String("key", key), zap.Error(err))
		monitoring.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	monitoring.CacheLookups.WithLabelValues("hit").Inc()
	return true
}

func (c *RedisQuizCache) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Warn("quiz cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		logger.Log.Warn("quiz cache write failed", zap.String("key", key), zap.Error(err))
	}
}

type NoopQuizCache struct{}

func (NoopQuizCache) GetList(context.Context) ([]PublicQuizSummary, bool) { return nil, false }
func (NoopQuizCache) SetList(context.Context, []PublicQuizSummary)        {}
func (NoopQuizCache) GetQuiz(context.Context, string) (*PublicQuiz, bool) { return nil, false }
func (NoopQuizCache) SetQuiz(context.Context, string, *PublicQuiz)        {}
func (NoopQuizCache) Invalidate(context.Context, ...string)               {}
