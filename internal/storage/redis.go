package storage

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"resume-ats-go/internal/config"
	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/tracing"
)

// ErrNotFound is returned when a key is not found in Redis.
// It wraps the underlying redis.Nil error for abstraction.
var ErrNotFound = redis.Nil

// 为Redis操作定义专用tracer
var redisTracer = otel.Tracer("resume-ats-go/storage/redis")

// Redis操作前缀采样率配置
var redisKeySamplingRates = map[string]float64{
	"app:file:":  0.25, // 文件去重操作采样25%
	"app:score:": 0.1,  // 评分缓存操作采样10%
}

var (
	rnd      *rand.Rand
	rndMutex sync.Mutex
)

func init() {
	source := rand.NewSource(time.Now().UnixNano())
	rnd = rand.New(source)
}

// shouldSampleRedisOp 根据key前缀决定是否需要创建span
func shouldSampleRedisOp(key string) bool {
	if key == "" {
		return false
	}

	for prefix, rate := range redisKeySamplingRates {
		if strings.HasPrefix(key, prefix) {
			return randFloat() < rate
		}
	}

	// 默认采样率5%
	return randFloat() < 0.05
}

func randFloat() float64 {
	rndMutex.Lock()
	defer rndMutex.Unlock()
	return rnd.Float64()
}

// Redis wraps the Redis client
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter creates a new Redis client connection
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		// 连接池设置
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		// 超时设置
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		// 重试设置
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,

		// 连接生命周期
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute,
	}

	client := redis.NewClient(opt)

	// 添加OpenTelemetry钩子, 记录所有Redis操作
	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, fmt.Errorf("failed to instrument Redis with OpenTelemetry: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	return &Redis{
		Client: client,
		config: cfg,
	}, nil
}

// Close closes the Redis client connection
func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Ping checks the Redis connection
func (r *Redis) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	return r.Client.Ping(ctx).Err()
}

// GetMD5ExpireDuration 返回配置的MD5记录过期时间
func (r *Redis) GetMD5ExpireDuration() time.Duration {
	days := r.config.MD5RecordExpireDays
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}

// GetScoreCacheExpireDuration 返回配置的评分缓存过期时间
func (r *Redis) GetScoreCacheExpireDuration() time.Duration {
	minutes := r.config.ScoreCacheExpireMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// CheckAndRegisterFileMD5 检查原始文件MD5是否已存在，不存在时原子注册。
// 返回 (是否重复, 已存在提交的UUID)。重复上传直接复用旧提交。
func (r *Redis) CheckAndRegisterFileMD5(ctx context.Context, md5Hex string, submissionUUID string) (exists bool, existingUUID string, err error) {
	ctx, span := redisTracer.Start(ctx, "Redis.CheckAndRegisterFileMD5",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		semconv.DBSystemRedis,
		attribute.String("db.redis.database", fmt.Sprintf("%d", r.config.DB)),
		attribute.String("net.peer.name", r.config.Address),
		attribute.String("db.operation", "SISMEMBER_SADD"),
		attribute.String("db.redis.key", constants.KeyFileMD5Set),
		attribute.String("db.redis.member", md5Hex),
	)

	if r.Client == nil {
		err = fmt.Errorf("redis client is not initialized")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, "", err
	}

	setKey := constants.KeyFileMD5Set
	mapKey := fmt.Sprintf(constants.KeyFileMD5ToSubmissionUUID, md5Hex)

	isMember, err := r.Client.SIsMember(ctx, setKey, md5Hex).Result()
	if err != nil {
		tracing.RecordErrorWithInfo(span, err, tracing.ErrorTypeRedis,
			attribute.String("db.redis.member", md5Hex))
		return false, "", fmt.Errorf("检查MD5是否存在失败: %w", err)
	}
	if isMember {
		existingUUID, err = r.Client.Get(ctx, mapKey).Result()
		if err != nil && err != redis.Nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return true, "", fmt.Errorf("获取已存在的submission_uuid失败: %w", err)
		}
		span.SetAttributes(attribute.Bool("already_exists", true))
		span.SetStatus(codes.Ok, "")
		return true, existingUUID, nil
	}

	// MD5不存在，原子地添加集合成员与映射
	pipe := r.Client.Pipeline()
	setCmd := pipe.SAdd(ctx, setKey, md5Hex)
	setNXCmd := pipe.SetNX(ctx, mapKey, submissionUUID, r.GetMD5ExpireDuration())
	pipe.ExpireNX(ctx, setKey, r.GetMD5ExpireDuration())
	if _, err = pipe.Exec(ctx); err != nil {
		tracing.RecordErrorWithInfo(span, err, tracing.ErrorTypeRedis,
			attribute.String("db.redis.member", md5Hex))
		return false, "", fmt.Errorf("执行原子添加MD5操作失败: %w", err)
	}

	if setCmd.Val() > 0 && setNXCmd.Val() {
		span.SetAttributes(attribute.Bool("already_exists", false))
		span.SetStatus(codes.Ok, "")
		return false, "", nil
	}

	// 极小的并发窗口中另一个请求完成了注册，重新获取
	existingUUID, err = r.Client.Get(ctx, mapKey).Result()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true, "", fmt.Errorf("获取已存在的submission_uuid失败: %w", err)
	}
	span.SetAttributes(attribute.Bool("already_exists", true))
	span.SetStatus(codes.Ok, "")
	return true, existingUUID, nil
}

// RemoveFileMD5 从去重集合移除MD5并删除映射，用于上传失败后的回滚
func (r *Redis) RemoveFileMD5(ctx context.Context, md5Hex string) error {
	ctx, span := redisTracer.Start(ctx, "Redis.RemoveFileMD5",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		semconv.DBSystemRedis,
		attribute.String("db.operation", "SREM"),
		attribute.String("db.redis.key", constants.KeyFileMD5Set),
		attribute.String("db.redis.member", md5Hex),
	)

	if r.Client == nil {
		err := fmt.Errorf("redis client is not initialized")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	pipe := r.Client.Pipeline()
	pipe.SRem(ctx, constants.KeyFileMD5Set, md5Hex)
	pipe.Del(ctx, fmt.Sprintf(constants.KeyFileMD5ToSubmissionUUID, md5Hex))
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("从集合中移除MD5失败: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// CacheScoreResult 缓存评分结果JSON，key由提交UUID和JD文本MD5组成
func (r *Redis) CacheScoreResult(ctx context.Context, submissionUUID, jobTextMD5 string, resultJSON string) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf(constants.KeyScoreResult, submissionUUID, jobTextMD5)
	return r.Set(ctx, key, resultJSON, r.GetScoreCacheExpireDuration())
}

// GetCachedScoreResult 获取缓存的评分结果，未命中返回 ErrNotFound
func (r *Redis) GetCachedScoreResult(ctx context.Context, submissionUUID, jobTextMD5 string) (string, error) {
	if r.Client == nil {
		return "", fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf(constants.KeyScoreResult, submissionUUID, jobTextMD5)
	return r.Get(ctx, key)
}

// Get 获取键的值
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	if r.Client == nil {
		return "", fmt.Errorf("redis客户端未初始化")
	}

	var span trace.Span

	if shouldSampleRedisOp(key) {
		ctx, span = redisTracer.Start(ctx, "Redis.Get", trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		span.SetAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", "GET"),
			attribute.String("db.redis.key", tracing.SafeRedisKey(key)),
			// 避免与redisotel hook产生的span重复
			attribute.Bool("otel.propagate_to_child", false),
		)
	}

	val, err := r.Client.Get(ctx, key).Result()

	if span != nil {
		if err != nil {
			// key不存在不算作错误
			if err == redis.Nil {
				span.SetStatus(codes.Ok, "key not found")
				span.SetAttributes(attribute.Bool("db.redis.key_exists", false))
			} else {
				tracing.RecordError(span, err, tracing.ErrorTypeRedis)
			}
			return "", err
		}

		span.SetAttributes(
			attribute.Bool("db.redis.key_exists", true),
			attribute.Int("db.redis.value_length", len(val)),
		)
		span.SetStatus(codes.Ok, "")
	}

	return val, err
}

// Set 设置键的值
func (r *Redis) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if r.Client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}

	var span trace.Span

	if shouldSampleRedisOp(key) {
		ctx, span = redisTracer.Start(ctx, "Redis.Set", trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		span.SetAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", "SET"),
			attribute.String("db.redis.key", tracing.SafeRedisKey(key)),
			attribute.Int("db.redis.value_length", len(value)),
			attribute.Bool("otel.propagate_to_child", false),
		)

		if expiration > 0 {
			span.SetAttributes(attribute.Int64("db.redis.expiration_ms", expiration.Milliseconds()))
		}
	}

	err := r.Client.Set(ctx, key, value, expiration).Err()

	if span != nil {
		if err != nil {
			tracing.RecordError(span, err, tracing.ErrorTypeRedis)
			return err
		}
		span.SetStatus(codes.Ok, "")
	}

	return err
}
