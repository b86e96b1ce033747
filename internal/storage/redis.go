// Package storage 提供分析结果的Redis缓存适配
// 缓存以简历文本MD5为键，Redis未配置或出错时降级为现算，不影响主流程
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-screening-go/internal/config"
	"resume-screening-go/internal/constants"
	"resume-screening-go/internal/logger"
	"resume-screening-go/internal/types"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = redis.Nil

// RedisCache 分析结果缓存
// 实例为nil时所有方法都是安全的空操作
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache 按配置创建缓存适配器
// 未配置地址时返回nil（缓存关闭），调用方无须区分
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		logger.Info().Msg("未配置Redis地址，分析结果缓存关闭")
		return nil, nil
	}

	options := &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}
	if cfg.DialTimeoutSeconds > 0 {
		options.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		options.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		options.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	ttl := constants.AnalysisCacheDuration
	if cfg.AnalysisCacheHours > 0 {
		ttl = time.Duration(cfg.AnalysisCacheHours) * time.Hour
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// GetAnalysis 按简历文本MD5读取缓存的分析结果
// 未命中返回ErrCacheMiss；nil接收者视为永远未命中
func (c *RedisCache) GetAnalysis(ctx context.Context, textMD5 string) (*types.AnalysisResponse, error) {
	if c == nil {
		return nil, ErrCacheMiss
	}

	data, err := c.client.Get(ctx, constants.AnalysisCachePrefix+textMD5).Bytes()
	if err != nil {
		return nil, err
	}

	var response types.AnalysisResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("反序列化缓存的分析结果失败: %w", err)
	}
	return &response, nil
}

// PutAnalysis 缓存一次分析结果
func (c *RedisCache) PutAnalysis(ctx context.Context, textMD5 string, response *types.AnalysisResponse) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("序列化分析结果失败: %w", err)
	}
	return c.client.Set(ctx, constants.AnalysisCachePrefix+textMD5, data, c.ttl).Err()
}

// Close 关闭底层连接池
func (c *RedisCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
