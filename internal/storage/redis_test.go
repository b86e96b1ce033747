package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screening-go/internal/config"
	"resume-screening-go/internal/types"
)

// TestNewRedisCacheDisabled 未配置地址时缓存关闭且不报错
func TestNewRedisCacheDisabled(t *testing.T) {
	cache, err := NewRedisCache(context.Background(), config.RedisConfig{})
	require.NoError(t, err, "缓存关闭不应是错误")
	assert.Nil(t, cache)
}

// TestNilCacheIsNoop nil缓存的所有操作都是安全空操作
func TestNilCacheIsNoop(t *testing.T) {
	var cache *RedisCache

	result, err := cache.GetAnalysis(context.Background(), "d41d8cd98f00b204e9800998ecf8427e")
	assert.ErrorIs(t, err, ErrCacheMiss, "nil缓存应视为永远未命中")
	assert.Nil(t, result)

	err = cache.PutAnalysis(context.Background(), "d41d8cd98f00b204e9800998ecf8427e", &types.AnalysisResponse{})
	assert.NoError(t, err)

	assert.NoError(t, cache.Close())
}
