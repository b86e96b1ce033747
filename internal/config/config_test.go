package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig 从YAML文件加载完整配置
func TestLoadConfig(t *testing.T) {
	content := `
server:
  address: ":9090"
logger:
  level: "debug"
  format: "pretty"
redis:
  address: "localhost:6379"
  db: 1
  analysis_cache_hours: 48
oracle:
  base_url: "http://oracle:5000"
  timeout_seconds: 5
chatbot:
  similarity_threshold: 0.5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err, "加载配置文件失败")

	assert.Equal(t, ":9090", config.Server.Address)
	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, "pretty", config.Logger.Format)
	assert.Equal(t, "localhost:6379", config.Redis.Address)
	assert.Equal(t, 1, config.Redis.DB)
	assert.Equal(t, 48, config.Redis.AnalysisCacheHours)
	assert.Equal(t, "http://oracle:5000", config.Oracle.BaseURL)
	assert.Equal(t, 5, config.Oracle.TimeoutSeconds)
	assert.Equal(t, 0.5, config.Chatbot.SimilarityThreshold)
}

// TestLoadConfigAppliesDefaults 配置缺项时填充默认值
func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.Server.Address)
	assert.Equal(t, "info", config.Logger.Level)
	assert.Equal(t, 3, config.Oracle.TimeoutSeconds)
	assert.Equal(t, 0.3, config.Chatbot.SimilarityThreshold)
	assert.Empty(t, config.Redis.Address, "Redis地址默认为空表示缓存关闭")
	assert.Empty(t, config.Oracle.BaseURL, "预测服务地址默认为空表示未配置")
}

// TestLoadConfigMissingFile 文件不存在时报错
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadConfigInvalidYAML 配置内容非法时报错
func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a struct"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// TestLoadConfigEnvOverride 环境变量覆盖预测服务地址
func TestLoadConfigEnvOverride(t *testing.T) {
	content := `
oracle:
  base_url: "http://from-file:5000"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("ORACLE_BASE_URL", "http://from-env:5000")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:5000", config.Oracle.BaseURL)
}

// TestDefaultConfig 默认配置与applyDefaults保持一致
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, ":8080", config.Server.Address)
	assert.Equal(t, "info", config.Logger.Level)
	assert.Equal(t, 0.3, config.Chatbot.SimilarityThreshold)
}
