package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Address string `yaml:"address"` // 监听地址，例如 ":8080"
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"` // json 或 pretty
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
}

// RedisConfig Redis缓存配置
// Address为空时缓存整体关闭，分析每次现算
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`
	MinIdleConns int `yaml:"min_idle_conns"`
	// 超时设置(秒)
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	// 分析结果缓存时长(小时)，0表示使用内置默认
	AnalysisCacheHours int `yaml:"analysis_cache_hours"`
}

// OracleConfig 外部角色预测服务配置
type OracleConfig struct {
	BaseURL        string `yaml:"base_url"`        // 例如 "http://localhost:5000"
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP超时(秒)
}

// ChatbotConfig 会话应答器配置
type ChatbotConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"` // 低于该相似度回退为兜底回复
}

// Config 应用程序配置
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logger  LoggerConfig  `yaml:"logger"`
	Redis   RedisConfig   `yaml:"redis"`
	Oracle  OracleConfig  `yaml:"oracle"`
	Chatbot ChatbotConfig `yaml:"chatbot"`
}

// LoadConfig 从YAML文件加载配置并填充默认值
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖外部预测服务地址（如果存在）
	if envURL := os.Getenv("ORACLE_BASE_URL"); envURL != "" {
		config.Oracle.BaseURL = envURL
	}

	applyDefaults(&config)
	return &config, nil
}

// DefaultConfig 返回一份仅含默认值的配置，主要供测试使用
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Oracle.TimeoutSeconds <= 0 {
		config.Oracle.TimeoutSeconds = 3
	}
	if config.Chatbot.SimilarityThreshold <= 0 {
		config.Chatbot.SimilarityThreshold = 0.3
	}
}
