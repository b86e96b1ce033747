// Package oracle 封装对外部角色预测服务的尽力而为调用
// 任何失败（不可达、超时、非2xx、响应格式错误）都替换为固定默认值，
// 绝不让预测服务的故障影响整体分析流程
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-screening-go/internal/constants"
	"resume-screening-go/internal/logger"
	"resume-screening-go/internal/types"
)

// analyzeRequest /analyze 接口请求体
type analyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JobTitle   string `json:"job_title,omitempty"`
}

// Client 角色预测服务客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// ClientOption 客户端配置选项
type ClientOption func(*Client)

// WithTimeout 配置HTTP超时
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithHTTPClient 注入自定义HTTP客户端，测试用
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient 创建预测服务客户端
// baseURL为空表示服务未配置，所有调用直接返回默认值
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 3 * time.Second,
		},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// DefaultPrediction 预测服务不可用时的固定默认值
func DefaultPrediction() types.OraclePrediction {
	return types.OraclePrediction{
		PredictedRole:   constants.DefaultPredictedRole,
		ConfidenceScore: constants.DefaultConfidenceScore,
		ResumeRanking:   constants.DefaultResumeRanking,
	}
}

// Predict 请求外部服务对简历文本做角色预测
// 返回的DegradedReason标注本次结果是否来自默认值兜底；不返回error
func (c *Client) Predict(ctx context.Context, resumeText, jobTitle string) (types.OraclePrediction, types.DegradedReason) {
	if c.baseURL == "" {
		return DefaultPrediction(), types.DegradedOracle
	}

	prediction, err := c.call(ctx, resumeText, jobTitle)
	if err != nil {
		logger.Warn().Err(err).Msg("外部预测服务调用失败，使用默认值")
		return DefaultPrediction(), types.DegradedOracle
	}
	return prediction, types.DegradedNone
}

func (c *Client) call(ctx context.Context, resumeText, jobTitle string) (types.OraclePrediction, error) {
	var prediction types.OraclePrediction

	body, err := json.Marshal(analyzeRequest{
		ResumeText: resumeText,
		JobTitle:   jobTitle,
	})
	if err != nil {
		return prediction, fmt.Errorf("序列化预测请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return prediction, fmt.Errorf("构建预测请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return prediction, fmt.Errorf("请求预测服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return prediction, fmt.Errorf("预测服务返回非预期状态码: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return prediction, fmt.Errorf("读取预测响应失败: %w", err)
	}
	if err := json.Unmarshal(data, &prediction); err != nil {
		return prediction, fmt.Errorf("解析预测响应失败: %w", err)
	}

	if prediction.PredictedRole == "" {
		return prediction, fmt.Errorf("预测响应缺少predicted_role字段")
	}
	return prediction, nil
}
