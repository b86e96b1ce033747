package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screening-go/internal/types"
)

// TestPredictSuccess 服务正常返回时透传预测结果
func TestPredictSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "python developer resume", req["resume_text"])
		assert.Equal(t, "Backend Engineer", req["job_title"])

		json.NewEncoder(w).Encode(map[string]any{
			"predicted_role":   "Software Engineer",
			"confidence_score": 87.5,
			"resume_ranking":   "8/10",
			"job_match_score":  91.2,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	prediction, reason := client.Predict(context.Background(), "python developer resume", "Backend Engineer")

	assert.Equal(t, types.DegradedNone, reason)
	assert.Equal(t, "Software Engineer", prediction.PredictedRole)
	assert.Equal(t, 87.5, prediction.ConfidenceScore)
	assert.Equal(t, "8/10", prediction.ResumeRanking)
	assert.Equal(t, 91.2, prediction.JobMatchScore)
}

// TestPredictEmptyBaseURL 未配置服务地址时直接返回默认值
func TestPredictEmptyBaseURL(t *testing.T) {
	client := NewClient("")
	prediction, reason := client.Predict(context.Background(), "some resume", "")

	assert.Equal(t, types.DegradedOracle, reason)
	assert.Equal(t, DefaultPrediction(), prediction)
}

// TestPredictServerError 非2xx响应降级为默认值
func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	prediction, reason := NewClient(server.URL).Predict(context.Background(), "some resume", "")
	assert.Equal(t, types.DegradedOracle, reason)
	assert.Equal(t, DefaultPrediction(), prediction)
}

// TestPredictMalformedResponse 响应解析失败或缺字段时降级为默认值
func TestPredictMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"非法JSON", "not json at all"},
		{"缺少predicted_role", `{"confidence_score": 90}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			prediction, reason := NewClient(server.URL).Predict(context.Background(), "some resume", "")
			assert.Equal(t, types.DegradedOracle, reason)
			assert.Equal(t, DefaultPrediction(), prediction)
		})
	}
}

// TestPredictUnreachableService 服务不可达时降级为默认值
func TestPredictUnreachableService(t *testing.T) {
	// 保留地址但立即关闭，模拟连接拒绝
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	prediction, reason := NewClient(url).Predict(context.Background(), "some resume", "")
	assert.Equal(t, types.DegradedOracle, reason)
	assert.Equal(t, DefaultPrediction(), prediction)
}

// TestDefaultPredictionValues 默认值与约定保持一致
func TestDefaultPredictionValues(t *testing.T) {
	prediction := DefaultPrediction()
	assert.Equal(t, "Not available", prediction.PredictedRole)
	assert.Equal(t, 70.0, prediction.ConfidenceScore)
	assert.Equal(t, "5/10", prediction.ResumeRanking)
}
