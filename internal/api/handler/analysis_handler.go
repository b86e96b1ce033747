package handler

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gofrs/uuid/v5"

	"resume-screening-go/internal/analyzer"
	"resume-screening-go/internal/extractor"
	"resume-screening-go/internal/logger"
	"resume-screening-go/internal/match"
	"resume-screening-go/internal/oracle"
	"resume-screening-go/internal/storage"
	"resume-screening-go/internal/types"
)

// AnalyzeParams 调用方随简历一并提供的岗位参数，均可为空
type AnalyzeParams struct {
	JobTitle       string
	JobDescription string
	RequiredSkills string // 逗号分隔的必备技能清单
}

// AnalysisHandler 简历分析处理器，负责协调提取、打分、岗位匹配与外部预测
type AnalysisHandler struct {
	textExtractor  *extractor.TextExtractor
	resumeAnalyzer *analyzer.Analyzer
	oracleClient   *oracle.Client
	cache          *storage.RedisCache // 可为nil，表示缓存关闭
}

// NewAnalysisHandler 创建简历分析处理器
func NewAnalysisHandler(
	textExtractor *extractor.TextExtractor,
	resumeAnalyzer *analyzer.Analyzer,
	oracleClient *oracle.Client,
	cache *storage.RedisCache,
) *AnalysisHandler {
	return &AnalysisHandler{
		textExtractor:  textExtractor,
		resumeAnalyzer: resumeAnalyzer,
		oracleClient:   oracleClient,
		cache:          cache,
	}
}

// HandleResumeAnalyze 对上传的简历做完整分析
// 提取、打分、预测各环节内部降级，该方法只在读取上传内容失败时返回错误
func (h *AnalysisHandler) HandleResumeAnalyze(ctx context.Context, reader io.Reader,
	filename string, params AnalyzeParams) (*types.AnalysisResponse, error) {

	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	resumeText, err := h.textExtractor.ExtractFromBytes(ctx, fileBytes, filepath.Ext(filename))
	if err != nil {
		// 提取器内部已兜底，这里只是双保险
		logger.Error().Err(err).Str("filename", filename).Msg("文本提取返回错误，按空文本处理")
		resumeText = ""
	}

	textMD5 := calculateMD5(append([]byte(resumeText), []byte(params.RequiredSkills+"|"+params.JobDescription+"|"+params.JobTitle)...))
	if cached, err := h.cache.GetAnalysis(ctx, textMD5); err == nil {
		logger.Info().Str("submission_uuid", submissionUUID).Msg("命中分析结果缓存")
		cached.SubmissionUUID = submissionUUID
		return cached, nil
	} else if !errors.Is(err, storage.ErrCacheMiss) {
		logger.Warn().Err(err).Msg("查询分析结果缓存失败，改为现算")
	}

	response := h.analyze(ctx, submissionUUID, resumeText, params)

	if err := h.cache.PutAnalysis(ctx, textMD5, response); err != nil {
		logger.Warn().Err(err).Msg("写入分析结果缓存失败")
	}

	return response, nil
}

// analyze 执行一次完整的分析并聚合为响应结构
func (h *AnalysisHandler) analyze(ctx context.Context, submissionUUID, resumeText string,
	params AnalyzeParams) *types.AnalysisResponse {

	bundle, degraded := h.resumeAnalyzer.Analyze(resumeText)
	contact := h.resumeAnalyzer.Contact(resumeText)
	skills := h.resumeAnalyzer.Skills(resumeText)
	if skills == nil {
		skills = []string{}
	}

	// 必备技能清单优先；没有清单但有岗位描述时退化为词袋重合度
	var matchScore float64
	if params.RequiredSkills == "" && params.JobDescription != "" {
		matchScore = match.WordOverlapScore(resumeText, params.JobDescription)
	} else {
		matchScore = match.RequiredSkillsScore(skills, params.RequiredSkills)
	}

	prediction, oracleDegraded := h.oracleClient.Predict(ctx, resumeText, params.JobTitle)

	if degraded == types.DegradedNone {
		degraded = oracleDegraded
	}

	response := &types.AnalysisResponse{
		SubmissionUUID:  submissionUUID,
		Contact:         contact,
		Skills:          skills,
		ScoreBundle:     bundle,
		MatchScore:      matchScore,
		Recommendation:  match.Recommendation(matchScore),
		Education:       h.resumeAnalyzer.Education(resumeText),
		PredictedRole:   prediction.PredictedRole,
		ConfidenceScore: prediction.ConfidenceScore,
		ResumeRanking:   prediction.ResumeRanking,
		DegradedReason:  degraded,
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Int("ats_score", bundle.ATSScore).
		Float64("match_score", matchScore).
		Str("degraded_reason", string(degraded)).
		Msg("简历分析完成")

	return response
}

func calculateMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
