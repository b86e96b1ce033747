package types

// DegradedReason 标识一次分析为何降级为保底结果
// 空字符串表示本次分析是干净成功的
type DegradedReason string

const (
	// DegradedNone 干净成功
	DegradedNone DegradedReason = ""
	// DegradedEmptyText 提取不到任何文本（例如扫描版PDF）
	DegradedEmptyText DegradedReason = "EMPTY_TEXT"
	// DegradedExtraction 文本提取阶段失败
	DegradedExtraction DegradedReason = "EXTRACTION_FAILED"
	// DegradedAnalysisPanic 分析流程内部异常，已被兜底捕获
	DegradedAnalysisPanic DegradedReason = "ANALYSIS_PANIC"
	// DegradedOracle 外部预测服务不可用，使用固定默认值
	DegradedOracle DegradedReason = "ORACLE_UNAVAILABLE"
)

// Degraded 返回该原因是否代表降级结果
func (r DegradedReason) Degraded() bool {
	return r != DegradedNone
}

// KeywordMatch 重要关键词及其是否出现在简历中
type KeywordMatch struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
}

// ScoreBundle 单次简历分析的完整打分结果
// 四个分数均为[0,100]的整数，列表字段永不为nil
type ScoreBundle struct {
	ATSScore      int            `json:"ats_score"`
	FormatScore   int            `json:"format_score"`
	ContentScore  int            `json:"content_score"`
	KeywordsScore int            `json:"keywords_score"`
	Strengths     []string       `json:"strengths"`
	Improvements  []string       `json:"improvements"`
	Keywords      []KeywordMatch `json:"keywords"`
	Experience    []string       `json:"experience"`
}

// ContactInfo 从简历中提取的基本联系信息
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OraclePrediction 外部预测服务返回的角色预测结果
type OraclePrediction struct {
	PredictedRole   string  `json:"predicted_role"`
	ConfidenceScore float64 `json:"confidence_score"`
	ResumeRanking   string  `json:"resume_ranking"`
	JobMatchScore   float64 `json:"job_match_score,omitempty"`
}

// AnalysisResponse 分析处理器返回给外部调用方的聚合结果
type AnalysisResponse struct {
	SubmissionUUID string `json:"submission_uuid"`

	Contact ContactInfo `json:"contact"`
	Skills  []string    `json:"skills"`

	ScoreBundle

	MatchScore     float64 `json:"match_score"`
	Recommendation string  `json:"recommendation"`
	Education      string  `json:"education,omitempty"`

	PredictedRole   string  `json:"predicted_role"`
	ConfidenceScore float64 `json:"confidence_score"`
	ResumeRanking   string  `json:"resume_ranking"`

	DegradedReason DegradedReason `json:"degraded_reason,omitempty"`
}

// ChatReply 会话应答器的结构化回复
// Navigation为true时Destination是站内跳转路径
type ChatReply struct {
	Text        string `json:"text"`
	Navigation  bool   `json:"navigation"`
	Destination string `json:"destination,omitempty"`
}
