package constants

import "time"

const (
	// AnalysisCachePrefix 分析结果缓存键前缀，后接简历文本MD5
	AnalysisCachePrefix = "analysis:text_md5:"
	// AnalysisCacheDuration 分析结果缓存时长
	AnalysisCacheDuration = 24 * time.Hour

	// DefaultPredictedRole 外部预测服务不可用时的角色默认值
	DefaultPredictedRole = "Not available"
	// DefaultConfidenceScore 外部预测服务不可用时的置信度默认值
	DefaultConfidenceScore = 70
	// DefaultResumeRanking 外部预测服务不可用时的排名默认值
	DefaultResumeRanking = "5/10"

	// DefaultRequiredSkillsScore 未提供必备技能清单时的匹配分默认值
	DefaultRequiredSkillsScore = 70.0
)
