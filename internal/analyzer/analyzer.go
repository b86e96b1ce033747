// Package analyzer 实现简历文本的特征检测与启发式打分
// 所有检测器都是同一不可变文档视图上的纯函数，打分流程永远返回一个
// 结构完整的结果，内部异常兜底为保底分数而不是向调用方抛错
package analyzer

import (
	"resume-screening-go/internal/logger"
	"resume-screening-go/internal/types"
)

// Analyzer 简历分析器
// 无内部可变状态，可被并发调用
type Analyzer struct{}

// NewAnalyzer 创建简历分析器
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze 对提取后的简历文本做完整分析
// 文本为空或流程内部异常时返回保底结果，并通过DegradedReason标注原因
func (a *Analyzer) Analyze(text string) (bundle types.ScoreBundle, reason types.DegradedReason) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("简历分析流程异常，返回保底结果")
			bundle = DefaultBundle()
			reason = types.DegradedAnalysisPanic
		}
	}()

	doc := NewDocument(text)
	if doc.Lower == "" {
		return DefaultBundle(), types.DegradedEmptyText
	}

	skills := ExtractSkills(doc)
	skillCount := len(skills)

	bundle = types.ScoreBundle{
		ATSScore:      CalculateATSScore(doc),
		FormatScore:   CalculateFormatScore(doc),
		ContentScore:  CalculateContentScore(doc),
		KeywordsScore: CalculateKeywordsScore(skillCount),
		Strengths:     IdentifyStrengths(doc, skillCount),
		Improvements:  IdentifyImprovements(doc, skillCount),
		Keywords:      ImportantKeywords(doc),
		Experience:    experienceList(doc),
	}
	return bundle, types.DegradedNone
}

// Contact 提取姓名、邮箱、电话三项基本信息
func (a *Analyzer) Contact(text string) types.ContactInfo {
	doc := NewDocument(text)
	return types.ContactInfo{
		Name:  ExtractName(doc),
		Email: ExtractEmail(doc),
		Phone: ExtractPhone(doc),
	}
}

// Skills 返回命中的技能词表条目
func (a *Analyzer) Skills(text string) []string {
	return ExtractSkills(NewDocument(text))
}

// Education 返回教育背景章节摘要
func (a *Analyzer) Education(text string) string {
	return ExtractEducationSection(NewDocument(text))
}

// experienceList 经历摘要为空时列表为空，否则只含一条摘要
func experienceList(doc Document) []string {
	if excerpt := ExtractExperienceSection(doc); excerpt != "" {
		return []string{excerpt}
	}
	return []string{}
}

// DefaultBundle 保底打分结果
// 分析链路任何环节失败都以此代替，保证调用方总能拿到完整结构
func DefaultBundle() types.ScoreBundle {
	return types.ScoreBundle{
		ATSScore:      70,
		FormatScore:   70,
		ContentScore:  65,
		KeywordsScore: 60,
		Strengths:     []string{"Resume has a clear structure"},
		Improvements:  []string{"Consider adding more specific details"},
		Keywords:      []types.KeywordMatch{{Name: "Basic Skills", Found: true}},
		Experience:    []string{},
	}
}
