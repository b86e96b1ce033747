package analyzer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-screening-go/internal/types"
)

// CalculateATSScore ATS兼容性打分：基础70分
// 章节标题≥4 +15（≥2 +10），空行分段+5，邮箱电话齐全+10，封顶100
func CalculateATSScore(doc Document) int {
	score := 70

	found := CountSectionHeaders(doc)
	if found >= 4 {
		score += 15
	} else if found >= 2 {
		score += 10
	}

	if HasBlankLineBreak(doc) {
		score += 5
	}

	if ExtractEmail(doc) != "" && ExtractPhone(doc) != "" {
		score += 10
	}

	return clampScore(score)
}

// CalculateFormatScore 版式打分：基础75分，规则同ATS但不看联系方式
func CalculateFormatScore(doc Document) int {
	score := 75

	found := CountSectionHeaders(doc)
	if found >= 4 {
		score += 15
	} else if found >= 2 {
		score += 10
	}

	if HasBlankLineBreak(doc) {
		score += 5
	}

	return clampScore(score)
}

// CalculateContentScore 内容质量打分：基础70分
// 行为动词≥5 +15（≥3 +10），量化成果+10，封顶100
func CalculateContentScore(doc Document) int {
	score := 70

	found := CountActionVerbs(doc, actionVerbs)
	if found >= 5 {
		score += 15
	} else if found >= 3 {
		score += 10
	}

	if HasQuantifiedAchievement(doc) {
		score += 10
	}

	return clampScore(score)
}

// CalculateKeywordsScore 关键词打分按命中技能数分档
func CalculateKeywordsScore(skillCount int) int {
	switch {
	case skillCount > 15:
		return 90
	case skillCount > 10:
		return 80
	case skillCount > 5:
		return 70
	case skillCount > 3:
		return 60
	default:
		return 50
	}
}

// IdentifyStrengths 按固定顺序收集优势项
// 没有任何命中时回退为单条默认说明
func IdentifyStrengths(doc Document, skillCount int) []string {
	var strengths []string

	if skillCount > 5 {
		strengths = append(strengths, "Good variety of skills listed")
	}
	if HasQuantifiedAchievement(doc) {
		strengths = append(strengths, "Includes quantifiable achievements")
	}
	if CountActionVerbs(doc, strengthVerbs) >= 3 {
		strengths = append(strengths, "Good use of action verbs")
	}
	if ExtractEmail(doc) != "" && ExtractPhone(doc) != "" {
		strengths = append(strengths, "Complete contact information")
	}

	if len(strengths) == 0 {
		strengths = []string{"Resume has a clear structure"}
	}
	return strengths
}

// IdentifyImprovements 按固定顺序收集改进建议
func IdentifyImprovements(doc Document, skillCount int) []string {
	var improvements []string

	if ExtractEmail(doc) == "" {
		improvements = append(improvements, "Add email address")
	}
	if ExtractPhone(doc) == "" {
		improvements = append(improvements, "Add phone number")
	}
	if ExtractEducationSection(doc) == "" {
		improvements = append(improvements, "Add education details")
	}
	if ExtractExperienceSection(doc) == "" {
		improvements = append(improvements, "Add work experience details")
	}
	if skillCount < 5 {
		improvements = append(improvements, "Add more skills to your resume")
	}

	if len(improvements) == 0 {
		improvements = []string{"Consider adding more specific details"}
	}
	return improvements
}

// ImportantKeywords 固定7项关键词的命中情况，顺序与条目数恒定
func ImportantKeywords(doc Document) []types.KeywordMatch {
	titleCaser := cases.Title(language.English)
	results := make([]types.KeywordMatch, 0, len(importantKeywords))
	for _, keyword := range importantKeywords {
		results = append(results, types.KeywordMatch{
			Name:  titleCaser.String(keyword),
			Found: wordPatterns[keyword].MatchString(doc.Lower),
		})
	}
	return results
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
