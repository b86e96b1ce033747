// Package match 实现简历与岗位要求之间的两种粗粒度匹配打分
package match

import (
	"math"
	"strings"

	"resume-screening-go/internal/constants"
)

// 推荐语按匹配分三档固定给出
const (
	recommendStrong  = "Strong match for the position. Recommend immediate interview."
	recommendGood    = "Good candidate with relevant skills. Consider for interview."
	recommendLimited = "Limited match with required skills. May not be suitable for this role."
)

// WordOverlapScore 词袋重合度打分
// 双方按空白切词为大小写不敏感的词集合，返回 |交集|/|岗位词集| * 100
// 岗位词集为空时返回0；结果保留两位小数并限制在[0,100]
func WordOverlapScore(resumeText, jobText string) float64 {
	jobWords := wordSet(jobText)
	if len(jobWords) == 0 {
		return 0
	}

	resumeWords := wordSet(resumeText)
	common := 0
	for word := range jobWords {
		if resumeWords[word] {
			common++
		}
	}

	percentage := float64(common) / float64(len(jobWords)) * 100
	return round2(clamp(percentage))
}

// RequiredSkillsScore 必备技能覆盖率打分
// required为逗号分隔的技能清单；一项技能与任一已提取技能互为子串即算命中
// 注意子串判断是双向的：短技能名如"r"会命中"react"
// 未提供清单时返回默认70分
func RequiredSkillsScore(foundSkills []string, required string) float64 {
	requiredList := splitSkills(required)
	if len(requiredList) == 0 {
		return constants.DefaultRequiredSkillsScore
	}

	lowerFound := make([]string, 0, len(foundSkills))
	for _, skill := range foundSkills {
		lowerFound = append(lowerFound, strings.ToLower(skill))
	}

	matches := 0
	for _, req := range requiredList {
		for _, skill := range lowerFound {
			if strings.Contains(skill, req) || strings.Contains(req, skill) {
				matches++
				break
			}
		}
	}

	return round2(float64(matches) / float64(len(requiredList)) * 100)
}

// Recommendation 根据匹配分给出定性推荐语
func Recommendation(score float64) string {
	switch {
	case score >= 80:
		return recommendStrong
	case score >= 60:
		return recommendGood
	default:
		return recommendLimited
	}
}

// splitSkills 逗号切分技能清单，去空白并统一小写，空项剔除
func splitSkills(required string) []string {
	if strings.TrimSpace(required) == "" {
		return nil
	}
	var list []string
	for _, part := range strings.Split(required, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = true
	}
	return set
}

func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
