package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownName 姓名提取失败时的占位值
const UnknownName = "Unknown"

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// 电话模式按顺序尝试：NNN-NNN-NNNN、(NNN) NNN-NNNN、国际格式
	// 括号与加号前不加词边界断言，否则这两种形式永远无法命中
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}

	quantifiedPattern = regexp.MustCompile(`\d+%`)
	blankLinePattern  = regexp.MustCompile(`\n\n`)
	nameRejectPattern = regexp.MustCompile(`@|http|www|resume|cv`)

	wordPatterns = buildWordPatterns()
)

// buildWordPatterns 为所有固定词表预编译词边界匹配
func buildWordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	add := func(words []string) {
		for _, w := range words {
			if _, ok := patterns[w]; !ok {
				patterns[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
			}
		}
	}
	add(sectionHeaders)
	add(actionVerbs)
	add(importantKeywords)
	add(skillVocabulary)
	return patterns
}

// Document 单份简历文本的不可变视图
// Lower用于所有匹配类检测，Text保留原始大小写供姓名提取使用
type Document struct {
	Text  string
	Lower string
}

// NewDocument 由提取出的原始文本构建文档视图，换行统一为\n
func NewDocument(text string) Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return Document{
		Text:  text,
		Lower: strings.ToLower(text),
	}
}

// ExtractName 在前10行原始大小写文本中找一条短行作为姓名
// 行不超过5个词，且不含邮箱/链接/resume/cv字样；找不到返回占位值
func ExtractName(doc Document) string {
	lines := strings.Split(doc.Text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 5 {
			continue
		}
		if !nameRejectPattern.MatchString(strings.ToLower(line)) {
			return line
		}
	}
	return UnknownName
}

// ExtractEmail 返回第一个邮箱地址，未找到返回空串
func ExtractEmail(doc Document) string {
	return emailPattern.FindString(doc.Text)
}

// ExtractPhone 按模式顺序返回第一个电话号码，未找到返回空串
func ExtractPhone(doc Document) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(doc.Text); match != "" {
			return match
		}
	}
	return ""
}

// CountSectionHeaders 统计固定章节标题的出现个数
func CountSectionHeaders(doc Document) int {
	count := 0
	for _, header := range sectionHeaders {
		if wordPatterns[header].MatchString(doc.Lower) {
			count++
		}
	}
	return count
}

// CountActionVerbs 统计给定动词表中出现的动词个数
func CountActionVerbs(doc Document, verbs []string) int {
	count := 0
	for _, verb := range verbs {
		if wordPatterns[verb].MatchString(doc.Lower) {
			count++
		}
	}
	return count
}

// HasQuantifiedAchievement 文本是否包含"数字+%"形式的量化成果
func HasQuantifiedAchievement(doc Document) bool {
	return quantifiedPattern.MatchString(doc.Text)
}

// HasBlankLineBreak 文本是否存在空行分段
func HasBlankLineBreak(doc Document) bool {
	return blankLinePattern.MatchString(doc.Text)
}

// ExtractSkills 按词表顺序返回命中的技能，展示用Title Case
// 词表本身已去重，结果无须再去重
func ExtractSkills(doc Document) []string {
	titleCaser := cases.Title(language.English)
	var found []string
	for _, skill := range skillVocabulary {
		if wordPatterns[skill].MatchString(doc.Lower) {
			found = append(found, titleCaser.String(skill))
		}
	}
	return found
}

// ExtractExperienceSection 截取工作经历章节摘要
func ExtractExperienceSection(doc Document) string {
	return extractSection(doc, experienceKeywords)
}

// ExtractEducationSection 截取教育背景章节摘要
func ExtractEducationSection(doc Document) string {
	return extractSection(doc, educationKeywords)
}

// extractSection 从首个命中的章节关键词截取到下一个空行或文本结尾
// 超过100字符截断并追加省略号；无命中返回空串
func extractSection(doc Document, keywords []string) string {
	for _, keyword := range keywords {
		pattern := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(keyword) + `.*?(\n\n|\z)`)
		match := pattern.FindString(doc.Text)
		if match == "" {
			continue
		}
		runes := []rune(match)
		if len(runes) > 100 {
			return string(runes[:100]) + "..."
		}
		return match
	}
	return ""
}
