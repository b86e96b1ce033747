package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractEmail 验证能从文本中提取出第一个标准邮箱地址
func TestExtractEmail(t *testing.T) {
	doc := NewDocument("Contact: jane.doe@example.com for details")
	assert.Equal(t, "jane.doe@example.com", ExtractEmail(doc), "应提取出完整邮箱地址")

	assert.Equal(t, "", ExtractEmail(NewDocument("no contact info here")), "无邮箱时应返回空串")
}

// TestExtractPhone 验证三种电话格式按顺序匹配
func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"横线分隔", "Call 415-555-0199 now", "415-555-0199"},
		{"括号区号", "Call (415) 555-0199 anytime", "(415) 555-0199"},
		{"点号分隔", "Phone: 415.555.0199", "415.555.0199"},
		{"无电话", "email only: a@b.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(NewDocument(tt.text)))
		})
	}
}

// TestExtractName 验证姓名取自前10行中首条合格的短行
func TestExtractName(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com\nExperience\n..."
	assert.Equal(t, "Jane Doe", ExtractName(NewDocument(text)))

	// 含有resume/链接字样的行要跳过
	text = "My Awesome Resume\nwww.example.com\nJohn Smith\n"
	assert.Equal(t, "John Smith", ExtractName(NewDocument(text)))

	// 超过5个词的行不算姓名
	text = "this line has way too many words to be a name\n"
	assert.Equal(t, UnknownName, ExtractName(NewDocument(text)))

	// 第10行之后的内容不参与
	text = strings.Repeat("line with many words exceeding limit here ok\n", 10) + "Jane Doe\n"
	assert.Equal(t, UnknownName, ExtractName(NewDocument(text)))
}

// TestCountSectionHeaders 验证固定章节标题的词边界计数
func TestCountSectionHeaders(t *testing.T) {
	doc := NewDocument("Summary\nExperience\nEducation\nSkills\n")
	assert.Equal(t, 4, CountSectionHeaders(doc))

	// 词边界：experienced 不应命中 experience
	doc = NewDocument("an experienced engineer")
	assert.Equal(t, 0, CountSectionHeaders(doc))

	assert.Equal(t, 0, CountSectionHeaders(NewDocument("")))
}

// TestCountActionVerbs 验证行为动词计数
func TestCountActionVerbs(t *testing.T) {
	doc := NewDocument("Managed a team, developed services, created tools")
	assert.Equal(t, 3, CountActionVerbs(doc, actionVerbs))

	// 子集只检查前7个动词
	doc = NewDocument("increased revenue, reduced cost, negotiated deals")
	assert.Equal(t, 3, CountActionVerbs(doc, actionVerbs))
	assert.Equal(t, 0, CountActionVerbs(doc, strengthVerbs))
}

// TestHasQuantifiedAchievement 验证"数字+%"量化成果检测
func TestHasQuantifiedAchievement(t *testing.T) {
	assert.True(t, HasQuantifiedAchievement(NewDocument("improved throughput by 30%")))
	assert.False(t, HasQuantifiedAchievement(NewDocument("improved throughput a lot")))
	assert.False(t, HasQuantifiedAchievement(NewDocument("100 percent")))
}

// TestExtractSkills 验证技能按词表顺序返回且展示为Title Case
func TestExtractSkills(t *testing.T) {
	doc := NewDocument("Proficient in Python, SQL and Docker. Strong leadership.")
	skills := ExtractSkills(doc)

	require.NotEmpty(t, skills)
	assert.Equal(t, []string{"Python", "Docker", "Leadership", "Sql"}, skills, "顺序应与词表一致")
}

// TestExtractExperienceSection 验证经历章节截取与100字符截断
func TestExtractExperienceSection(t *testing.T) {
	text := "Experience\nBuilt backend services at Acme.\n\nEducation\nBS in CS"
	excerpt := ExtractExperienceSection(NewDocument(text))
	assert.True(t, strings.HasPrefix(excerpt, "Experience"), "应从关键词处开始截取")
	assert.Contains(t, excerpt, "Acme")
	assert.NotContains(t, excerpt, "Education", "应在空行处停止")

	// 超长章节要截断并加省略号
	long := "Experience\n" + strings.Repeat("x", 200)
	excerpt = ExtractExperienceSection(NewDocument(long))
	assert.Len(t, excerpt, 103)
	assert.True(t, strings.HasSuffix(excerpt, "..."))

	assert.Equal(t, "", ExtractExperienceSection(NewDocument("no such section")))
}

// TestExtractEducationSection 验证教育章节关键词集合
func TestExtractEducationSection(t *testing.T) {
	text := "Education\nBS in Computer Science\n\nSkills\nGo"
	excerpt := ExtractEducationSection(NewDocument(text))
	assert.Contains(t, excerpt, "Computer Science")

	// degree 也是教育章节的定位词
	text = "Holds a degree in Mathematics"
	assert.NotEmpty(t, ExtractEducationSection(NewDocument(text)))
}

// TestNewDocumentNormalizesLineEndings 验证换行统一为\n
func TestNewDocumentNormalizesLineEndings(t *testing.T) {
	doc := NewDocument("a\r\nb\rc")
	assert.Equal(t, "a\nb\nc", doc.Text)
	assert.Equal(t, strings.ToLower(doc.Text), doc.Lower)
}
