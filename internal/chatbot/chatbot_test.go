package chatbot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNavigationKeywordShortCircuit 导航关键词命中时完全绕过统计匹配
func TestNavigationKeywordShortCircuit(t *testing.T) {
	// 语料置空以证明导航路径不依赖向量化器
	bot := NewChatbot(WithCorpus(nil))

	reply := bot.Reply("go to dashboard")
	assert.True(t, reply.Navigation, "导航关键词应直接短路")
	assert.Equal(t, "/dashboard/", reply.Destination)
	assert.Equal(t, "I'll take you to the Dashboard page.", reply.Text)
}

// TestNavigationKeywordDestinations 各关键词映射到正确的跳转地址
func TestNavigationKeywordDestinations(t *testing.T) {
	bot := NewChatbot()

	tests := []struct {
		message     string
		destination string
	}{
		{"please upload my file", "/upload/"},
		{"show my profile", "/profile/"},
		{"i need help", "/help/"},
		{"take me to the homepage", "/"},
		{"view resumes now", "/view_resumes/"},
		{"logout", "/logout/"},
	}
	for _, tt := range tests {
		reply := bot.Reply(tt.message)
		assert.True(t, reply.Navigation, "消息 %q 应触发导航", tt.message)
		assert.Equal(t, tt.destination, reply.Destination, "消息 %q 跳转地址错误", tt.message)
	}
}

// TestNavigationKeywordWholeWordOnly 关键词必须整词匹配
func TestNavigationKeywordWholeWordOnly(t *testing.T) {
	bot := NewChatbot()

	// "helpful"不应命中"help"
	reply := bot.Reply("that was helpful zxqw")
	assert.False(t, reply.Navigation, "子串不应触发关键词导航")
}

// TestNavigationDirectivePattern 指令式短语按捕获目标核对关键词
func TestNavigationDirectivePattern(t *testing.T) {
	bot := NewChatbot(WithCorpus(nil))

	reply := bot.Reply("take me to my profile")
	assert.True(t, reply.Navigation)
	assert.Equal(t, "/profile/", reply.Destination)

	// 捕获目标不在关键词表中时不导航
	reply = bot.Reply("take me to the moon")
	assert.False(t, reply.Navigation)
}

// TestReplyIntentMatch 已训练短语命中对应意图的文案池
func TestReplyIntentMatch(t *testing.T) {
	bot := NewChatbot()

	reply := bot.Reply("what is ats")
	assert.False(t, reply.Navigation)
	assert.Contains(t, reply.Text, "Applicant Tracking System", "应命中ATS解释意图")

	reply = bot.Reply("thank you")
	assert.Contains(t, responseTable[IntentThanks].Pool, reply.Text, "应命中致谢意图文案池")

	// 标点与大小写在预处理阶段被归一
	reply = bot.Reply("  Hello!!!  ")
	assert.Contains(t, responseTable[IntentGreeting].Pool, reply.Text)
}

// TestReplyNavigationIntent 导航类意图回复固定文案并携带跳转地址
func TestReplyNavigationIntent(t *testing.T) {
	bot := NewChatbot()

	reply := bot.Reply("submit resume")
	assert.True(t, reply.Navigation)
	assert.Equal(t, "/upload/", reply.Destination)
}

// TestReplyBelowThresholdFallback 相似度不足时从兜底文案挑选
func TestReplyBelowThresholdFallback(t *testing.T) {
	bot := NewChatbot()

	reply := bot.Reply("xqzv blorp wibble")
	assert.False(t, reply.Navigation)
	assert.Contains(t, fallbackReplies, reply.Text, "未知消息应返回兜底回复")

	// 阈值调到不可达时连精确短语也走兜底
	strict := NewChatbot(WithThreshold(2))
	reply = strict.Reply("what is ats")
	assert.Contains(t, fallbackReplies, reply.Text)
}

// TestReplyUntrainedCorpus 空语料时返回未训练提示
func TestReplyUntrainedCorpus(t *testing.T) {
	bot := NewChatbot(WithCorpus(nil))

	reply := bot.Reply("what is ats")
	assert.Equal(t, untrainedReply, reply.Text)
	assert.False(t, reply.Navigation)
}

// TestReplyDeterministicWithSeed 固定随机种子时输出可复现
func TestReplyDeterministicWithSeed(t *testing.T) {
	messages := []string{"hello", "thank you", "goodbye", "xqzv blorp"}

	first := NewChatbot(WithRandSource(rand.NewSource(42)))
	second := NewChatbot(WithRandSource(rand.NewSource(42)))
	for _, message := range messages {
		assert.Equal(t, first.Reply(message), second.Reply(message), "相同种子下 %q 的回复应一致", message)
	}
}

// TestDefaultCorpusExpansion 紧凑短语模式应展开为逐条样本
func TestDefaultCorpusExpansion(t *testing.T) {
	corpus := DefaultCorpus()
	require.NotEmpty(t, corpus)

	for _, example := range corpus {
		assert.NotEmpty(t, example.Phrase)
		assert.NotContains(t, example.Phrase, "|", "展开后不应残留分隔符")
		_, ok := responseTable[example.Label]
		assert.True(t, ok, "训练标签 %s 缺少回复策略", example.Label)
	}
}

// TestPreprocess 预处理归一化规则
func TestPreprocess(t *testing.T) {
	assert.Equal(t, "hello there", preprocess("  Hello,   THERE!  "))
	assert.Equal(t, "a b c", preprocess("a.b:c"))
	assert.Equal(t, "", preprocess("   "))
}
