// Package chatbot 实现基于最近邻意图匹配的会话应答器
// 训练语料与向量化器在构建时一次准备好，之后只读，单次应答无内部状态，
// 任何内部失败都转换为固定的道歉回复而不会向调用方抛错
package chatbot

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-screening-go/internal/logger"
	"resume-screening-go/internal/types"
)

// DefaultSimilarityThreshold 相似度低于该值时不采信最近邻结果
const DefaultSimilarityThreshold = 0.3

// navigationKeyword 直接导航关键词与目标路径，顺序即匹配优先级
type navigationKeyword struct {
	Keyword     string
	Destination string
}

// 导航关键词使用切片而不是map，保证先命中的条目确定性胜出
var navigationKeywords = []navigationKeyword{
	{"homepage", "/"},
	{"home", "/"},
	{"dashboard", "/dashboard/"},
	{"upload", "/upload/"},
	{"resume upload", "/upload/"},
	{"upload resume", "/upload/"},
	{"view resumes", "/view_resumes/"},
	{"resumes", "/view_resumes/"},
	{"analyzed resumes", "/view_resumes/"},
	{"my profile", "/profile/"},
	{"profile", "/profile/"},
	{"help", "/help/"},
	{"info", "/help/"},
	{"login", "/login/"},
	{"logout", "/logout/"},
	{"register", "/register/"},
	{"signup", "/register/"},
}

// navigationPatterns 指令式导航短语，捕获组为目标页面
var navigationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`take me to (.*)`),
	regexp.MustCompile(`go to (.*)`),
	regexp.MustCompile(`navigate to (.*)`),
	regexp.MustCompile(`show me (.*)`),
	regexp.MustCompile(`open (.*)`),
	regexp.MustCompile(`access (.*)`),
	regexp.MustCompile(`how do i get to (.*)`),
	regexp.MustCompile(`i want to see (.*)`),
	regexp.MustCompile(`bring me to (.*)`),
}

var keywordWordPatterns = buildKeywordPatterns()

func buildKeywordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(navigationKeywords))
	for _, entry := range navigationKeywords {
		patterns[entry.Keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.Keyword) + `\b`)
	}
	return patterns
}

// Chatbot 意图匹配会话应答器
// 构建后只读，可被并发调用；随机源内部加锁
type Chatbot struct {
	corpus     []TrainingExample
	vectorizer *tfidfVectorizer
	threshold  float64

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option 应答器配置选项
type Option func(*Chatbot)

// WithThreshold 配置相似度阈值
func WithThreshold(threshold float64) Option {
	return func(c *Chatbot) {
		c.threshold = threshold
	}
}

// WithRandSource 注入随机源，测试可用固定种子获得确定性输出
func WithRandSource(source rand.Source) Option {
	return func(c *Chatbot) {
		c.rng = rand.New(source)
	}
}

// WithCorpus 替换内置训练语料，测试可注入小语料
func WithCorpus(corpus []TrainingExample) Option {
	return func(c *Chatbot) {
		c.corpus = corpus
	}
}

// NewChatbot 构建应答器并一次性拟合训练语料
func NewChatbot(options ...Option) *Chatbot {
	c := &Chatbot{
		corpus:    DefaultCorpus(),
		threshold: DefaultSimilarityThreshold,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(c)
	}

	phrases := make([]string, len(c.corpus))
	for i, example := range c.corpus {
		phrases[i] = example.Phrase
	}
	c.vectorizer = newTFIDFVectorizer(phrases)
	if c.vectorizer == nil {
		logger.Warn().Int("corpus_size", len(c.corpus)).Msg("会话应答器语料为空，所有请求将返回未训练提示")
	}

	return c
}

// Reply 对一条用户消息生成结构化回复
// 导航短语优先于统计匹配；低于阈值回退为兜底回复；内部异常兜底为道歉回复
func (c *Chatbot) Reply(message string) (reply types.ChatReply) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("会话应答流程异常，返回道歉回复")
			reply = types.ChatReply{Text: apologyReply}
		}
	}()

	if nav := c.checkNavigation(message); nav != nil {
		return *nav
	}

	if c.vectorizer == nil {
		return types.ChatReply{Text: untrainedReply}
	}

	processed := preprocess(message)
	query := c.vectorizer.transform(processed)
	bestIdx, similarity := c.vectorizer.bestMatch(query)

	if similarity < c.threshold {
		logger.Debug().
			Float64("similarity", similarity).
			Float64("threshold", c.threshold).
			Msg("最近邻相似度低于阈值，返回兜底回复")
		return types.ChatReply{Text: c.pick(fallbackReplies)}
	}

	return c.intentReply(c.corpus[bestIdx].Label)
}

// checkNavigation 导航短路检查
// 先做关键词整词匹配，再尝试指令式短语并核对捕获目标；未命中返回nil
func (c *Chatbot) checkNavigation(message string) *types.ChatReply {
	lowerMessage := strings.ToLower(strings.TrimSpace(message))
	if lowerMessage == "" {
		return nil
	}

	for _, entry := range navigationKeywords {
		if keywordWordPatterns[entry.Keyword].MatchString(lowerMessage) {
			return navigationReply(entry.Keyword, entry.Destination)
		}
	}

	for _, pattern := range navigationPatterns {
		groups := pattern.FindStringSubmatch(lowerMessage)
		if groups == nil {
			continue
		}
		target := strings.ToLower(strings.TrimSpace(groups[1]))
		for _, entry := range navigationKeywords {
			if target == entry.Keyword || containsWord(strings.Fields(entry.Keyword), target) {
				return navigationReply(entry.Keyword, entry.Destination)
			}
		}
	}

	return nil
}

// intentReply 按显式意图映射表生成回复
func (c *Chatbot) intentReply(label Intent) types.ChatReply {
	strategy, ok := responseTable[label]
	if !ok {
		logger.Warn().Str("intent", string(label)).Msg("意图缺少回复策略")
		return types.ChatReply{Text: unknownReply}
	}

	if strategy.Navigation {
		return types.ChatReply{
			Text:        strategy.Text,
			Navigation:  true,
			Destination: strategy.Destination,
		}
	}
	return types.ChatReply{Text: c.pick(strategy.Pool)}
}

// pick 从候选文案中随机挑选一条
func (c *Chatbot) pick(pool []string) string {
	if len(pool) == 0 {
		return unknownReply
	}
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

// preprocess 小写、去首尾空白、标点替换为空格并折叠连续空白
func preprocess(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	replacer := strings.NewReplacer(
		".", " ", ",", " ", "!", " ", "?", " ",
		"(", " ", ")", " ", ":", " ", ";", " ",
		"\n", " ", "\t", " ",
	)
	return strings.Join(strings.Fields(replacer.Replace(text)), " ")
}

func navigationReply(keyword, destination string) *types.ChatReply {
	pageName := cases.Title(language.English).String(strings.ReplaceAll(keyword, "_", " "))
	return &types.ChatReply{
		Text:        "I'll take you to the " + pageName + " page.",
		Navigation:  true,
		Destination: destination,
	}
}

func containsWord(words []string, target string) bool {
	for _, word := range words {
		if word == target {
			return true
		}
	}
	return false
}

// splitPattern 将竖线分隔的短语模式拆成独立短语
func splitPattern(pattern string) []string {
	var phrases []string
	for _, phrase := range strings.Split(pattern, "|") {
		phrase = strings.TrimSpace(phrase)
		if phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}
