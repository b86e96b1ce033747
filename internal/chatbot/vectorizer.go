package chatbot

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern 只保留长度≥2的词，与训练语料的切词方式保持一致
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// tfidfVectorizer 基于训练语料词表的词频-逆文档频率向量化器
// 构建完成后只读，可被并发transform
type tfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	docVectors [][]float64 // 每条训练文档的L2归一化向量
}

// newTFIDFVectorizer 在训练文档上拟合词表与IDF并预计算文档向量
// 语料为空或切不出任何词时返回nil
func newTFIDFVectorizer(docs []string) *tfidfVectorizer {
	if len(docs) == 0 {
		return nil
	}

	vocabulary := make(map[string]int)
	docTokens := make([][]string, len(docs))
	for i, doc := range docs {
		tokens := tokenize(doc)
		docTokens[i] = tokens
		for _, token := range tokens {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
		}
	}
	if len(vocabulary) == 0 {
		return nil
	}

	// 平滑IDF: ln((1+n)/(1+df)) + 1
	df := make([]int, len(vocabulary))
	for _, tokens := range docTokens {
		seen := make(map[int]bool)
		for _, token := range tokens {
			idx := vocabulary[token]
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}
	n := float64(len(docs))
	idf := make([]float64, len(vocabulary))
	for i, count := range df {
		idf[i] = math.Log((1+n)/(1+float64(count))) + 1
	}

	v := &tfidfVectorizer{
		vocabulary: vocabulary,
		idf:        idf,
	}
	v.docVectors = make([][]float64, len(docs))
	for i, tokens := range docTokens {
		v.docVectors[i] = v.vectorize(tokens)
	}
	return v
}

// transform 将一条消息映射到训练语料的特征空间
func (v *tfidfVectorizer) transform(text string) []float64 {
	return v.vectorize(tokenize(text))
}

// vectorize 词频乘IDF后做L2归一化；全零向量原样返回
func (v *tfidfVectorizer) vectorize(tokens []string) []float64 {
	vector := make([]float64, len(v.vocabulary))
	for _, token := range tokens {
		if idx, ok := v.vocabulary[token]; ok {
			vector[idx]++
		}
	}

	var norm float64
	for i := range vector {
		vector[i] *= v.idf[i]
		norm += vector[i] * vector[i]
	}
	if norm == 0 {
		return vector
	}
	norm = math.Sqrt(norm)
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}

// bestMatch 返回与查询向量余弦相似度最高的训练文档下标及相似度
// 相似度并列时取语料构建顺序中靠前的一条
func (v *tfidfVectorizer) bestMatch(query []float64) (int, float64) {
	bestIdx, bestScore := 0, -1.0
	for i, doc := range v.docVectors {
		score := dot(query, doc)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}

// dot 向量均已归一化，点积即余弦相似度
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
