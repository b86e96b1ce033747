package extractor

import (
	"context"
	"fmt"
	"html"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// UnprocessableSentinel 原始字节无法恢复时返回的标记文本
// 调用方只通过空串或该标记区分"无文本"与"不可处理"
const UnprocessableSentinel = "Document could not be processed. Please check file format."

var (
	docxTagPattern  = regexp.MustCompile(`<[^>]+>`)
	docxParaPattern = regexp.MustCompile(`</w:p>`)
)

// TextExtractor 将PDF/DOCX/TXT文档统一提取为纯文本
// 单个格式的提取失败在内部兜底为空字符串，不会向上抛出硬错误
type TextExtractor struct {
	pdfParser *pdf.PDFParser
	logger    *log.Logger

	// TXT解码尝试顺序，解码全部失败时退化为替换非法字节
	txtEncodings []encoding.Encoding

	parseTimeout time.Duration
}

// Option 提取器配置选项
type Option func(*TextExtractor)

// WithLogger 配置自定义日志记录器
func WithLogger(logger *log.Logger) Option {
	return func(e *TextExtractor) {
		e.logger = logger
	}
}

// WithParseTimeout 配置单次解析超时
func WithParseTimeout(timeout time.Duration) Option {
	return func(e *TextExtractor) {
		e.parseTimeout = timeout
	}
}

// NewTextExtractor 初始化文本提取器
// PDF解析配置为不按页面分割，直接获取整个文档的连续文本
func NewTextExtractor(ctx context.Context, options ...Option) (*TextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF parser: %w", err)
	}

	extractor := &TextExtractor{
		pdfParser: p,
		logger:    log.New(os.Stderr, "[文本提取] ", log.LstdFlags),
		txtEncodings: []encoding.Encoding{
			charmap.Windows1252,
			charmap.ISO8859_1,
		},
		parseTimeout: 30 * time.Second,
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractFromFile 按扩展名分发到具体格式的提取逻辑
// 未知扩展名按纯文本处理；任何格式的内部失败降级为空字符串
func (e *TextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".pdf":
		return e.extractFromPDF(ctx, filePath), nil
	case ".docx", ".doc":
		return e.extractFromDocx(filePath), nil
	default:
		return e.extractFromTxt(filePath), nil
	}
}

// ExtractFromBytes 从原始字节提取文本
// 字节会被写入临时文件以复用格式解码逻辑，临时文件无论成败都会删除
func (e *TextExtractor) ExtractFromBytes(ctx context.Context, data []byte, ext string) (string, error) {
	if ext == "" {
		ext = ".txt"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	tempFile, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		e.logger.Printf("创建临时文件失败: %v", err)
		return UnprocessableSentinel, nil
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		e.logger.Printf("写入临时文件失败: %v", err)
		return UnprocessableSentinel, nil
	}
	if err := tempFile.Close(); err != nil {
		e.logger.Printf("关闭临时文件失败: %v", err)
		return UnprocessableSentinel, nil
	}

	return e.ExtractFromFile(ctx, tempPath)
}

// extractFromPDF 提取PDF全文，页面顺序由解析器保证
// 扫描版等无文本PDF返回空字符串而不是错误
func (e *TextExtractor) extractFromPDF(ctx context.Context, filePath string) string {
	startTime := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		e.logger.Printf("打开PDF文件失败: %v", err)
		return ""
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(ctx, e.parseTimeout)
	defer cancel()

	docs, err := e.pdfParser.Parse(ctx, file, einoParser.WithURI(filePath))
	if err != nil {
		e.logger.Printf("PDF解析失败: %v (用时 %.2f秒)", err, time.Since(startTime).Seconds())
		return ""
	}

	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(doc.Content)
	}

	text := sb.String()
	e.logger.Printf("PDF提取完成: %d 个字符 (用时 %.2f秒)", len(text), time.Since(startTime).Seconds())
	return text
}

// extractFromDocx 按文档顺序提取DOCX段落文本，段落间以换行连接
func (e *TextExtractor) extractFromDocx(filePath string) string {
	reader, err := docx.ReadDocxFile(filePath)
	if err != nil {
		e.logger.Printf("打开DOCX文件失败: %v", err)
		return ""
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	return docxXMLToText(content)
}

// docxXMLToText 将document.xml内容还原为段落文本
func docxXMLToText(content string) string {
	paragraphs := docxParaPattern.Split(content, -1)

	var lines []string
	for _, paragraph := range paragraphs {
		text := docxTagPattern.ReplaceAllString(paragraph, "")
		text = html.UnescapeString(text)
		text = strings.TrimSpace(text)
		if text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n")
}

// extractFromTxt 按优先级尝试多种编码解码纯文本
// 全部失败时替换非法字节而不是报错
func (e *TextExtractor) extractFromTxt(filePath string) string {
	data, err := os.ReadFile(filePath)
	if err != nil {
		e.logger.Printf("读取文本文件失败: %v", err)
		return ""
	}

	return e.DecodeText(data)
}

// DecodeText 将原始字节解码为UTF-8文本
func (e *TextExtractor) DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	for _, enc := range e.txtEncodings {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded)
		}
	}

	// 兜底：无法识别的字节替换为U+FFFD
	return strings.ToValidUTF8(string(data), "�")
}
