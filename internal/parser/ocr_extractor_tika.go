package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-ats-go/internal/logger"
)

// TikaOCRExtractor 基于Apache Tika的OCR提取器，作为图像型PDF的回退路径
// 强制Tika走 ocr_only 策略：每页先按配置的DPI栅格化，再送入OCR引擎
type TikaOCRExtractor struct {
	// Tika服务器地址，例如 http://localhost:9998
	ServerURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
	// 栅格化DPI
	dpi int
	// OCR语言
	language string
	// 日志记录
	logger zerolog.Logger
}

// TikaOption 定义配置选项函数
type TikaOption func(*TikaOCRExtractor)

// WithOCRDPI 配置栅格化DPI
func WithOCRDPI(dpi int) TikaOption {
	return func(e *TikaOCRExtractor) {
		e.dpi = dpi
	}
}

// WithOCRLanguage 配置OCR识别语言
func WithOCRLanguage(lang string) TikaOption {
	return func(e *TikaOCRExtractor) {
		e.language = lang
	}
}

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(l zerolog.Logger) TikaOption {
	return func(e *TikaOCRExtractor) {
		e.logger = l
	}
}

// WithTimeout 配置HTTP客户端超时时间
func WithTimeout(timeout time.Duration) TikaOption {
	return func(e *TikaOCRExtractor) {
		e.Client.Timeout = timeout
	}
}

// NewTikaOCRExtractor 创建一个新的Tika OCR提取器
func NewTikaOCRExtractor(serverURL string, options ...TikaOption) *TikaOCRExtractor {
	client := &http.Client{
		Timeout: 60 * time.Second, // OCR较慢，默认60秒超时
	}

	extractor := &TikaOCRExtractor{
		ServerURL: serverURL,
		Client:    client,
		dpi:       300,
		language:  "eng",
		logger:    logger.Logger.With().Str("component", "tika_ocr").Logger(),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor
}

// ExtractTextFromBytes 对PDF字节流执行OCR提取
// Tika纯文本输出以换页符分隔各页，这里拆页后用页标记重新拼接
func (e *TikaOCRExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error) {
	startTime := time.Now()

	baseMetadata := map[string]interface{}{
		"extraction_time":  time.Now().Format(time.RFC3339),
		"source_file_path": uri,
		"ocr_dpi":          e.dpi,
		"ocr_language":     e.language,
	}

	url := fmt.Sprintf("%s/tika", e.ServerURL)

	req, err := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(data))
	if err != nil {
		return "", baseMetadata, fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("X-Tika-PDFOcrStrategy", "ocr_only")
	req.Header.Set("X-Tika-PDFOcrDPI", strconv.Itoa(e.dpi))
	req.Header.Set("X-Tika-OCRLanguage", e.language)
	if uri != "" {
		req.Header.Set("X-Tika-Resource-Name", uri)
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", baseMetadata, fmt.Errorf("发送请求到Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", baseMetadata, fmt.Errorf("tika服务器返回错误状态码: %d", resp.StatusCode)
	}

	textBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", baseMetadata, fmt.Errorf("读取Tika响应失败: %w", err)
	}

	text := joinPagesWithMarkers(string(textBytes))

	duration := time.Since(startTime)
	baseMetadata["text_length"] = len(text)
	baseMetadata["processing_duration_ms"] = duration.Milliseconds()

	e.logger.Debug().Str("uri", uri).Int("chars", len(text)).Dur("duration", duration).Msg("OCR提取完成")
	return text, baseMetadata, nil
}

// ExtractTextFromReader 从io.Reader执行OCR提取
func (e *TikaOCRExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取PDF内容失败: %w", err)
	}
	return e.ExtractTextFromBytes(ctx, data, uri)
}

// joinPagesWithMarkers 按换页符拆页并插入页标记
// 单页文档不插入标记，原样返回
func joinPagesWithMarkers(text string) string {
	pages := strings.Split(text, "\f")
	if len(pages) <= 1 {
		return text
	}

	var sb strings.Builder
	pageNum := 0
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		pageNum++
		fmt.Fprintf(&sb, "\n--- Page %d ---\n%s\n", pageNum, page)
	}
	if pageNum == 0 {
		return ""
	}
	return sb.String()
}
