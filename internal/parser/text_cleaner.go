package parser

import (
	"regexp"
	"strings"
)

// 文本清洗用的预编译正则
var (
	reMultiNewline = regexp.MustCompile(`\n+`)
	reMultiTab     = regexp.MustCompile(`\t+`)
	reMultiSpace   = regexp.MustCompile(` +`)

	// 修复常见的OCR/提取问题
	reHyphenBreak = regexp.MustCompile(`-\s*\n\s*`)      // 行尾连字符断词
	reCamelCase   = regexp.MustCompile(`([a-z])([A-Z])`) // camelCase之间补空格
	reLetterDigit = regexp.MustCompile(`([a-zA-Z])(\d)`) // 字母后接数字补空格
	reDigitLetter = regexp.MustCompile(`(\d)([a-zA-Z])`) // 数字后接字母补空格

	// 页眉页脚等常见样板内容
	headerFooterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Page \d+ of \d+`),
		regexp.MustCompile(`(?i)\d+/\d+`),
		regexp.MustCompile(`(?i)Resume of .+`),
		regexp.MustCompile(`(?i).+\s+Resume`),
		regexp.MustCompile(`(?i)Confidential`),
		regexp.MustCompile(`(?i)DRAFT`),
	}
)

// CleanExtractedText 清洗提取出的原始文本
// 操作是幂等的：对已清洗文本再次调用不产生变化
// 处理顺序有讲究：样板内容先去掉再压缩空白，断词先合并再做大小写切分，
// 否则前一步的输出会成为后一步的新输入，破坏幂等性
func CleanExtractedText(text string) string {
	for _, pattern := range headerFooterPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	// 压缩空白并规范换行
	text = reMultiNewline.ReplaceAllString(text, "\n")
	text = reMultiTab.ReplaceAllString(text, " ")
	text = reMultiSpace.ReplaceAllString(text, " ")

	// 去掉换行处的断词连字符
	text = reHyphenBreak.ReplaceAllString(text, "")

	text = reCamelCase.ReplaceAllString(text, "$1 $2")
	text = reLetterDigit.ReplaceAllString(text, "$1 $2")
	text = reDigitLetter.ReplaceAllString(text, "$1 $2")

	return strings.TrimSpace(text)
}
