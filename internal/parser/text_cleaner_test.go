package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCleanExtractedTextIdempotent 验证清洗操作的幂等性
func TestCleanExtractedTextIdempotent(t *testing.T) {
	samples := []string{
		"JohnDoe\nSoftware   Engineer\n\n\nSkills:\tPython, Go",
		"Devel-\noped systems serving 100users",
		"Page 1 of 2\nConfidential\nWorked at BigCorp2019",
		"already clean text with python and go",
		"",
	}

	for _, sample := range samples {
		once := CleanExtractedText(sample)
		twice := CleanExtractedText(once)
		assert.Equal(t, once, twice, "clean(clean(x)) 应等于 clean(x), 输入: %q", sample)
	}
}

// TestCleanExtractedTextWhitespace 验证空白压缩
func TestCleanExtractedTextWhitespace(t *testing.T) {
	input := "line1\n\n\n\nline2\t\tend   done"
	got := CleanExtractedText(input)

	assert.NotContains(t, got, "\n\n")
	assert.NotContains(t, got, "\t")
	assert.NotContains(t, got, "  ")
}

// TestCleanExtractedTextSpacing 验证camelCase和字母数字之间的空格修复
func TestCleanExtractedTextSpacing(t *testing.T) {
	got := CleanExtractedText("JohnDoe worked5 years3x")

	assert.Contains(t, got, "John Doe")
	assert.Contains(t, got, "worked 5")
	assert.Contains(t, got, "years 3")
}

// TestCleanExtractedTextHyphenation 验证断词合并
func TestCleanExtractedTextHyphenation(t *testing.T) {
	got := CleanExtractedText("devel-\noped scalable systems")
	assert.Contains(t, got, "developed")
}

// TestCleanExtractedTextBoilerplate 验证页眉页脚样板内容被去除
func TestCleanExtractedTextBoilerplate(t *testing.T) {
	input := "Page 3 of 5\nSenior Engineer\nCONFIDENTIAL\nbuilt things"
	got := CleanExtractedText(input)

	assert.NotContains(t, strings.ToLower(got), "page 3 of 5")
	assert.NotContains(t, strings.ToLower(got), "confidential")
	assert.Contains(t, got, "built things")
}
