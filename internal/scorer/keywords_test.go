package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPreprocessTextNormalizations 常见技术词写法被统一
func TestPreprocessTextNormalizations(t *testing.T) {
	got := PreprocessText("Amazon Web Services and PostgreSQL with TypeScript")
	assert.Equal(t, "aws and postgres with ts", got)
}

// TestPreprocessTextKeepsTechSymbols 技术符号不被清理
func TestPreprocessTextKeepsTechSymbols(t *testing.T) {
	got := PreprocessText("C++, C# (on .NET)!")
	assert.Equal(t, "c++  c#  on .net", got)
}

// TestPreprocessTextCollapsesWhitespace 多余空白被折叠
func TestPreprocessTextCollapsesWhitespace(t *testing.T) {
	got := PreprocessText("Senior   Engineer\nwith PostgreSQL")
	assert.Equal(t, "senior engineer with postgres", got)
}

// TestExtractKeywordsDropsStopwordsAndShortTokens 停用词和过短词被过滤
func TestExtractKeywordsDropsStopwordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("the a an it python is of go", 10)
	assert.Equal(t, []string{"python"}, got)
}

// TestExtractKeywordsLemmatizes 复数被还原后再计频
func TestExtractKeywordsLemmatizes(t *testing.T) {
	got := ExtractKeywords("developers developers libraries", 10)

	require.NotEmpty(t, got)
	assert.Equal(t, "developer", got[0], "出现两次的词应排第一")
	assert.Contains(t, got, "library")
	assert.NotContains(t, got, "developers")
}

// TestExtractKeywordsEmptyText 空文本返回空列表
func TestExtractKeywordsEmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", 10))
	assert.Empty(t, ExtractKeywords("the of and", 10))
}

// TestExtractKeywordsTopN 返回数量不超过topN
func TestExtractKeywordsTopN(t *testing.T) {
	text := "python java react angular docker kubernetes terraform ansible jenkins grafana"
	got := ExtractKeywords(text, 3)
	assert.Len(t, got, 3)
}

// TestExtractKeywordsIncludesBigrams 二元词组参与抽取
func TestExtractKeywordsIncludesBigrams(t *testing.T) {
	got := ExtractKeywords("machine learning machine learning", 20)
	assert.Contains(t, got, "machine learning")
}

// TestLemmatizeRules 轻量词形还原的边界
func TestLemmatizeRules(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"libraries", "library"},
		{"classes", "class"},
		{"boxes", "box"},
		{"developers", "developer"},
		{"kubernetes", "kubernete"},
		{"analysis", "analysis"},
		{"census", "census"},
		{"node.js", "node.js"},
		{"aws", "aws"},
		{"go", "go"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lemmatize(tt.in), tt.in)
	}
}
