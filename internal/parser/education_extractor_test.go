package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractEducationFields 验证单条教育经历的字段填充
func TestExtractEducationFields(t *testing.T) {
	lines := []string{
		"Bachelor of Science in Computer Science",
		"Stanford University",
		"Aug 2015 May 2019",
		"GPA: 3.85",
	}

	e := NewEducationExtractor(NewSectionSegmenter())
	entries := e.Extract(lines, "")

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Bachelor", entry.Degree)
	assert.Equal(t, "Stanford University", entry.Institution)
	assert.Equal(t, "Aug 2015", entry.StartDate)
	assert.Equal(t, "May 2019", entry.EndDate)
	assert.Equal(t, "3.85", entry.GPA)
}

// TestExtractEducationSingleDate 单个日期只填结束日期
func TestExtractEducationSingleDate(t *testing.T) {
	e := NewEducationExtractor(NewSectionSegmenter())
	entries := e.Extract([]string{"MBA graduated 2021"}, "")

	require.Len(t, entries, 1)
	assert.Equal(t, "MBA", entries[0].Degree)
	assert.Empty(t, entries[0].StartDate)
	assert.Equal(t, "2021", entries[0].EndDate)
}

// TestExtractEducationBlankLineGrouping 空行分隔多条教育经历
func TestExtractEducationBlankLineGrouping(t *testing.T) {
	lines := []string{
		"MS in Engineering Institute",
		"",
		"BS from State College",
	}

	e := NewEducationExtractor(NewSectionSegmenter())
	entries := e.Extract(lines, "")

	require.Len(t, entries, 2)
	assert.Equal(t, "MS", entries[0].Degree)
	assert.Equal(t, "MS in Engineering Institute", entries[0].Institution)
	assert.Equal(t, "BS", entries[1].Degree)
	assert.Equal(t, "BS from State College", entries[1].Institution)
}

// TestExtractEducationFallbackScan 区段缺失时回退到全文扫描
func TestExtractEducationFallbackScan(t *testing.T) {
	fullText := "John Doe\nEDUCATION\nPhD at Tech Institute\nSKILLS\nPython"

	e := NewEducationExtractor(NewSectionSegmenter())
	entries := e.Extract(nil, fullText)

	require.Len(t, entries, 1)
	assert.Equal(t, "PhD", entries[0].Degree)
	assert.Equal(t, "PhD at Tech Institute", entries[0].Institution)
}

// TestExtractEducationEmpty 无任何教育信息返回空
func TestExtractEducationEmpty(t *testing.T) {
	e := NewEducationExtractor(NewSectionSegmenter())
	entries := e.Extract(nil, "nothing relevant here")
	assert.Empty(t, entries)
}
