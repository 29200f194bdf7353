package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractExperienceEntry 验证单条工作经历的字段填充顺序
func TestExtractExperienceEntry(t *testing.T) {
	lines := []string{
		"Senior Software Engineer",
		"Acme Corporation",
		"Jan 2020 Present",
		"• Led migration to microservices",
		"• Reduced latency significantly",
	}

	e := NewExperienceExtractor(NewSectionSegmenter())
	entries := e.Extract(lines, "")

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Senior Software Engineer", entry.Title)
	assert.Equal(t, "Acme Corporation", entry.Company)
	assert.Equal(t, "Jan 2020", entry.StartDate)
	assert.Equal(t, "Present", entry.EndDate)
	assert.Equal(t, []string{"Led migration to microservices", "Reduced latency significantly"}, entry.Details)
}

// TestExtractExperienceNumericLinesSkipTitleCompany 含数字的行不参与title/company填充
func TestExtractExperienceNumericLinesSkipTitleCompany(t *testing.T) {
	lines := []string{
		"2019 2021",
		"Backend Developer",
		"Widget Works",
	}

	e := NewExperienceExtractor(NewSectionSegmenter())
	entries := e.Extract(lines, "")

	require.Len(t, entries, 1)
	assert.Equal(t, "Backend Developer", entries[0].Title)
	assert.Equal(t, "Widget Works", entries[0].Company)
	assert.Equal(t, "2019", entries[0].StartDate)
	assert.Equal(t, "2021", entries[0].EndDate)
}

// TestExtractExperienceBulletVariants 各种列表前缀都剥离进details
func TestExtractExperienceBulletVariants(t *testing.T) {
	lines := []string{
		"Engineer",
		"• first",
		"- second",
		"* third",
		"◦ fourth",
	}

	e := NewExperienceExtractor(NewSectionSegmenter())
	entries := e.Extract(lines, "")

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, entries[0].Details)
}

// TestExtractExperienceBlankLineGrouping 空行分隔多条经历
func TestExtractExperienceBlankLineGrouping(t *testing.T) {
	lines := []string{
		"Engineer",
		"First Company",
		"",
		"Analyst",
		"Second Company",
	}

	e := NewExperienceExtractor(NewSectionSegmenter())
	entries := e.Extract(lines, "")

	require.Len(t, entries, 2)
	assert.Equal(t, "Engineer", entries[0].Title)
	assert.Equal(t, "First Company", entries[0].Company)
	assert.Equal(t, "Analyst", entries[1].Title)
	assert.Equal(t, "Second Company", entries[1].Company)
}
