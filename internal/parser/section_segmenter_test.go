package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

// TestIdentifySectionsBasic 验证标准三区段简历的切分结果
func TestIdentifySectionsBasic(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"john@example.com",
		"EDUCATION",
		"BS Computer Science",
		"GPA: 3.8",
		"WORK EXPERIENCE",
		"Software Engineer",
		"Built backend services",
		"SKILLS",
		"Python, Go, Docker",
	}, "\n")

	s := NewSectionSegmenter()
	sections := s.IdentifySections(text)

	require.Len(t, sections, 3, "应恰好切出三个区段")
	assert.Equal(t, []string{"BS Computer Science", "GPA: 3.8"}, sections[types.SectionEducation])
	assert.Equal(t, []string{"Software Engineer", "Built backend services"}, sections[types.SectionExperience])
	assert.Equal(t, []string{"Python, Go, Docker"}, sections[types.SectionSkills])
}

// TestIdentifySectionsHeaderLengthGate 验证长行即使命中关键词也不作为标题
func TestIdentifySectionsHeaderLengthGate(t *testing.T) {
	longLine := "I completed my degree at a well known university after many years of hard work"
	require.GreaterOrEqual(t, len(longLine), 50)

	text := "EDUCATION\n" + longLine + "\nGPA: 3.8"

	s := NewSectionSegmenter()
	sections := s.IdentifySections(text)

	// 长行应留在education区段内，而不是开启新区段
	require.Contains(t, sections, types.SectionEducation)
	assert.Contains(t, sections[types.SectionEducation], longLine)
	assert.Contains(t, sections[types.SectionEducation], "GPA: 3.8")
}

// TestIdentifySectionsLeadingLinesDiscarded 验证首个标题之前的行不进入任何区段
func TestIdentifySectionsLeadingLinesDiscarded(t *testing.T) {
	text := "John Doe\nSenior Developer\nSKILLS\nPython"

	s := NewSectionSegmenter()
	sections := s.IdentifySections(text)

	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Python"}, sections[types.SectionSkills])
}

// TestIdentifySectionsEmptyText 空文本返回空映射
func TestIdentifySectionsEmptyText(t *testing.T) {
	s := NewSectionSegmenter()
	sections := s.IdentifySections("")
	assert.Empty(t, sections)
}

// TestFallbackSectionLines 验证全文回退扫描以其他区段标题为边界
func TestFallbackSectionLines(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"EDUCATION",
		"BS Computer Science",
		"",
		"MS Data Science",
		"SKILLS",
		"Python",
	}, "\n")

	s := NewSectionSegmenter()
	lines := s.FallbackSectionLines(text, types.SectionEducation)

	// 回退扫描保留空行，便于下游按空行分组
	assert.Equal(t, []string{"BS Computer Science", "", "MS Data Science"}, lines)
}
