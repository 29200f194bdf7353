package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractProjects 验证项目名与描述的拆分
func TestExtractProjects(t *testing.T) {
	lines := []string{
		"Resume Analyzer",
		"• Parses PDF resumes",
		"Scores them against job postings",
		"",
		"Chat Bot",
		"• Answers common questions",
	}

	p := NewProjectExtractor()
	projects := p.Extract(lines)

	require.Len(t, projects, 2)
	assert.Equal(t, "Resume Analyzer", projects[0].Name)
	assert.Equal(t, "Parses PDF resumes Scores them against job postings", projects[0].Description)
	assert.Equal(t, "Chat Bot", projects[1].Name)
	assert.Equal(t, "Answers common questions", projects[1].Description)
}

// TestExtractProjectsEmptySection 区段缺失返回空
func TestExtractProjectsEmptySection(t *testing.T) {
	p := NewProjectExtractor()
	assert.Empty(t, p.Extract(nil))
}
