package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractSkillsFromSectionAndFullText 技能同时来自区段文本和全文
func TestExtractSkillsFromSectionAndFullText(t *testing.T) {
	skillsLines := []string{"Python, Docker, Kubernetes"}
	fullText := "Built services in Go with strong communication and leadership, AWS Certified Developer"

	s := NewSkillExtractor()
	skills := s.Extract(skillsLines, fullText)

	assert.Contains(t, skills.Technical, "python")
	assert.Contains(t, skills.Technical, "docker")
	assert.Contains(t, skills.Technical, "kubernetes")
	assert.Contains(t, skills.Technical, "go")
	assert.Contains(t, skills.Soft, "communication")
	assert.Contains(t, skills.Soft, "leadership")
	assert.Contains(t, skills.Certifications, "aws certified")
}

// TestExtractSkillsDeduplication 同一技能在多处出现只记一次
func TestExtractSkillsDeduplication(t *testing.T) {
	s := NewSkillExtractor()
	skills := s.Extract([]string{"Python python PYTHON"}, "more python here")

	count := 0
	for _, skill := range skills.Technical {
		if skill == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count, "python 只应出现一次")
}

// TestExtractSkillsNoMatches 无匹配时各列表为空
func TestExtractSkillsNoMatches(t *testing.T) {
	s := NewSkillExtractor()
	skills := s.Extract(nil, "zzzz qqqq wwww")

	assert.Empty(t, skills.Technical)
	assert.Empty(t, skills.Soft)
	assert.Empty(t, skills.Languages)
	assert.Empty(t, skills.Certifications)
}
