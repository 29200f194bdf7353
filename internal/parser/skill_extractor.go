package parser

import (
	"strings"

	"resume-ats-go/internal/types"
)

// SkillExtractor 基于固定词表的技能提取器
// 技能经常散落在专门区段之外，因此扫描范围是区段文本加全文
type SkillExtractor struct{}

// NewSkillExtractor 创建技能提取器
func NewSkillExtractor() *SkillExtractor {
	return &SkillExtractor{}
}

// Extract 提取技能，按词表做大小写不敏感的子串匹配并去重
func (s *SkillExtractor) Extract(skillsLines []string, fullText string) types.Skills {
	skills := types.Skills{
		Technical:      []string{},
		Soft:           []string{},
		Languages:      []string{},
		Certifications: []string{},
	}

	textLower := strings.ToLower(strings.Join(skillsLines, " ") + " " + fullText)

	seen := make(map[string]bool)
	for _, skill := range allTechnicalSkills {
		lower := strings.ToLower(skill)
		if strings.Contains(textLower, lower) && !seen[lower] {
			seen[lower] = true
			skills.Technical = append(skills.Technical, skill)
		}
	}

	// 编程语言补充扫描，词表有重叠，去重集合共用
	for _, lang := range programmingLanguages {
		lower := strings.ToLower(lang)
		if strings.Contains(textLower, lower) && !seen[lower] {
			seen[lower] = true
			skills.Technical = append(skills.Technical, lang)
		}
	}

	seenSoft := make(map[string]bool)
	for _, skill := range softSkills {
		lower := strings.ToLower(skill)
		if strings.Contains(textLower, lower) && !seenSoft[lower] {
			seenSoft[lower] = true
			skills.Soft = append(skills.Soft, skill)
		}
	}

	seenCert := make(map[string]bool)
	for _, cert := range certificationKeywords {
		lower := strings.ToLower(cert)
		if strings.Contains(textLower, lower) && !seenCert[lower] {
			seenCert[lower] = true
			skills.Certifications = append(skills.Certifications, cert)
		}
	}

	return skills
}
