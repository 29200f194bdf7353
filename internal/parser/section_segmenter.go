package parser

import (
	"regexp"
	"strings"

	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/types"
)

// SectionSegmenter 基于固定关键词模式的简历区段切分器
// 逐行扫描并维护当前区段状态，命中标题行时切换区段
type SectionSegmenter struct {
	patterns map[types.SectionType]*regexp.Regexp
	// 模式匹配顺序固定，标题行同时命中多个模式时取先出现者
	order []types.SectionType
}

// NewSectionSegmenter 创建区段切分器，预编译所有标题模式
func NewSectionSegmenter() *SectionSegmenter {
	return &SectionSegmenter{
		patterns: map[types.SectionType]*regexp.Regexp{
			types.SectionEducation:      regexp.MustCompile(`(?i)\b(?:education|academic|qualification|degree|university|college)\b`),
			types.SectionExperience:     regexp.MustCompile(`(?i)\b(?:experience|employment|work|professional|career|job)\b`),
			types.SectionSkills:         regexp.MustCompile(`(?i)\b(?:skills|technical|technologies|competencies|expertise)\b`),
			types.SectionProjects:       regexp.MustCompile(`(?i)\b(?:projects|portfolio|work samples)\b`),
			types.SectionCertifications: regexp.MustCompile(`(?i)\b(?:certifications|certificates|licenses)\b`),
		},
		order: []types.SectionType{
			types.SectionEducation,
			types.SectionExperience,
			types.SectionSkills,
			types.SectionProjects,
			types.SectionCertifications,
		},
	}
}

// IdentifySections 切分简历文本为区段
// 标题判定需要同时满足模式命中和长度闸门：正文里经常复述标题关键词
// （如 "Bachelor's degree"），长行不当作标题
func (s *SectionSegmenter) IdentifySections(text string) types.SectionMap {
	sections := make(types.SectionMap)
	var currentSection types.SectionType
	inSection := false
	var sectionContent []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sectionFound, ok := s.matchHeader(line)
		if ok {
			// 保存上一个区段
			if inSection && len(sectionContent) > 0 {
				sections[currentSection] = sectionContent
			}
			currentSection = sectionFound
			inSection = true
			sectionContent = nil
			continue
		}

		if inSection {
			sectionContent = append(sectionContent, line)
		}
	}

	// 保存最后一个区段
	if inSection && len(sectionContent) > 0 {
		sections[currentSection] = sectionContent
	}

	return sections
}

// matchHeader 判断一行是否为区段标题
func (s *SectionSegmenter) matchHeader(line string) (types.SectionType, bool) {
	if len(line) >= constants.MaxHeaderLineChars {
		return "", false
	}
	for _, section := range s.order {
		if s.patterns[section].MatchString(line) {
			return section, true
		}
	}
	return "", false
}

// FallbackSectionLines 在切分器未找到目标区段时，从全文扫描该区段的行
// 以目标模式命中为起点，任一其他区段模式命中为终点；不应用标题长度闸门，
// 且保留空行以便下游按空行分组
func (s *SectionSegmenter) FallbackSectionLines(fullText string, target types.SectionType) []string {
	targetPattern, ok := s.patterns[target]
	if !ok {
		return nil
	}

	var collected []string
	inSection := false

	for _, line := range strings.Split(fullText, "\n") {
		if targetPattern.MatchString(line) {
			inSection = true
			continue
		}
		if s.matchesOther(line, target) {
			inSection = false
			continue
		}
		if inSection {
			collected = append(collected, line)
		}
	}

	return collected
}

// matchesOther 判断一行是否命中目标以外的任一区段模式
func (s *SectionSegmenter) matchesOther(line string, target types.SectionType) bool {
	for _, section := range s.order {
		if section == target {
			continue
		}
		if s.patterns[section].MatchString(line) {
			return true
		}
	}
	return false
}
