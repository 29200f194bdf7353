package parser

import (
	"strings"

	"resume-ats-go/internal/types"
)

// bulletPrefixes 列表项前缀字符
var bulletPrefixes = []string{"•", "-", "*", "◦"}

// ExperienceExtractor 从工作经历区段提取结构化条目
type ExperienceExtractor struct {
	segmenter *SectionSegmenter
}

// NewExperienceExtractor 创建工作经历提取器
func NewExperienceExtractor(segmenter *SectionSegmenter) *ExperienceExtractor {
	return &ExperienceExtractor{segmenter: segmenter}
}

// Extract 提取工作经历
// 空行分隔条目；列表项进details；非列表且不含数字的行按出现顺序
// 先填title再填company。这个顺序启发式本身就是规则，行内容存在歧义时不做纠正
func (e *ExperienceExtractor) Extract(experienceLines []string, fullText string) []types.ExperienceEntry {
	if len(experienceLines) == 0 {
		experienceLines = e.segmenter.FallbackSectionLines(fullText, types.SectionExperience)
	}

	var entries []types.ExperienceEntry
	var current types.ExperienceEntry
	var details []string
	hasContent := false

	flush := func() {
		if hasContent {
			current.Details = details
			entries = append(entries, current)
			current = types.ExperienceEntry{}
			details = nil
			hasContent = false
		}
	}

	for _, line := range experienceLines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		if bullet, ok := stripBullet(line); ok {
			details = append(details, bullet)
			hasContent = true
			continue
		}

		if dates := datePattern.FindAllString(line, -1); len(dates) > 0 {
			if len(dates) >= 2 {
				current.StartDate = dates[0]
				current.EndDate = dates[1]
			} else {
				current.EndDate = dates[0]
			}
			hasContent = true
		}

		if current.Title == "" && !containsDigit(line) {
			current.Title = line
			hasContent = true
		} else if current.Company == "" && !containsDigit(line) {
			current.Company = line
			hasContent = true
		}
	}

	flush()
	return entries
}

// stripBullet 去掉列表项前缀，返回剩余内容
func stripBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
