package parser

import (
	"strings"

	"resume-ats-go/internal/types"
)

// ProjectExtractor 从项目区段提取条目
type ProjectExtractor struct{}

// NewProjectExtractor 创建项目提取器
func NewProjectExtractor() *ProjectExtractor {
	return &ProjectExtractor{}
}

// Extract 提取项目经历
// 空行分隔条目；首个非列表行作为项目名，其余行合并为描述。区段缺失时返回空
func (p *ProjectExtractor) Extract(projectLines []string) []types.ProjectEntry {
	if len(projectLines) == 0 {
		return nil
	}

	var projects []types.ProjectEntry
	var current types.ProjectEntry
	var details []string
	hasContent := false

	flush := func() {
		if hasContent {
			current.Description = strings.Join(details, " ")
			projects = append(projects, current)
			current = types.ProjectEntry{}
			details = nil
			hasContent = false
		}
	}

	for _, line := range projectLines {
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

		if current.Name == "" {
			current.Name = line
		} else {
			details = append(details, line)
		}
		hasContent = true
	}

	flush()
	return projects
}
