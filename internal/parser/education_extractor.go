package parser

import (
	"regexp"
	"strings"

	"resume-ats-go/internal/types"
)

// 教育/经历提取共用的日期与学历模式
var (
	// 匹配 "Jan 2020" / "3/2021" / "2019" / "Present" 等日期写法
	datePattern = regexp.MustCompile(strings.Join([]string{
		`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b`,
		`(?i)\b\d{1,2}/\d{4}\b`,
		`(?i)\b\d{4}\b`,
		`(?i)\b(?:Present|Current|Now)\b`,
	}, "|"))

	gpaPattern = regexp.MustCompile(`(?i)(?:GPA|Grade|CGPA)[:.]?\s*(\d+\.?\d*)`)

	degreePattern = regexp.MustCompile(strings.Join([]string{
		`(?i)\b(?:Bachelor|BS|BA|B\.S\.|B\.A\.)\b`,
		`(?i)\b(?:Master|MS|MA|M\.S\.|M\.A\.|MBA)\b`,
		`(?i)\b(?:PhD|Ph\.D\.|Doctorate|Ph\.D)\b`,
		`(?i)\b(?:Associate|AS|AA|A\.S\.|A\.A\.)\b`,
	}, "|"))
)

// 院校与专业关键词
var (
	institutionKeywords  = []string{"university", "college", "institute", "school"}
	fieldOfStudyKeywords = []string{"computer science", "engineering", "business", "arts", "science"}
)

// EducationExtractor 从教育区段提取结构化条目
type EducationExtractor struct {
	segmenter *SectionSegmenter
}

// NewEducationExtractor 创建教育经历提取器
func NewEducationExtractor(segmenter *SectionSegmenter) *EducationExtractor {
	return &EducationExtractor{segmenter: segmenter}
}

// Extract 提取教育经历
// 区段缺失时回退到全文扫描；条目以空行分隔，同一条目内各行按关键词填充字段
func (e *EducationExtractor) Extract(educationLines []string, fullText string) []types.EducationEntry {
	if len(educationLines) == 0 {
		educationLines = e.segmenter.FallbackSectionLines(fullText, types.SectionEducation)
	}

	var entries []types.EducationEntry
	var current types.EducationEntry
	hasContent := false

	flush := func() {
		if hasContent {
			entries = append(entries, current)
			current = types.EducationEntry{}
			hasContent = false
		}
	}

	for _, line := range educationLines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		if m := degreePattern.FindString(line); m != "" {
			current.Degree = strings.TrimSpace(m)
			hasContent = true
		}

		if m := gpaPattern.FindStringSubmatch(line); m != nil {
			current.GPA = m[1]
			hasContent = true
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

		lower := strings.ToLower(line)
		for _, keyword := range institutionKeywords {
			if strings.Contains(lower, keyword) {
				current.Institution = line
				hasContent = true
				break
			}
		}

		// 学位未知时，含专业关键词的行视为专业方向
		if current.Degree == "" {
			for _, field := range fieldOfStudyKeywords {
				if strings.Contains(lower, field) {
					current.FieldOfStudy = line
					hasContent = true
					break
				}
			}
		}
	}

	flush()
	return entries
}
