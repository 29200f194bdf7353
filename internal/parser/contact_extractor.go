package parser

import (
	"regexp"
	"strings"
	"unicode"

	"resume-ats-go/internal/types"
)

// ContactExtractor 从全文提取联系方式
type ContactExtractor struct {
	emailPattern    *regexp.Regexp
	phonePattern    *regexp.Regexp
	linkedinPattern *regexp.Regexp
	githubPattern   *regexp.Regexp
	locationPattern *regexp.Regexp
}

// NewContactExtractor 创建联系方式提取器，预编译所有模式
func NewContactExtractor() *ContactExtractor {
	// 电话模式覆盖三种常见格式，按顺序取首个匹配：
	// (123) 456-7890 / +1-123-456-7890 / 123 456 7890
	phonePatterns := []string{
		`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
		`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`,
		`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`,
	}

	return &ContactExtractor{
		emailPattern:    regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
		phonePattern:    regexp.MustCompile(strings.Join(phonePatterns, "|")),
		linkedinPattern: regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/pub/)([A-Za-z0-9\-_%]+)`),
		githubPattern:   regexp.MustCompile(`(?i)(?:github\.com/)([A-Za-z0-9\-_.]+)`),
		locationPattern: regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2}(?:\s+\d{5})?)`),
	}
}

// Extract 提取联系方式，每个字段取首个匹配
func (c *ContactExtractor) Extract(text string) types.ContactInfo {
	var info types.ContactInfo

	if m := c.emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	if m := c.phonePattern.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}

	if m := c.linkedinPattern.FindStringSubmatch(text); m != nil {
		info.LinkedIn = "linkedin.com/in/" + m[1]
	}

	if m := c.githubPattern.FindStringSubmatch(text); m != nil {
		info.GitHub = "github.com/" + m[1]
	}

	info.Name = c.extractName(text)

	if m := c.locationPattern.FindString(text); m != "" {
		info.Location = strings.TrimSpace(m)
	}

	return info
}

// extractName 姓名启发式：扫描前10行，取首个不含@/http/括号、
// 由2到4个首字母大写单词组成的行
func (c *ContactExtractor) extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, "@()") || strings.Contains(line, "http") {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		allCapitalized := true
		for _, word := range words {
			r := []rune(word)
			if len(r) == 0 || !unicode.IsUpper(r[0]) {
				allCapitalized = false
				break
			}
		}
		if allCapitalized {
			return line
		}
	}

	return ""
}
