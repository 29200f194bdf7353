package scorer

import (
	"fmt"
	"unicode"

	"resume-ats-go/internal/types"
)

// GenerateSuggestions 基于评分结果生成改进建议。
// 顺序固定: 整体分档 -> 各区段分档 -> 针对性检查。
func (s *ATSScorer) GenerateSuggestions(result *types.ScoreResult, parsed *types.ParsedResume) []types.Suggestion {
	suggestions := []types.Suggestion{}
	if result == nil || parsed == nil {
		return suggestions
	}

	if result.OverallScore < 0.3 {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "overall",
			Priority:      types.PriorityHigh,
			Title:         "Low ATS Compatibility",
			Description:   "Your resume has low compatibility with this job. Consider significant restructuring to better match job requirements.",
			KeywordsToAdd: topKeywords(result.MissingKeywords, 5),
		})
	} else if result.OverallScore < 0.6 {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "overall",
			Priority:      types.PriorityMedium,
			Title:         "Moderate ATS Score",
			Description:   "Your resume partially matches the job requirements. Focus on adding missing keywords and improving relevant sections.",
			KeywordsToAdd: topKeywords(result.MissingKeywords, 3),
		})
	}

	for _, name := range scoredSectionNames {
		section, ok := result.SectionScores[name]
		if !ok {
			continue
		}
		if section.Score < 0.4 && len(section.MissingKeywords) > 0 {
			suggestions = append(suggestions, types.Suggestion{
				Type:          name,
				Priority:      types.PriorityHigh,
				Title:         fmt.Sprintf("Improve %s Section", titleCase(name)),
				Description:   fmt.Sprintf("Your %s section needs strengthening. Add relevant keywords and expand details.", name),
				KeywordsToAdd: topKeywords(section.MissingKeywords, 5),
			})
		} else if section.Score < 0.7 && len(section.MissingKeywords) > 0 {
			suggestions = append(suggestions, types.Suggestion{
				Type:          name,
				Priority:      types.PriorityMedium,
				Title:         fmt.Sprintf("Enhance %s Section", titleCase(name)),
				Description:   fmt.Sprintf("Consider adding more relevant %s details to better match job requirements.", name),
				KeywordsToAdd: topKeywords(section.MissingKeywords, 3),
			})
		}
	}

	return append(suggestions, specificSuggestions(result, parsed)...)
}

// specificSuggestions 针对性的可执行建议
func specificSuggestions(result *types.ScoreResult, parsed *types.ParsedResume) []types.Suggestion {
	var suggestions []types.Suggestion

	experienceText := extractExperienceText(parsed.Experience)

	if countMetrics(experienceText) < 2 {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "experience",
			Priority:      types.PriorityHigh,
			Title:         "Add Quantifiable Achievements",
			Description:   `Include specific numbers, percentages, or metrics to demonstrate your impact (e.g., "Increased efficiency by 25%", "Managed team of 10").`,
			KeywordsToAdd: []string{"metrics", "results", "achievements"},
		})
	}

	if countImpactWords(experienceText) < 3 {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "experience",
			Priority:      types.PriorityMedium,
			Title:         "Use Strong Action Words",
			Description:   `Start bullet points with strong action verbs like "developed", "implemented", "optimized", "led".`,
			KeywordsToAdd: topKeywords(impactWords, 5),
		})
	}

	if len(parsed.Skills.Technical) < 5 {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "skills",
			Priority:      types.PriorityMedium,
			Title:         "Expand Technical Skills",
			Description:   "Add more relevant technical skills, tools, and technologies mentioned in the job description.",
			KeywordsToAdd: topKeywords(result.MissingKeywords, 3),
		})
	}

	if parsed.Contact.LinkedIn == "" {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "format",
			Priority:      types.PriorityLow,
			Title:         "Add LinkedIn Profile",
			Description:   "Include your LinkedIn profile URL to provide recruiters with additional information.",
			KeywordsToAdd: []string{},
		})
	}

	if parsed.Contact.Email == "" || parsed.Contact.Phone == "" {
		suggestions = append(suggestions, types.Suggestion{
			Type:          "format",
			Priority:      types.PriorityHigh,
			Title:         "Complete Contact Information",
			Description:   "Ensure your email and phone number are clearly visible on your resume.",
			KeywordsToAdd: []string{},
		})
	}

	return suggestions
}

func titleCase(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
