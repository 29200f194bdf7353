package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

// completeParsedResume 构造一份不触发针对性建议的简历
func completeParsedResume() *types.ParsedResume {
	return &types.ParsedResume{
		RawText: "resume",
		Contact: types.ContactInfo{
			Email:    "jane@example.com",
			Phone:    "555-123-4567",
			LinkedIn: "linkedin.com/in/jane",
		},
		Skills: types.Skills{
			Technical: []string{"python", "go", "docker", "kubernetes", "terraform"},
		},
		Experience: []types.ExperienceEntry{
			{
				Title:   "Engineer",
				Company: "Acme",
				Details: []string{
					"Improved throughput by 40% and reduced costs by 30%",
					"Led delivery of automated pipelines, implemented monitoring",
				},
			},
		},
	}
}

// healthySections 各区段分数高且无缺失词，不触发区段建议
func healthySections() map[string]types.SectionScore {
	return map[string]types.SectionScore{
		"skills":     {Score: 0.9},
		"experience": {Score: 0.9},
		"education":  {Score: 0.9},
	}
}

// TestSuggestionsLowOverallExactlyOne 低分时恰好一条overall高优先级建议
func TestSuggestionsLowOverallExactlyOne(t *testing.T) {
	result := &types.ScoreResult{
		OverallScore:    0.2,
		SectionScores:   healthySections(),
		MissingKeywords: []string{"aws", "terraform", "ansible", "grafana", "jenkins", "vault"},
	}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, completeParsedResume())

	var overall []types.Suggestion
	for _, sug := range suggestions {
		if sug.Type == "overall" {
			overall = append(overall, sug)
		}
	}
	require.Len(t, overall, 1)
	assert.Equal(t, types.PriorityHigh, overall[0].Priority)
	assert.Equal(t, "Low ATS Compatibility", overall[0].Title)
	assert.Equal(t, []string{"aws", "terraform", "ansible", "grafana", "jenkins"}, overall[0].KeywordsToAdd)
}

// TestSuggestionsModerateOverall 中档分数给medium建议
func TestSuggestionsModerateOverall(t *testing.T) {
	result := &types.ScoreResult{
		OverallScore:    0.45,
		SectionScores:   healthySections(),
		MissingKeywords: []string{"aws", "terraform", "ansible", "grafana"},
	}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, completeParsedResume())

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "overall", suggestions[0].Type)
	assert.Equal(t, types.PriorityMedium, suggestions[0].Priority)
	assert.Equal(t, "Moderate ATS Score", suggestions[0].Title)
	assert.Equal(t, []string{"aws", "terraform", "ansible"}, suggestions[0].KeywordsToAdd)
}

// TestSuggestionsHighOverallNone 高分不产生overall建议
func TestSuggestionsHighOverallNone(t *testing.T) {
	result := &types.ScoreResult{
		OverallScore:  0.75,
		SectionScores: healthySections(),
	}

	s := NewATSScorer()
	for _, sug := range s.GenerateSuggestions(result, completeParsedResume()) {
		assert.NotEqual(t, "overall", sug.Type)
	}
}

// TestSuggestionsSectionTiers 区段建议按分数分档
func TestSuggestionsSectionTiers(t *testing.T) {
	result := &types.ScoreResult{
		OverallScore: 0.75,
		SectionScores: map[string]types.SectionScore{
			"skills":     {Score: 0.3, MissingKeywords: []string{"aws", "gcp", "azure", "docker", "helm", "vault"}},
			"experience": {Score: 0.65, MissingKeywords: []string{"leadership", "mentoring", "planning", "delivery"}},
			"education":  {Score: 0.9, MissingKeywords: []string{"phd"}},
		},
	}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, completeParsedResume())

	var bySection []types.Suggestion
	for _, sug := range suggestions {
		if sug.Type == "skills" || sug.Type == "experience" || sug.Type == "education" {
			bySection = append(bySection, sug)
		}
	}
	require.Len(t, bySection, 2)

	assert.Equal(t, "skills", bySection[0].Type)
	assert.Equal(t, types.PriorityHigh, bySection[0].Priority)
	assert.Equal(t, "Improve Skills Section", bySection[0].Title)
	assert.Equal(t, []string{"aws", "gcp", "azure", "docker", "helm"}, bySection[0].KeywordsToAdd)

	assert.Equal(t, "experience", bySection[1].Type)
	assert.Equal(t, types.PriorityMedium, bySection[1].Priority)
	assert.Equal(t, "Enhance Experience Section", bySection[1].Title)
	assert.Equal(t, []string{"leadership", "mentoring", "planning"}, bySection[1].KeywordsToAdd)
}

// TestSuggestionsLowSectionNoMissingSkipped 无缺失词的低分区段不提建议
func TestSuggestionsLowSectionNoMissingSkipped(t *testing.T) {
	sections := healthySections()
	sections["skills"] = types.SectionScore{Score: 0.1}
	result := &types.ScoreResult{OverallScore: 0.75, SectionScores: sections}

	s := NewATSScorer()
	for _, sug := range s.GenerateSuggestions(result, completeParsedResume()) {
		assert.NotEqual(t, "skills", sug.Type)
	}
}

// TestSuggestionsQuantifiableAchievements 缺少量化成果时提建议
func TestSuggestionsQuantifiableAchievements(t *testing.T) {
	parsed := completeParsedResume()
	parsed.Experience = []types.ExperienceEntry{
		{Title: "Engineer", Details: []string{"Led delivery, implemented and automated pipelines"}},
	}
	result := &types.ScoreResult{OverallScore: 0.75, SectionScores: healthySections()}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, parsed)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Add Quantifiable Achievements", suggestions[0].Title)
	assert.Equal(t, types.PriorityHigh, suggestions[0].Priority)
	assert.Equal(t, []string{"metrics", "results", "achievements"}, suggestions[0].KeywordsToAdd)
}

// TestSuggestionsActionWords 行动词不足时提建议
func TestSuggestionsActionWords(t *testing.T) {
	parsed := completeParsedResume()
	parsed.Experience = []types.ExperienceEntry{
		{Title: "Engineer", Details: []string{"Responsible for 40% of requests, handled 30% more load"}},
	}
	result := &types.ScoreResult{OverallScore: 0.75, SectionScores: healthySections()}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, parsed)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Use Strong Action Words", suggestions[0].Title)
	assert.Equal(t, types.PriorityMedium, suggestions[0].Priority)
	assert.Equal(t, []string{"achieved", "improved", "increased", "decreased", "reduced"}, suggestions[0].KeywordsToAdd)
}

// TestSuggestionsFewTechnicalSkills 技术技能少于5个时提建议
func TestSuggestionsFewTechnicalSkills(t *testing.T) {
	parsed := completeParsedResume()
	parsed.Skills.Technical = []string{"python", "go"}
	result := &types.ScoreResult{
		OverallScore:    0.75,
		SectionScores:   healthySections(),
		MissingKeywords: []string{"aws", "gcp", "azure", "helm"},
	}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, parsed)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Expand Technical Skills", suggestions[0].Title)
	assert.Equal(t, []string{"aws", "gcp", "azure"}, suggestions[0].KeywordsToAdd)
}

// TestSuggestionsContactRules 联系方式缺失的两条规则
func TestSuggestionsContactRules(t *testing.T) {
	parsed := completeParsedResume()
	parsed.Contact.LinkedIn = ""
	parsed.Contact.Phone = ""
	result := &types.ScoreResult{OverallScore: 0.75, SectionScores: healthySections()}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, parsed)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "Add LinkedIn Profile", suggestions[0].Title)
	assert.Equal(t, types.PriorityLow, suggestions[0].Priority)
	assert.Equal(t, "Complete Contact Information", suggestions[1].Title)
	assert.Equal(t, types.PriorityHigh, suggestions[1].Priority)
}

// TestSuggestionsOrdering overall建议排在区段建议之前
func TestSuggestionsOrdering(t *testing.T) {
	sections := healthySections()
	sections["skills"] = types.SectionScore{Score: 0.3, MissingKeywords: []string{"aws"}}
	result := &types.ScoreResult{
		OverallScore:    0.2,
		SectionScores:   sections,
		MissingKeywords: []string{"aws"},
	}

	s := NewATSScorer()
	suggestions := s.GenerateSuggestions(result, completeParsedResume())

	require.GreaterOrEqual(t, len(suggestions), 2)
	assert.Equal(t, "overall", suggestions[0].Type)
	assert.Equal(t, "skills", suggestions[1].Type)
}
