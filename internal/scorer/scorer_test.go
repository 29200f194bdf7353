package scorer

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

// stubEmbedder 返回固定向量的embedding桩
type stubEmbedder struct {
	vectors [][]float64
	err     error
}

func (s *stubEmbedder) EmbedStrings(_ context.Context, texts []string, _ ...embedding.Option) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}

// TestScoreIdenticalText 简历全文与JD相同时，全文相似度为1，
// 区段全空时最终分恰为0.6。
func TestScoreIdenticalText(t *testing.T) {
	text := "Senior Python developer with Kubernetes and Docker experience building scalable microservices"
	parsed := &types.ParsedResume{RawText: text}

	s := NewATSScorer()
	result, err := s.Score(context.Background(), parsed, text, false, nil)

	require.NoError(t, err)
	assert.InDelta(t, 0.6, result.OverallScore, 1e-9)
	assert.InDelta(t, 1.0, result.KeywordDensity, 1e-9)
	assert.Equal(t, types.MethodLexical, result.ScoringMethod)
	assert.NotEmpty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, types.DefaultScoreWeights(), result.WeightsUsed)
}

// TestScoreKeywordGap 关键词差集分析
func TestScoreKeywordGap(t *testing.T) {
	parsed := &types.ParsedResume{
		RawText: "Python developer with React and Node.js experience",
	}
	jd := "Looking for Python developer with React, Angular, and AWS skills"

	s := NewATSScorer()
	result, err := s.Score(context.Background(), parsed, jd, false, nil)

	require.NoError(t, err)
	assert.Contains(t, result.MatchedKeywords, "python")
	assert.Contains(t, result.MatchedKeywords, "react")
	assert.Contains(t, result.MissingKeywords, "aws")
	assert.GreaterOrEqual(t, result.KeywordDensity, 0.0)
	assert.LessOrEqual(t, result.KeywordDensity, 1.0)
}

// TestScoreEmptySectionsFeedback 区段缺失给出固定反馈
func TestScoreEmptySectionsFeedback(t *testing.T) {
	parsed := &types.ParsedResume{RawText: "some resume text"}

	s := NewATSScorer()
	result, err := s.Score(context.Background(), parsed, "python developer", false, nil)

	require.NoError(t, err)
	for _, name := range scoredSectionNames {
		section := result.SectionScores[name]
		assert.Zero(t, section.Score)
		assert.Equal(t, "No "+name+" information found in resume", section.Feedback)
		assert.Empty(t, section.MatchedKeywords)
	}
	assert.InDelta(t, 0.4, result.SectionScores["skills"].Weight, 1e-9)
	assert.InDelta(t, 0.35, result.SectionScores["experience"].Weight, 1e-9)
	assert.InDelta(t, 0.25, result.SectionScores["education"].Weight, 1e-9)
}

// TestScoreCustomWeights 调用方权重覆盖缺省权重
func TestScoreCustomWeights(t *testing.T) {
	parsed := &types.ParsedResume{RawText: "python"}
	weights := types.ScoreWeights{"skills": 1.0}

	s := NewATSScorer()
	result, err := s.Score(context.Background(), parsed, "python", false, weights)

	require.NoError(t, err)
	assert.Equal(t, weights, result.WeightsUsed)
	assert.InDelta(t, 1.0, result.SectionScores["skills"].Weight, 1e-9)
	assert.Zero(t, result.SectionScores["experience"].Weight)
}

// TestScoreInvalidInput 空输入报错
func TestScoreInvalidInput(t *testing.T) {
	s := NewATSScorer()

	_, err := s.Score(context.Background(), nil, "jd", false, nil)
	assert.Error(t, err)

	_, err = s.Score(context.Background(), &types.ParsedResume{}, "   ", false, nil)
	assert.Error(t, err)
}

// TestScoreSemanticWithoutBackend 语义后端未配置时降级为0分
func TestScoreSemanticWithoutBackend(t *testing.T) {
	parsed := &types.ParsedResume{RawText: "python developer"}

	s := NewATSScorer()
	result, err := s.Score(context.Background(), parsed, "python developer", true, nil)

	require.NoError(t, err)
	assert.Equal(t, types.MethodSemantic, result.ScoringMethod)
	assert.Zero(t, result.OverallScore)
}

// TestScoreSemanticBackend 语义通道使用向量余弦
func TestScoreSemanticBackend(t *testing.T) {
	parsed := &types.ParsedResume{RawText: "python developer"}
	stub := &stubEmbedder{vectors: [][]float64{{1, 0}, {1, 0}}}

	s := NewATSScorer(WithSemanticBackend(NewSemanticBackend(stub)))
	result, err := s.Score(context.Background(), parsed, "unrelated text", true, nil)

	require.NoError(t, err)
	assert.Equal(t, types.MethodSemantic, result.ScoringMethod)
	assert.InDelta(t, 0.6, result.OverallScore, 1e-9)
}

// TestScoreSemanticBackendDegradesOnError embedding失败时相似度为0
func TestScoreSemanticBackendDegradesOnError(t *testing.T) {
	stub := &stubEmbedder{err: assert.AnError}
	backend := NewSemanticBackend(stub)

	got := backend.Similarity(context.Background(), "a", "b")
	assert.Zero(t, got)
}

// TestScoreSectionSkillsBoost 技能区段按关键词库命中加分
func TestScoreSectionSkillsBoost(t *testing.T) {
	// 与JD无词法交集，得分应完全来自加分项
	skillsText := "python java react docker kubernetes aws git"
	jd := "marketing campaign branding"

	s := NewATSScorer()
	section := s.scoreSection(context.Background(), skillsText, jd, "skills")

	assert.Greater(t, section.Score, 0.0)
	assert.LessOrEqual(t, section.Score, 0.3, "加分上限为0.3")
}

// TestScoreSectionExperienceBoost 经历区段按行动词与量化指标加分
func TestScoreSectionExperienceBoost(t *testing.T) {
	expText := "Improved performance by 40%, led team of 8, implemented automated testing reducing bugs by 60%"
	jd := "marketing campaign branding"

	s := NewATSScorer()
	section := s.scoreSection(context.Background(), expText, jd, "experience")

	// 4个行动词 * 0.02 + 2个量化指标 * 0.05
	assert.InDelta(t, 0.18, section.Score, 1e-9)
}

// TestCountImpactAndMetrics 行动词与量化指标的计数
func TestCountImpactAndMetrics(t *testing.T) {
	strong := "Improved performance by 40%, led team of 8, implemented automated testing reducing bugs by 60%"
	weak := "worked on things, fixed bugs, attended meetings"

	assert.GreaterOrEqual(t, countImpactWords(strong), 3)
	assert.GreaterOrEqual(t, countMetrics(strong), 2)
	assert.Zero(t, countImpactWords(weak))
	assert.Zero(t, countMetrics(weak))
}

// TestSectionFeedbackTiers 反馈按分数档位变化
func TestSectionFeedbackTiers(t *testing.T) {
	missing := []string{"aws", "terraform", "ansible", "grafana", "jenkins", "vault"}

	assert.Equal(t, "Excellent skills match with the job requirements.",
		sectionFeedback("skills", 0.85, missing))
	assert.Equal(t, "Good skills alignment. Consider highlighting: aws, terraform, ansible.",
		sectionFeedback("skills", 0.65, missing))
	assert.Equal(t, "Moderate skills match. Missing key terms: aws, terraform, ansible, grafana, jenkins.",
		sectionFeedback("skills", 0.45, missing))
	assert.Equal(t, "Low skills alignment. Add relevant experience/skills: aws, terraform, ansible, grafana, jenkins.",
		sectionFeedback("skills", 0.1, missing))
	assert.Equal(t, "Low skills alignment.", sectionFeedback("skills", 0.1, nil))
}

// TestScoreSectionTextAssembly 结构化数据拼接成区段文本
func TestScoreSectionTextAssembly(t *testing.T) {
	parsed := &types.ParsedResume{
		RawText: "resume",
		Skills: types.Skills{
			Technical:      []string{"python", "docker"},
			Soft:           []string{"leadership"},
			Certifications: []string{"aws certified"},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Details: []string{"built pipelines"}},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "BS", FieldOfStudy: "computer science"},
		},
	}

	assert.Equal(t, "python docker leadership aws certified", extractSkillsText(parsed.Skills))
	assert.Equal(t, "Engineer Acme built pipelines", extractExperienceText(parsed.Experience))
	assert.Equal(t, "State University BS computer science", extractEducationText(parsed.Education))
}
