package scorer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"resume-ats-go/internal/logger"
	"resume-ats-go/internal/types"
)

// scoredSectionNames 参与区段评分的区段，顺序固定
var scoredSectionNames = []string{"skills", "experience", "education"}

// ATSScorer 简历与职位描述的匹配评分器。
// 词法通道始终可用，语义通道可选注入。
type ATSScorer struct {
	lexical  *LexicalBackend
	semantic SimilarityBackend
	weights  types.ScoreWeights
	logger   zerolog.Logger
}

// ATSScorerOption 评分器可选配置
type ATSScorerOption func(*ATSScorer)

// WithSemanticBackend 注入语义相似度后端
func WithSemanticBackend(backend SimilarityBackend) ATSScorerOption {
	return func(s *ATSScorer) {
		s.semantic = backend
	}
}

// WithDefaultWeights 覆盖缺省区段权重
func WithDefaultWeights(weights types.ScoreWeights) ATSScorerOption {
	return func(s *ATSScorer) {
		if len(weights) > 0 {
			s.weights = weights
		}
	}
}

func NewATSScorer(opts ...ATSScorerOption) *ATSScorer {
	s := &ATSScorer{
		lexical: NewLexicalBackend(),
		weights: types.DefaultScoreWeights(),
		logger:  logger.Logger.With().Str("component", "ats_scorer").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score 对解析后的简历与职位描述打分。
// 最终分 = 全文相似度*0.6 + 加权区段分*0.4。
func (s *ATSScorer) Score(ctx context.Context, parsed *types.ParsedResume, jobDescription string,
	useSemantic bool, customWeights types.ScoreWeights) (*types.ScoreResult, error) {

	if parsed == nil {
		return nil, fmt.Errorf("简历解析结果为空")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("职位描述为空")
	}

	weights := s.weights
	if len(customWeights) > 0 {
		weights = customWeights
	}

	sectionTexts := map[string]string{
		"skills":     extractSkillsText(parsed.Skills),
		"experience": extractExperienceText(parsed.Experience),
		"education":  extractEducationText(parsed.Education),
	}

	var overall float64
	var method types.ScoringMethod
	if useSemantic {
		method = types.MethodSemantic
		if s.semantic != nil {
			overall = s.semantic.Similarity(ctx, parsed.RawText, jobDescription)
		} else {
			s.logger.Warn().Msg("语义后端未配置, 全文相似度降级为0")
		}
	} else {
		method = s.lexical.Method()
		overall = s.lexical.Similarity(ctx, parsed.RawText, jobDescription)
	}

	sectionScores := make(map[string]types.SectionScore, len(scoredSectionNames))
	weightedScore := 0.0
	for _, name := range scoredSectionNames {
		result := s.scoreSection(ctx, sectionTexts[name], jobDescription, name)
		result.Weight = weights[name]
		sectionScores[name] = result
		weightedScore += result.Score * result.Weight
	}

	finalScore := overall*0.6 + weightedScore*0.4

	matched, missing, density := analyzeKeywordMatch(parsed.RawText, jobDescription)

	s.logger.Debug().
		Float64("overall", overall).
		Float64("final", finalScore).
		Str("method", string(method)).
		Msg("评分完成")

	return &types.ScoreResult{
		OverallScore:    roundTo3(finalScore),
		SectionScores:   sectionScores,
		MatchedKeywords: topKeywords(matched, 20),
		MissingKeywords: topKeywords(missing, 20),
		KeywordDensity:  roundTo3(density),
		ScoringMethod:   method,
		WeightsUsed:     weights,
	}, nil
}

// scoreSection 单区段打分，区段相似度始终走词法通道
func (s *ATSScorer) scoreSection(ctx context.Context, sectionText, jobDescription, sectionType string) types.SectionScore {
	if strings.TrimSpace(sectionText) == "" {
		return types.SectionScore{
			Score:           0.0,
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			Feedback:        fmt.Sprintf("No %s information found in resume", sectionType),
		}
	}

	score := s.lexical.Similarity(ctx, sectionText, jobDescription)
	matched, missing, _ := analyzeKeywordMatch(sectionText, jobDescription)

	switch sectionType {
	case "skills":
		techMatches := countTechMatches(sectionText)
		score = math.Min(1.0, score+math.Min(0.3, float64(techMatches)*0.02))
	case "experience":
		impactBoost := math.Min(0.2, float64(countImpactWords(sectionText))*0.02)
		metricsBoost := math.Min(0.2, float64(countMetrics(sectionText))*0.05)
		score = math.Min(1.0, score+impactBoost+metricsBoost)
	}

	return types.SectionScore{
		Score:           score,
		MatchedKeywords: topKeywords(matched, 10),
		MissingKeywords: topKeywords(missing, 10),
		Feedback:        sectionFeedback(sectionType, score, missing),
	}
}

// sectionFeedback 按分数档位生成区段反馈
func sectionFeedback(sectionType string, score float64, missing []string) string {
	switch {
	case score >= 0.8:
		return fmt.Sprintf("Excellent %s match with the job requirements.", sectionType)
	case score >= 0.6:
		feedback := fmt.Sprintf("Good %s alignment.", sectionType)
		if len(missing) > 0 {
			feedback += fmt.Sprintf(" Consider highlighting: %s.", strings.Join(topKeywords(missing, 3), ", "))
		}
		return feedback
	case score >= 0.4:
		feedback := fmt.Sprintf("Moderate %s match.", sectionType)
		if len(missing) > 0 {
			feedback += fmt.Sprintf(" Missing key terms: %s.", strings.Join(topKeywords(missing, 5), ", "))
		}
		return feedback
	default:
		feedback := fmt.Sprintf("Low %s alignment.", sectionType)
		if len(missing) > 0 {
			feedback += fmt.Sprintf(" Add relevant experience/skills: %s.", strings.Join(topKeywords(missing, 5), ", "))
		}
		return feedback
	}
}

// analyzeKeywordMatch 双方各取top100关键词做差集分析。
// 返回顺序保持职位描述关键词的重要度排序。
func analyzeKeywordMatch(resumeText, jdText string) (matched, missing []string, density float64) {
	resumeSet := make(map[string]struct{})
	for _, kw := range ExtractKeywords(resumeText, 100) {
		resumeSet[kw] = struct{}{}
	}
	jdKeywords := ExtractKeywords(jdText, 100)

	matched = []string{}
	missing = []string{}
	for _, kw := range jdKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	if len(jdKeywords) > 0 {
		density = float64(len(matched)) / float64(len(jdKeywords))
	}
	return matched, missing, density
}

// countTechMatches 统计技能文本命中关键词库technical_skills的次数，
// 同一技能跨类别重复计数。
func countTechMatches(sectionText string) int {
	lower := strings.ToLower(sectionText)
	count := 0
	for _, category := range jobKeywords {
		for _, skill := range category.TechnicalSkills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				count++
			}
		}
	}
	return count
}

func countImpactWords(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, word := range impactWords {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}

// countMetrics 统计量化表达的出现总数
func countMetrics(text string) int {
	count := 0
	for _, pattern := range metricsPatterns {
		count += len(pattern.FindAllString(text, -1))
	}
	return count
}

// extractSkillsText 拼接技能清单
func extractSkillsText(skills types.Skills) string {
	var parts []string
	parts = append(parts, skills.Technical...)
	parts = append(parts, skills.Soft...)
	parts = append(parts, skills.Languages...)
	parts = append(parts, skills.Certifications...)
	return strings.Join(parts, " ")
}

// extractExperienceText 拼接职位、公司与要点
func extractExperienceText(entries []types.ExperienceEntry) string {
	var parts []string
	for _, exp := range entries {
		if exp.Title != "" {
			parts = append(parts, exp.Title)
		}
		if exp.Company != "" {
			parts = append(parts, exp.Company)
		}
		parts = append(parts, exp.Details...)
	}
	return strings.Join(parts, " ")
}

// extractEducationText 拼接学校、学位与专业
func extractEducationText(entries []types.EducationEntry) string {
	var parts []string
	for _, edu := range entries {
		if edu.Institution != "" {
			parts = append(parts, edu.Institution)
		}
		if edu.Degree != "" {
			parts = append(parts, edu.Degree)
		}
		if edu.FieldOfStudy != "" {
			parts = append(parts, edu.FieldOfStudy)
		}
	}
	return strings.Join(parts, " ")
}

func topKeywords(keywords []string, n int) []string {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

func roundTo3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
