package types

// ScoringMethod 相似度计算方式
type ScoringMethod string

const (
	// MethodLexical 词法TF-IDF余弦相似度
	MethodLexical ScoringMethod = "tfidf"
	// MethodSemantic 语义向量余弦相似度
	MethodSemantic ScoringMethod = "embedding"
)

// ScoreWeights 各区段权重
type ScoreWeights map[string]float64

// DefaultScoreWeights 缺省权重
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		"skills":     0.4,
		"experience": 0.35,
		"education":  0.25,
	}
}

// SectionScore 单区段评分结果
type SectionScore struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"` // top 10
	MissingKeywords []string `json:"missing_keywords"` // top 10
	Weight          float64  `json:"weight"`
	Feedback        string   `json:"feedback"`
}

// ScoreResult 完整评分结果
type ScoreResult struct {
	OverallScore    float64                 `json:"overall_score"` // 合成分，保留3位小数
	SectionScores   map[string]SectionScore `json:"section_scores"`
	MatchedKeywords []string                `json:"matched_keywords"` // top 20
	MissingKeywords []string                `json:"missing_keywords"` // top 20
	KeywordDensity  float64                 `json:"keyword_density"`
	ScoringMethod   ScoringMethod           `json:"scoring_method"`
	WeightsUsed     ScoreWeights            `json:"weights_used"`
}

// SuggestionPriority 建议优先级
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Suggestion 一条改进建议
type Suggestion struct {
	Type          string             `json:"type"` // overall / skills / experience / education / format
	Priority      SuggestionPriority `json:"priority"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	KeywordsToAdd []string           `json:"keywords_to_add"`
}
