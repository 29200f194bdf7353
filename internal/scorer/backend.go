package scorer

import (
	"context"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/rs/zerolog"

	"resume-ats-go/internal/logger"
	"resume-ats-go/internal/types"
)

// SimilarityBackend 计算两段文本的相似度，取值[0,1]。
// 实现不返回错误，算不出来时降级为0.0。
type SimilarityBackend interface {
	Method() types.ScoringMethod
	Similarity(ctx context.Context, a, b string) float64
}

// LexicalBackend 词法相似度: 两篇文档一起拟合TF-IDF后取余弦
type LexicalBackend struct {
	logger zerolog.Logger
}

func NewLexicalBackend() *LexicalBackend {
	return &LexicalBackend{
		logger: logger.Logger.With().Str("component", "lexical_backend").Logger(),
	}
}

func (b *LexicalBackend) Method() types.ScoringMethod {
	return types.MethodLexical
}

func (b *LexicalBackend) Similarity(_ context.Context, a, c string) float64 {
	left := PreprocessText(a)
	right := PreprocessText(c)
	if left == "" || right == "" {
		return 0.0
	}

	v := newTFIDFVectorizer()
	matrix, features := v.fitTransform([]string{left, right})
	if len(features) == 0 || len(matrix) != 2 {
		b.logger.Warn().Msg("TF-IDF词表为空, 相似度降级为0")
		return 0.0
	}
	return clamp01(cosineSimilarity(matrix[0], matrix[1]))
}

// SemanticBackend 语义相似度: 调用embedding服务后取向量余弦
type SemanticBackend struct {
	embedder embedding.Embedder
	logger   zerolog.Logger
}

func NewSemanticBackend(embedder embedding.Embedder) *SemanticBackend {
	return &SemanticBackend{
		embedder: embedder,
		logger:   logger.Logger.With().Str("component", "semantic_backend").Logger(),
	}
}

func (b *SemanticBackend) Method() types.ScoringMethod {
	return types.MethodSemantic
}

func (b *SemanticBackend) Similarity(ctx context.Context, a, c string) float64 {
	if b.embedder == nil {
		b.logger.Warn().Msg("embedding服务未配置, 相似度降级为0")
		return 0.0
	}

	vectors, err := b.embedder.EmbedStrings(ctx, []string{a, c})
	if err != nil || len(vectors) != 2 {
		b.logger.Warn().Err(err).Msg("embedding计算失败, 相似度降级为0")
		return 0.0
	}
	return clamp01(cosineSimilarity(vectors[0], vectors[1]))
}
