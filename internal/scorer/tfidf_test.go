package scorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLexicalSimilarityIdenticalTexts 相同文本的相似度为1
func TestLexicalSimilarityIdenticalTexts(t *testing.T) {
	text := "python developer building distributed systems with kubernetes"

	b := NewLexicalBackend()
	got := b.Similarity(context.Background(), text, text)

	assert.InDelta(t, 1.0, got, 1e-9)
}

// TestLexicalSimilarityDisjointTexts 完全无交集的文本相似度为0
func TestLexicalSimilarityDisjointTexts(t *testing.T) {
	b := NewLexicalBackend()
	got := b.Similarity(context.Background(), "golang kubernetes docker", "marketing campaign branding")

	assert.InDelta(t, 0.0, got, 1e-9)
}

// TestLexicalSimilarityBounds 相似度始终落在[0,1]
func TestLexicalSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"python react developer", "python engineer wanted"},
		{"short", "a much longer job description about cloud infrastructure and automation"},
		{"data science machine learning", "machine learning engineer with python"},
	}

	b := NewLexicalBackend()
	for _, pair := range pairs {
		got := b.Similarity(context.Background(), pair[0], pair[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

// TestLexicalSimilarityEmptyText 任一侧为空直接降级为0
func TestLexicalSimilarityEmptyText(t *testing.T) {
	b := NewLexicalBackend()
	assert.Zero(t, b.Similarity(context.Background(), "", "python developer"))
	assert.Zero(t, b.Similarity(context.Background(), "python developer", "   "))
}

// TestFitTransformVocabulary 词表含unigram与bigram且按字典序
func TestFitTransformVocabulary(t *testing.T) {
	v := newTFIDFVectorizer()
	matrix, vocab := v.fitTransform([]string{"zebra apple", "apple grape"})

	require.Len(t, matrix, 2)
	assert.Equal(t, []string{"apple", "apple grape", "grape", "zebra", "zebra apple"}, vocab)
}

// TestFitTransformRowsNormalized 每行向量L2范数为1
func TestFitTransformRowsNormalized(t *testing.T) {
	v := newTFIDFVectorizer()
	matrix, _ := v.fitTransform([]string{"python python react", "react angular"})

	for _, row := range matrix {
		var sum float64
		for _, x := range row {
			sum += x * x
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

// TestTokenizeFiltersStopwords 停用词在组ngram前剔除
func TestTokenizeFiltersStopwords(t *testing.T) {
	v := newTFIDFVectorizer()
	tokens := v.tokenize("the python and react for me")

	assert.Equal(t, []string{"python", "react"}, tokens)
}

// TestTokenizeKeepsTechTerms token模式保留技术符号
func TestTokenizeKeepsTechTerms(t *testing.T) {
	v := newTFIDFVectorizer()
	tokens := v.tokenize("c++ c# node.js")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
}

// TestCosineSimilarityZeroVector 零向量不产生NaN
func TestCosineSimilarityZeroVector(t *testing.T) {
	assert.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 2}))
	assert.Zero(t, cosineSimilarity(nil, nil))
}
