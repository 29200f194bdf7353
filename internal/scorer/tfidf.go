package scorer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern 兼顾 c++ / c# / .net 这类带符号的技术词，
// 首选多字符词形，退化为单个字母。
var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#./-]*[a-zA-Z0-9+#]|[a-zA-Z]`)

// tfidfVectorizer 一次性TF-IDF向量化器。
// 每次评分都构造新实例，fitTransform 之间不共享任何状态。
type tfidfVectorizer struct {
	maxFeatures int
	ngramMin    int
	ngramMax    int
	stopwords   map[string]struct{}
}

func newTFIDFVectorizer() *tfidfVectorizer {
	return &tfidfVectorizer{
		maxFeatures: 5000,
		ngramMin:    1,
		ngramMax:    2,
		stopwords:   englishStopwords,
	}
}

// tokenize 切词并过滤停用词，停用词在组ngram之前剔除
func (v *tfidfVectorizer) tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := v.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// terms 按ngram范围展开词项
func (v *tfidfVectorizer) terms(tokens []string) []string {
	out := make([]string, 0, len(tokens)*v.ngramMax)
	for n := v.ngramMin; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// fitTransform 对语料拟合并返回L2归一化的TF-IDF矩阵和按字典序排列的词表。
// idf使用平滑公式 ln((1+n)/(1+df))+1。
func (v *tfidfVectorizer) fitTransform(docs []string) ([][]float64, []string) {
	counts := make([]map[string]int, len(docs))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, term := range v.terms(v.tokenize(doc)) {
			counts[i][term]++
		}
		for term, c := range counts[i] {
			corpusFreq[term] += c
			docFreq[term]++
		}
	}

	vocab := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		vocab = append(vocab, term)
	}

	// 超出特征上限时按语料总词频截断，同频按字典序
	if len(vocab) > v.maxFeatures {
		sort.Slice(vocab, func(a, b int) bool {
			if corpusFreq[vocab[a]] != corpusFreq[vocab[b]] {
				return corpusFreq[vocab[a]] > corpusFreq[vocab[b]]
			}
			return vocab[a] < vocab[b]
		})
		vocab = vocab[:v.maxFeatures]
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j, term := range vocab {
		idf[j] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	matrix := make([][]float64, len(docs))
	for i := range docs {
		row := make([]float64, len(vocab))
		for j, term := range vocab {
			row[j] = float64(counts[i][term]) * idf[j]
		}
		l2Normalize(row)
		matrix[i] = row
	}
	return matrix, vocab
}

func l2Normalize(row []float64) {
	var sum float64
	for _, x := range row {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for j := range row {
		row[j] /= norm
	}
}

// cosineSimilarity 余弦相似度，零向量返回0
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func clamp01(x float64) float64 {
	return math.Max(0.0, math.Min(1.0, x))
}
