package scorer

import (
	"regexp"
	"sort"
	"strings"
)

var (
	reWhitespaceRun = regexp.MustCompile(`\s+`)
	// 保留 + # . / - 这些出现在技术词里的符号
	reSpecialChars = regexp.MustCompile(`[^\w\s+#./-]`)
)

// PreprocessText 评分前的文本归一化: 小写、折叠空白、
// 清理符号并统一常见技术词写法。
func PreprocessText(text string) string {
	text = strings.ToLower(text)
	text = reWhitespaceRun.ReplaceAllString(text, " ")
	text = reSpecialChars.ReplaceAllString(text, " ")
	for _, norm := range techNormalizations {
		text = strings.ReplaceAll(text, norm.old, norm.new)
	}
	return strings.TrimSpace(text)
}

// ExtractKeywords 从文本提取topN个重要关键词(unigram+bigram)。
// TF-IDF产出为空时退回词频统计。
func ExtractKeywords(text string, topN int) []string {
	processed := PreprocessText(text)

	raw := tokenPattern.FindAllString(processed, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := englishStopwords[tok]; stop {
			continue
		}
		if len(tok) <= 2 {
			continue
		}
		tokens = append(tokens, lemmatize(tok))
	}
	if len(tokens) == 0 {
		return []string{}
	}

	cleanText := strings.Join(tokens, " ")
	v := newTFIDFVectorizer()
	matrix, features := v.fitTransform([]string{cleanText})
	if len(features) == 0 || len(matrix) == 0 {
		return topFrequencyKeywords(tokens, topN)
	}

	scores := matrix[0]
	order := make([]int, len(features))
	for i := range order {
		order[i] = i
	}
	// 同分时保持词表的字典序
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	keywords := make([]string, 0, topN)
	for _, idx := range order {
		if len(keywords) >= topN {
			break
		}
		if scores[idx] > 0 {
			keywords = append(keywords, features[idx])
		}
	}
	return keywords
}

// topFrequencyKeywords 词频兜底，同频按先出现顺序
func topFrequencyKeywords(tokens []string, topN int) []string {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if _, ok := freq[tok]; !ok {
			firstSeen[tok] = i
		}
		freq[tok]++
	}

	uniq := make([]string, 0, len(freq))
	for tok := range freq {
		uniq = append(uniq, tok)
	}
	sort.Slice(uniq, func(a, b int) bool {
		if freq[uniq[a]] != freq[uniq[b]] {
			return freq[uniq[a]] > freq[uniq[b]]
		}
		return firstSeen[uniq[a]] < firstSeen[uniq[b]]
	})

	if len(uniq) > topN {
		uniq = uniq[:topN]
	}
	return uniq
}
