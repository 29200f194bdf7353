package scorer

import "strings"

// lemmatize 对名词做轻量词形还原，只处理常见复数后缀。
// 非名词和不规则变形保持原样。
func lemmatize(word string) string {
	if len(word) <= 3 {
		return word
	}
	// 带符号的技术词 (node.js, a/b, c++) 不做还原
	if strings.ContainsAny(word, "+#./-") {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") &&
		!strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us") &&
		!strings.HasSuffix(word, "is"):
		return word[:len(word)-1]
	}
	return word
}
