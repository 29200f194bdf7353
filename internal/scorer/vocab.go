package scorer

import "regexp"

// englishStopwords 英文停用词表 (NLTK english)
var englishStopwords = map[string]struct{}{}

func init() {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
		"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
		"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
		"hers", "herself", "it", "it's", "its", "itself", "they", "them",
		"their", "theirs", "themselves", "what", "which", "who", "whom",
		"this", "that", "that'll", "these", "those", "am", "is", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "having",
		"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
		"or", "because", "as", "until", "while", "of", "at", "by", "for",
		"with", "about", "against", "between", "into", "through", "during",
		"before", "after", "above", "below", "to", "from", "up", "down",
		"in", "out", "on", "off", "over", "under", "again", "further",
		"then", "once", "here", "there", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other",
		"some", "such", "no", "nor", "not", "only", "own", "same", "so",
		"than", "too", "very", "s", "t", "can", "will", "just", "don",
		"don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
		"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
		"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
		"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
		"mustn", "mustn't", "needn", "needn't", "shan", "shan't",
		"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't",
		"won", "won't", "wouldn", "wouldn't",
	}
	for _, w := range words {
		englishStopwords[w] = struct{}{}
	}
}

// techNormalizations 常见技术词的书写归一化，按固定顺序应用
var techNormalizations = []struct {
	old string
	new string
}{
	{"c plus plus", "c++"},
	{"c sharp", "c#"},
	{"dot net", ".net"},
	{"javascript", "js"},
	{"typescript", "ts"},
	{"postgresql", "postgres"},
	{"amazon web services", "aws"},
	{"google cloud platform", "gcp"},
}

// impactWords 体现行动与成果的动词，经历区段按出现次数加分
var impactWords = []string{
	"achieved", "improved", "increased", "decreased", "reduced", "optimized",
	"streamlined", "developed", "created", "implemented", "launched", "led",
	"managed", "delivered", "designed", "built", "enhanced", "automated",
	"scaled", "grew", "exceeded", "outperformed", "transformed", "innovated",
}

// metricsPatterns 量化成果的匹配模式
var metricsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+x`),
	regexp.MustCompile(`\d+\+`),
	regexp.MustCompile(`\d+ million`),
	regexp.MustCompile(`\d+ thousand`),
	regexp.MustCompile(`\d+ users`),
	regexp.MustCompile(`\d+ customers`),
	regexp.MustCompile(`\d+ hours`),
	regexp.MustCompile(`\d+ days`),
	regexp.MustCompile(`\d+ weeks`),
}

// jobCategoryKeywords 按岗位类别组织的关键词库
type jobCategoryKeywords struct {
	Required        []string
	TechnicalSkills []string
	SoftSkills      []string
}

// jobKeywords 技能区段加分时统计各类别technical_skills的命中次数，
// 同一技能出现在多个类别会被重复计数。
var jobKeywords = map[string]jobCategoryKeywords{
	"software_engineering": {
		Required: []string{
			"programming", "coding", "development", "software", "application",
			"algorithm", "data structure", "debugging", "testing", "version control",
		},
		TechnicalSkills: []string{
			"python", "java", "javascript", "c++", "c#", "go", "rust", "ruby",
			"react", "angular", "vue", "nodejs", "express", "django", "flask",
			"mysql", "postgresql", "mongodb", "redis", "aws", "azure", "docker",
			"kubernetes", "git", "jenkins", "agile", "scrum", "rest api", "graphql",
		},
		SoftSkills: []string{
			"problem solving", "analytical thinking", "teamwork", "communication",
			"collaboration", "leadership", "mentoring", "code review",
		},
	},
	"data_science": {
		Required: []string{
			"data analysis", "machine learning", "statistics", "modeling",
			"data visualization", "analytics", "insights", "research",
		},
		TechnicalSkills: []string{
			"python", "r", "sql", "pandas", "numpy", "scikit-learn", "tensorflow",
			"pytorch", "keras", "matplotlib", "seaborn", "tableau", "power bi",
			"jupyter", "spark", "hadoop", "aws", "azure", "gcp",
		},
		SoftSkills: []string{
			"analytical thinking", "problem solving", "communication",
			"business acumen", "storytelling", "presentation",
		},
	},
	"product_management": {
		Required: []string{
			"product strategy", "roadmap", "requirements", "stakeholder",
			"user experience", "market research", "competitive analysis",
		},
		TechnicalSkills: []string{
			"jira", "confluence", "figma", "sketch", "analytics", "sql",
			"a/b testing", "user research", "wireframing", "prototyping",
		},
		SoftSkills: []string{
			"leadership", "communication", "strategic thinking", "prioritization",
			"collaboration", "negotiation", "influence", "decision making",
		},
	},
	"marketing": {
		Required: []string{
			"marketing strategy", "brand management", "campaign", "content",
			"social media", "digital marketing", "analytics", "roi",
		},
		TechnicalSkills: []string{
			"google analytics", "facebook ads", "google ads", "hubspot",
			"salesforce", "mailchimp", "hootsuite", "canva", "photoshop",
			"seo", "sem", "email marketing", "content management",
		},
		SoftSkills: []string{
			"creativity", "communication", "analytical thinking",
			"project management", "collaboration", "adaptability",
		},
	},
}
