package parser

// 技能词表，按类别组织。词表是进程级只读配置，解析时按引用传入各提取器
var technicalSkillCategories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "c", "go", "rust",
		"ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "perl", "bash",
		"powershell", "sql", "html", "css", "xml", "json",
	},
	"frameworks": {
		"react", "angular", "vue", "nodejs", "express", "django", "flask", "fastapi",
		"spring", "hibernate", "struts", "laravel", "rails", "asp.net", "blazor",
		"xamarin", "flutter", "react native", "ionic", "cordova",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite",
		"oracle", "sql server", "cassandra", "dynamodb", "firebase", "couchdb",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean", "linode",
		"vultr", "cloudflare", "vercel", "netlify",
	},
	"tools": {
		"docker", "kubernetes", "jenkins", "git", "github", "gitlab", "bitbucket",
		"jira", "confluence", "slack", "teams", "zoom", "figma", "sketch",
		"photoshop", "illustrator", "indesign",
	},
	"data_science": {
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"matplotlib", "seaborn", "plotly", "jupyter", "tableau", "power bi",
		"excel", "spss", "sas", "stata",
	},
}

// allTechnicalSkills 所有类别平铺后的技术技能列表
var allTechnicalSkills = flattenSkillCategories()

func flattenSkillCategories() []string {
	// 按固定类别顺序平铺，保证输出顺序确定
	categoryOrder := []string{
		"programming_languages", "frameworks", "databases",
		"cloud_platforms", "tools", "data_science",
	}
	var all []string
	for _, category := range categoryOrder {
		all = append(all, technicalSkillCategories[category]...)
	}
	return all
}

// 编程语言补充列表，技能区段之外也常出现
var programmingLanguages = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "r", "matlab",
}

// softSkills 软技能词表
var softSkills = []string{
	"communication", "leadership", "teamwork", "problem solving", "critical thinking",
	"analytical", "creative", "detail oriented", "organized", "time management",
	"project management", "agile", "scrum", "kanban", "waterfall",
}

// certificationKeywords 证书词表
var certificationKeywords = []string{
	"aws certified", "azure certified", "google cloud certified", "cisco certified",
	"pmp", "scrum master", "product owner", "itil", "comptia", "cissp", "ceh",
	"cisa", "cism", "ccna", "ccnp", "mcse", "mcsa", "rhcsa", "rhce",
}
