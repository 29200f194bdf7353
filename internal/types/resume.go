package types

// SectionType 表示简历区段类型
type SectionType string

const (
	// SectionEducation 教育经历区段
	SectionEducation SectionType = "education"
	// SectionExperience 工作经历区段
	SectionExperience SectionType = "experience"
	// SectionSkills 技能区段
	SectionSkills SectionType = "skills"
	// SectionProjects 项目经历区段
	SectionProjects SectionType = "projects"
	// SectionCertifications 证书区段
	SectionCertifications SectionType = "certifications"
)

// SectionMap 按区段类型聚合的文本行
type SectionMap map[SectionType][]string

// ContactInfo 联系方式，每个字段取全文首个匹配
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// EducationEntry 一条教育经历
type EducationEntry struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	GPA          string `json:"gpa,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// ExperienceEntry 一条工作经历
type ExperienceEntry struct {
	Title     string   `json:"title,omitempty"`
	Company   string   `json:"company,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Details   []string `json:"details,omitempty"`
}

// ProjectEntry 一条项目经历
type ProjectEntry struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skills 技能清单，各列表大小写不敏感去重，顺序为首次出现。
// 编程语言并入Technical，Languages保留为人类语言占位。
type Skills struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
}

// ParsedResume 结构化解析结果
type ParsedResume struct {
	Contact    ContactInfo       `json:"contact_info"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     Skills            `json:"skills"`
	Sections   SectionMap        `json:"sections"`
	RawText    string            `json:"raw_text"`
	Filename   string            `json:"filename,omitempty"`
}
