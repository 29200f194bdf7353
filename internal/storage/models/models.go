package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// 简历提交的处理状态流转
const (
	StatusPendingParsing = "PENDING_PARSING" // 已上传，等待解析
	StatusParsed         = "PARSED"          // 解析成功，结构化结果已落库
	StatusParseFailed    = "PARSE_FAILED"    // 两条提取路径都失败
)

// Job 岗位信息表
type Job struct {
	JobID              string         `gorm:"type:char(36);primaryKey"`
	JobTitle           string         `gorm:"type:varchar(255);not null"`
	Department         string         `gorm:"type:varchar(255)"`
	Location           string         `gorm:"type:varchar(255)"`
	JobDescriptionText string         `gorm:"type:text;not null"`
	JDKeywordsJSON     datatypes.JSON `gorm:"type:json"` // 预提取的JD关键词，避免重复计算
	Status             string         `gorm:"type:varchar(50);default:'ACTIVE';index:idx_jobs_status"`
	CreatedAt          time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt          time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}

// ResumeSubmission 简历提交/快照表
type ResumeSubmission struct {
	SubmissionUUID      string         `gorm:"type:char(36);primaryKey"`
	SubmissionTimestamp time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_rs_submission_timestamp"`
	SourceChannel       string         `gorm:"type:varchar(100)"`
	TargetJobID         *string        `gorm:"type:char(36);index:idx_rs_target_job_id"` // 可空，未指定岗位时仅解析不评分
	OriginalFilename    string         `gorm:"type:varchar(255)"`
	OriginalFilePathOSS string         `gorm:"type:varchar(1024)"`
	RawFileMD5          string         `gorm:"type:char(32);index:idx_rs_raw_file_md5"`
	RawTextMD5          string         `gorm:"type:char(32);index:idx_rs_raw_text_md5"`
	ParsedProfileJSON   datatypes.JSON `gorm:"type:json"` // 结构化解析结果 (联系方式/教育/经历/项目/技能)
	ProcessingStatus    string         `gorm:"type:varchar(50);default:'PENDING_PARSING';index:idx_rs_processing_status"`
	ParserVersion       string         `gorm:"type:varchar(50)"`
	ErrorMessage        string         `gorm:"type:text"` // 解析失败时的错误详情
	CreatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`

	Job *Job `gorm:"foreignKey:TargetJobID;references:JobID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (ResumeSubmission) TableName() string {
	return "resume_submissions"
}

// ResumeScoreRecord 简历与岗位的评分记录表
// (submission_uuid, job_id) 唯一，重复评分覆盖旧记录
type ResumeScoreRecord struct {
	ScoreID          uint64         `gorm:"primaryKey;autoIncrement"`
	SubmissionUUID   string         `gorm:"type:char(36);not null;index:idx_rsr_submission_uuid;uniqueIndex:idx_rsr_submission_job_unique,priority:1"`
	JobID            string         `gorm:"type:char(36);not null;index:idx_rsr_job_id_overall_score,priority:1;uniqueIndex:idx_rsr_submission_job_unique,priority:2"`
	OverallScore     *float64       `gorm:"type:float;index:idx_rsr_job_id_overall_score,priority:2"`
	FinalScore       *float64       `gorm:"type:float"`
	ScoringMethod    string         `gorm:"type:varchar(50)"` // tfidf 或 embedding
	ScoreDetailsJSON datatypes.JSON `gorm:"type:json"`        // 区段得分与关键词差集
	SuggestionsJSON  datatypes.JSON `gorm:"type:json"`
	ScoredAt         time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	CreatedAt        time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt        time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`

	ResumeSubmission *ResumeSubmission `gorm:"foreignKey:SubmissionUUID;references:SubmissionUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Job              *Job              `gorm:"foreignKey:JobID;references:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ResumeScoreRecord) TableName() string {
	return "resume_score_records"
}

// StringToJSON Helper function to convert string to datatypes.JSON
func StringToJSON(s string) datatypes.JSON {
	return datatypes.JSON(s)
}

// MapToJSON Helper function to convert map[string]interface{} to datatypes.JSON
func MapToJSON(m map[string]interface{}) (datatypes.JSON, error) {
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// StructToJSON 将任意可序列化结构转换为 datatypes.JSON
func StructToJSON(v interface{}) (datatypes.JSON, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
