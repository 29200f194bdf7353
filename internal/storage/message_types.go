package storage

import "time"

// 简历事件的路由键
const (
	ParsedRoutingKey      = "resume.parsed"       // 解析成功后发布
	ParseFailedRoutingKey = "resume.parse_failed" // 解析失败后发布
)

// ResumeUploadMessage 简历上传消息，由上传接口发布、解析消费者消费
type ResumeUploadMessage struct {
	SubmissionUUID      string    `json:"submission_uuid"`          // 提交UUID，主键
	SubmissionTimestamp time.Time `json:"submission_timestamp"`     // 提交时间戳
	SourceChannel       string    `json:"source_channel,omitempty"` // 来源渠道
	TargetJobID         string    `json:"target_job_id,omitempty"`  // 目标岗位ID
	OriginalFilename    string    `json:"original_filename"`        // 原始文件名
	OriginalFilePathOSS string    `json:"original_file_path_oss"`   // MinIO中的对象路径
	RawFileMD5          string    `json:"raw_file_md5,omitempty"`   // 原始文件的MD5，用于失败时回滚
}

// ResumeParsedMessage 解析完成事件，供下游消费者订阅
type ResumeParsedMessage struct {
	SubmissionUUID   string `json:"submission_uuid"`
	TargetJobID      string `json:"target_job_id,omitempty"`
	ProcessingStatus string `json:"processing_status"`
	ProcessedAt      int64  `json:"processed_at"` // Unix时间戳
	Error            string `json:"error,omitempty"`
}
