package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrResumeDownloadFailed = errors.New("下载简历失败")
	ErrExtractionFailed     = errors.New("未能从文档提取到有效文本")
	ErrScoringFailed        = errors.New("简历评分失败")
	ErrStoreResultFailed    = errors.New("保存解析结果失败")
	ErrPublishMessageFailed = errors.New("发布消息到解析队列失败")
	ErrUpdateStatusFailed   = errors.New("更新简历状态失败")
	ErrDatabaseFailed       = errors.New("数据库操作失败")
)

// ResumeProcessError 包含详细错误信息的自定义错误
type ResumeProcessError struct {
	SubmissionUUID string
	Op             string
	BaseErr        error
	Detail         string
}

func (e *ResumeProcessError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.SubmissionUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.SubmissionUUID)
}

func (e *ResumeProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ResumeProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// IsExtractionFailure 判断错误是否为文本提取失败。
// 提取失败是文档本身的问题，调用方据此决定是否重试。
func IsExtractionFailure(err error) bool {
	return errors.Is(err, ErrExtractionFailed)
}

// 错误构造函数
func NewDownloadError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "download",
		BaseErr:        ErrResumeDownloadFailed,
		Detail:         detail,
	}
}

func NewExtractionError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "extract",
		BaseErr:        ErrExtractionFailed,
		Detail:         detail,
	}
}

func NewScoringError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "score",
		BaseErr:        ErrScoringFailed,
		Detail:         detail,
	}
}

func NewStoreError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "store",
		BaseErr:        ErrStoreResultFailed,
		Detail:         detail,
	}
}

func NewPublishError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "publish",
		BaseErr:        ErrPublishMessageFailed,
		Detail:         detail,
	}
}

func NewUpdateError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "update",
		BaseErr:        ErrUpdateStatusFailed,
		Detail:         detail,
	}
}

func NewDatabaseError(uuid, detail string) error {
	return &ResumeProcessError{
		SubmissionUUID: uuid,
		Op:             "database",
		BaseErr:        ErrDatabaseFailed,
		Detail:         detail,
	}
}
