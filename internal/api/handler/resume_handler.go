package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gofrs/uuid/v5"

	"resume-ats-go/internal/config"
	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/logger"
	"resume-ats-go/internal/processor"
	storage2 "resume-ats-go/internal/storage"
	"resume-ats-go/internal/storage/models"
	"resume-ats-go/pkg/utils"
)

// ResumeHandler 简历处理器，负责协调上传、去重、入队与解析落库的流程
type ResumeHandler struct {
	cfg             *config.Config
	storage         *storage2.Storage
	processorModule *processor.ResumeProcessor
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(
	cfg *config.Config,
	storage *storage2.Storage,
	processorModule *processor.ResumeProcessor,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:             cfg,
		storage:         storage,
		processorModule: processorModule,
	}
}

// ResumeUploadResponse 简历上传响应
type ResumeUploadResponse struct {
	SubmissionUUID string `json:"submission_uuid"`
	Status         string `json:"status"`
}

// HandleResumeUpload 处理简历上传请求。
// 文件MD5重复时不重新处理，直接返回已存在的提交UUID。
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, reader io.Reader, fileSize int64,
	filename string, targetJobID string, sourceChannel string) (*ResumeUploadResponse, error) {

	// 0. 读取文件内容并计算MD5 (reader只能读一次，需要在上传MinIO前完成)
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	fileMD5Hex := utils.CalculateMD5(fileBytes)

	// 1. 生成UUIDv7，时间有序便于按提交时间排序
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	// 2. 原子检查并注册文件MD5
	exists, existingUUID, err := h.storage.Redis.CheckAndRegisterFileMD5(ctx, fileMD5Hex, submissionUUID)
	if err != nil {
		// 去重是重要逻辑，Redis查询失败时报错而不是放行
		logger.Error().
			Err(err).
			Str("md5", fileMD5Hex).
			Msg("查询Redis文件MD5失败")
		return nil, fmt.Errorf("检查文件MD5重复性时Redis查询失败: %w", err)
	}
	if exists {
		logger.Info().
			Str("md5", fileMD5Hex).
			Str("filename", filename).
			Str("existing_uuid", existingUUID).
			Msg("检测到重复的文件MD5，跳过处理")
		return &ResumeUploadResponse{
			SubmissionUUID: existingUUID,
			Status:         "DUPLICATE_FILE_SKIPPED",
		}, nil
	}

	// 3. 上传原始文件到MinIO
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf"
	}
	originalObjectKey, err := h.storage.MinIO.UploadResumeFile(ctx, submissionUUID, ext, bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		// 上传失败时回滚MD5注册，否则该文件将永远无法重新提交
		if rbErr := h.storage.Redis.RemoveFileMD5(ctx, fileMD5Hex); rbErr != nil {
			logger.Warn().Err(rbErr).Str("md5", fileMD5Hex).Msg("回滚文件MD5注册失败")
		}
		return nil, fmt.Errorf("上传简历到MinIO失败: %w", err)
	}

	// 4. 构建消息并发送到RabbitMQ
	message := storage2.ResumeUploadMessage{
		SubmissionUUID:      submissionUUID,
		OriginalFilePathOSS: originalObjectKey,
		OriginalFilename:    filename,
		TargetJobID:         targetJobID,
		SourceChannel:       sourceChannel,
		RawFileMD5:          fileMD5Hex,
		SubmissionTimestamp: time.Now(),
	}

	err = h.storage.RabbitMQ.PublishJSON(
		ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.UploadedRoutingKey,
		message,
		true, // 持久化
	)
	if err != nil {
		if rbErr := h.storage.Redis.RemoveFileMD5(ctx, fileMD5Hex); rbErr != nil {
			logger.Warn().Err(rbErr).Str("md5", fileMD5Hex).Msg("回滚文件MD5注册失败")
		}
		return nil, fmt.Errorf("发布消息到RabbitMQ失败: %w", err)
	}

	return &ResumeUploadResponse{
		SubmissionUUID: submissionUUID,
		Status:         "SUBMITTED_FOR_PROCESSING",
	}, nil
}

// StartResumeUploadConsumer 启动简历上传消费者，消费消息并执行解析流水线
func (h *ResumeHandler) StartResumeUploadConsumer(ctx context.Context, prefetchCount int) error {
	logger.Info().
		Str("exchange", h.cfg.RabbitMQ.ResumeEventsExchange).
		Str("routing_key", h.cfg.RabbitMQ.UploadedRoutingKey).
		Msg("初始化RabbitMQ拓扑")

	// 1. 确保交换机和队列存在
	if err := h.storage.RabbitMQ.EnsureExchange(h.cfg.RabbitMQ.ResumeEventsExchange, "direct", true); err != nil {
		return fmt.Errorf("确保交换机存在失败: %w", err)
	}
	if err := h.storage.RabbitMQ.EnsureQueue(h.cfg.RabbitMQ.RawResumeQueue, true); err != nil {
		return fmt.Errorf("确保队列存在失败: %w", err)
	}
	if err := h.storage.RabbitMQ.BindQueue(
		h.cfg.RabbitMQ.RawResumeQueue,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.UploadedRoutingKey,
	); err != nil {
		return fmt.Errorf("绑定队列失败: %w", err)
	}

	logger.Info().
		Str("queue", h.cfg.RabbitMQ.RawResumeQueue).
		Int("prefetch_count", prefetchCount).
		Msg("简历上传消费者就绪")

	// 2. 启动消费者
	_, err := h.storage.RabbitMQ.StartConsumer(h.cfg.RabbitMQ.RawResumeQueue, prefetchCount, func(data []byte) bool {
		var message storage2.ResumeUploadMessage
		if err := json.Unmarshal(data, &message); err != nil {
			logger.Error().Err(err).Msg("解析消息失败")
			// 消息格式损坏，重新入队也无法恢复
			return true
		}

		submission := &models.ResumeSubmission{
			SubmissionUUID:      message.SubmissionUUID,
			OriginalFilePathOSS: message.OriginalFilePathOSS,
			OriginalFilename:    message.OriginalFilename,
			TargetJobID:         utils.StringPtr(message.TargetJobID),
			SourceChannel:       message.SourceChannel,
			RawFileMD5:          message.RawFileMD5,
			SubmissionTimestamp: message.SubmissionTimestamp,
			ProcessingStatus:    models.StatusPendingParsing,
		}
		if err := h.storage.MySQL.CreateResumeSubmission(ctx, submission); err != nil {
			logger.Error().Err(err).Str("submission_uuid", message.SubmissionUUID).Msg("插入简历提交记录失败")
			return false
		}

		if err := h.ProcessUploadedResume(ctx, message); err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", message.SubmissionUUID).
				Msg("处理简历失败")

			if processor.IsExtractionFailure(err) {
				// 提取失败是文档本身的问题，重试无意义，标记失败并确认消息
				h.markParseFailed(ctx, message, err)
				return true
			}
			// 基础设施错误 (MinIO/MySQL等)，重新入队重试
			return false
		}

		return true
	})

	if err != nil {
		return fmt.Errorf("启动消费者失败: %w", err)
	}

	return nil
}

// ProcessUploadedResume 执行单条消息的解析流水线:
// 下载原始文件 -> 双路径提取 -> 结构化解析 -> 落库 -> 发布解析完成事件
func (h *ResumeHandler) ProcessUploadedResume(ctx context.Context, message storage2.ResumeUploadMessage) error {
	if h.processorModule == nil {
		return fmt.Errorf("简历处理器组件未初始化")
	}

	// 1. 从MinIO下载原始文件内容
	fileContentBytes, err := h.storage.MinIO.GetResumeFile(ctx, message.OriginalFilePathOSS)
	if err != nil {
		return fmt.Errorf("从MinIO获取简历文件失败: %w", err)
	}

	// 2. 双路径提取 + 结构化解析
	parsed, err := h.processorModule.ParseBytes(ctx, fileContentBytes, message.OriginalFilename)
	if err != nil {
		return err
	}

	// 3. 序列化结构化结果并落库
	profileJSON, err := models.StructToJSON(parsed)
	if err != nil {
		return fmt.Errorf("序列化解析结果失败: %w", err)
	}
	textMD5Hex := utils.CalculateMD5([]byte(parsed.RawText))

	if err := h.storage.MySQL.SaveParsedProfile(ctx, message.SubmissionUUID, profileJSON, textMD5Hex, constants.DefaultParserVer); err != nil {
		return fmt.Errorf("保存解析结果失败: %w", err)
	}

	// 4. 发布解析完成事件，供下游订阅
	parsedEvent := storage2.ResumeParsedMessage{
		SubmissionUUID:   message.SubmissionUUID,
		TargetJobID:      message.TargetJobID,
		ProcessingStatus: models.StatusParsed,
		ProcessedAt:      time.Now().Unix(),
	}
	if err := h.storage.RabbitMQ.PublishJSON(
		ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		storage2.ParsedRoutingKey,
		parsedEvent,
		true,
	); err != nil {
		// 落库已成功，事件发布失败只记录不回滚
		logger.Warn().
			Err(err).
			Str("submission_uuid", message.SubmissionUUID).
			Msg("发布解析完成事件失败")
	}

	logger.Info().
		Str("submission_uuid", message.SubmissionUUID).
		Str("filename", message.OriginalFilename).
		Int("sections", len(parsed.Sections)).
		Msg("简历解析完成")
	return nil
}

// markParseFailed 标记提交为解析失败并广播失败事件
func (h *ResumeHandler) markParseFailed(ctx context.Context, message storage2.ResumeUploadMessage, cause error) {
	if err := h.storage.MySQL.MarkResumeParseFailed(ctx, message.SubmissionUUID, cause.Error()); err != nil {
		logger.Error().
			Err(err).
			Str("submission_uuid", message.SubmissionUUID).
			Msg("更新简历状态为PARSE_FAILED失败")
	}

	failedEvent := storage2.ResumeParsedMessage{
		SubmissionUUID:   message.SubmissionUUID,
		TargetJobID:      message.TargetJobID,
		ProcessingStatus: models.StatusParseFailed,
		ProcessedAt:      time.Now().Unix(),
		Error:            cause.Error(),
	}
	if err := h.storage.RabbitMQ.PublishJSON(
		ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		storage2.ParseFailedRoutingKey,
		failedEvent,
		true,
	); err != nil {
		logger.Warn().
			Err(err).
			Str("submission_uuid", message.SubmissionUUID).
			Msg("发布解析失败事件失败")
	}
}

// GetSubmission 查询提交记录，供状态轮询接口使用
func (h *ResumeHandler) GetSubmission(ctx context.Context, submissionUUID string) (*models.ResumeSubmission, error) {
	return h.storage.MySQL.GetResumeSubmission(ctx, submissionUUID)
}

// ReparseSubmission 对已存在的提交重新触发解析，整体覆盖旧的解析结果。
// 解析器升级后用于刷新存量数据。
func (h *ResumeHandler) ReparseSubmission(ctx context.Context, submissionUUID string) (*ResumeUploadResponse, error) {
	submission, err := h.storage.MySQL.GetResumeSubmission(ctx, submissionUUID)
	if err != nil {
		return nil, err
	}

	if err := h.storage.MySQL.UpdateResumeProcessingStatus(ctx, submissionUUID, models.StatusPendingParsing); err != nil {
		return nil, fmt.Errorf("重置处理状态失败: %w", err)
	}

	message := storage2.ResumeUploadMessage{
		SubmissionUUID:      submission.SubmissionUUID,
		OriginalFilePathOSS: submission.OriginalFilePathOSS,
		OriginalFilename:    submission.OriginalFilename,
		SourceChannel:       submission.SourceChannel,
		RawFileMD5:          submission.RawFileMD5,
		SubmissionTimestamp: submission.SubmissionTimestamp,
	}
	if submission.TargetJobID != nil {
		message.TargetJobID = *submission.TargetJobID
	}

	if err := h.storage.RabbitMQ.PublishJSON(
		ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.UploadedRoutingKey,
		message,
		true,
	); err != nil {
		return nil, fmt.Errorf("发布重新解析消息失败: %w", err)
	}

	logger.Info().Str("submission_uuid", submissionUUID).Msg("已触发重新解析")
	return &ResumeUploadResponse{
		SubmissionUUID: submissionUUID,
		Status:         "RESUBMITTED_FOR_PROCESSING",
	}, nil
}
