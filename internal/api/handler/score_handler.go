package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"

	"resume-ats-go/internal/config"
	"resume-ats-go/internal/logger"
	"resume-ats-go/internal/processor"
	"resume-ats-go/internal/scorer"
	storage2 "resume-ats-go/internal/storage"
	"resume-ats-go/internal/storage/models"
	"resume-ats-go/internal/types"
	"resume-ats-go/pkg/utils"
)

// jdKeywordsTopN 岗位创建时预提取的关键词数量
const jdKeywordsTopN = 100

// ScoreHandler 评分处理器，负责岗位管理与简历评分流程
type ScoreHandler struct {
	cfg             *config.Config
	storage         *storage2.Storage
	processorModule *processor.ResumeProcessor
}

// NewScoreHandler 创建一个新的评分处理器
func NewScoreHandler(
	cfg *config.Config,
	storage *storage2.Storage,
	processorModule *processor.ResumeProcessor,
) *ScoreHandler {
	return &ScoreHandler{
		cfg:             cfg,
		storage:         storage,
		processorModule: processorModule,
	}
}

// ScoreRequest 评分请求。JobID和JobDescription二选一，都提供时以JobID为准。
type ScoreRequest struct {
	SubmissionUUID string             `json:"submission_uuid"`
	JobID          string             `json:"job_id,omitempty"`
	JobDescription string             `json:"job_description,omitempty"`
	UseSemantic    *bool              `json:"use_semantic,omitempty"` // 缺省时取服务配置
	Weights        map[string]float64 `json:"weights,omitempty"`
}

// ScoreResponse 评分响应
type ScoreResponse struct {
	SubmissionUUID string             `json:"submission_uuid"`
	JobID          string             `json:"job_id,omitempty"`
	Result         *types.ScoreResult `json:"result"`
	Suggestions    []types.Suggestion `json:"suggestions"`
	Cached         bool               `json:"cached"`
}

// CreateJobRequest 岗位创建请求
type CreateJobRequest struct {
	JobTitle       string `json:"job_title"`
	Department     string `json:"department,omitempty"`
	Location       string `json:"location,omitempty"`
	JobDescription string `json:"job_description"`
}

// CreateJobResponse 岗位创建响应
type CreateJobResponse struct {
	JobID string `json:"job_id"`
}

// HandleCreateJob 创建岗位并预提取JD关键词
func (h *ScoreHandler) HandleCreateJob(ctx context.Context, req *CreateJobRequest) (*CreateJobResponse, error) {
	if req.JobTitle == "" || req.JobDescription == "" {
		return nil, fmt.Errorf("岗位标题和描述不能为空")
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}

	// 预提取关键词存库，查询侧无需重复计算
	keywords := scorer.ExtractKeywords(req.JobDescription, jdKeywordsTopN)
	keywordsJSON, err := models.StructToJSON(keywords)
	if err != nil {
		return nil, fmt.Errorf("序列化JD关键词失败: %w", err)
	}

	job := &models.Job{
		JobID:              uuidV7.String(),
		JobTitle:           req.JobTitle,
		Department:         req.Department,
		Location:           req.Location,
		JobDescriptionText: req.JobDescription,
		JDKeywordsJSON:     keywordsJSON,
	}
	if err := h.storage.MySQL.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("创建岗位失败: %w", err)
	}

	logger.Info().
		Str("job_id", job.JobID).
		Str("title", job.JobTitle).
		Int("keywords", len(keywords)).
		Msg("岗位创建成功")
	return &CreateJobResponse{JobID: job.JobID}, nil
}

// GetJob 查询岗位记录
func (h *ScoreHandler) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	return h.storage.MySQL.GetJob(ctx, jobID)
}

// HandleScoreRequest 对已解析的提交与岗位描述计算匹配评分。
// 同一提交与同一JD文本的评分结果走Redis缓存。
func (h *ScoreHandler) HandleScoreRequest(ctx context.Context, req *ScoreRequest) (*ScoreResponse, error) {
	if req.SubmissionUUID == "" {
		return nil, fmt.Errorf("submission_uuid不能为空")
	}

	// 1. 解析JD来源
	jobDescription := req.JobDescription
	if req.JobID != "" {
		job, err := h.storage.MySQL.GetJob(ctx, req.JobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("岗位 %s 不存在", req.JobID)
			}
			return nil, fmt.Errorf("查询岗位失败: %w", err)
		}
		jobDescription = job.JobDescriptionText
	}
	if jobDescription == "" {
		return nil, fmt.Errorf("必须提供job_id或job_description")
	}

	// 2. 加载已解析的提交
	submission, err := h.storage.MySQL.GetResumeSubmission(ctx, req.SubmissionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("提交 %s 不存在", req.SubmissionUUID)
		}
		return nil, fmt.Errorf("查询提交记录失败: %w", err)
	}
	if submission.ProcessingStatus != models.StatusParsed {
		return nil, fmt.Errorf("提交 %s 尚未解析完成 (当前状态: %s)", req.SubmissionUUID, submission.ProcessingStatus)
	}

	var parsed types.ParsedResume
	if err := json.Unmarshal(submission.ParsedProfileJSON, &parsed); err != nil {
		return nil, fmt.Errorf("反序列化解析结果失败: %w", err)
	}

	// 3. 评分结果缓存查询，自定义参数的请求不走缓存
	jobTextMD5 := utils.CalculateMD5([]byte(jobDescription))
	cacheable := req.UseSemantic == nil && len(req.Weights) == 0
	if cacheable {
		cachedJSON, err := h.storage.Redis.GetCachedScoreResult(ctx, req.SubmissionUUID, jobTextMD5)
		if err == nil {
			var cached ScoreResponse
			if err := json.Unmarshal([]byte(cachedJSON), &cached); err == nil {
				cached.Cached = true
				return &cached, nil
			}
			logger.Warn().
				Str("submission_uuid", req.SubmissionUUID).
				Msg("评分缓存内容损坏，重新计算")
		} else if err != storage2.ErrNotFound {
			logger.Warn().Err(err).Msg("查询评分缓存失败，继续计算")
		}
	}

	// 4. 计算评分与建议
	useSemantic := h.cfg.Scoring.UseSemantic
	if req.UseSemantic != nil {
		useSemantic = *req.UseSemantic
	}
	var weights types.ScoreWeights
	if len(req.Weights) > 0 {
		weights = types.ScoreWeights(req.Weights)
	}

	result, err := h.processorModule.Score(ctx, &parsed, jobDescription, useSemantic, weights)
	if err != nil {
		return nil, err
	}
	suggestions := h.processorModule.Suggest(result, &parsed)

	resp := &ScoreResponse{
		SubmissionUUID: req.SubmissionUUID,
		JobID:          req.JobID,
		Result:         result,
		Suggestions:    suggestions,
	}

	// 5. 评分记录落库 (仅指定了岗位时)
	if req.JobID != "" {
		if err := h.persistScoreRecord(ctx, req.SubmissionUUID, req.JobID, result, suggestions); err != nil {
			logger.Warn().
				Err(err).
				Str("submission_uuid", req.SubmissionUUID).
				Str("job_id", req.JobID).
				Msg("保存评分记录失败")
		}
	}

	// 6. 写入缓存
	if cacheable {
		if respJSON, err := json.Marshal(resp); err == nil {
			if err := h.storage.Redis.CacheScoreResult(ctx, req.SubmissionUUID, jobTextMD5, string(respJSON)); err != nil {
				logger.Warn().Err(err).Msg("写入评分缓存失败")
			}
		}
	}

	return resp, nil
}

// SuggestionsResponse 建议响应
type SuggestionsResponse struct {
	SubmissionUUID string             `json:"submission_uuid"`
	Suggestions    []types.Suggestion `json:"suggestions"`
}

// HandleSuggestionsRequest 仅返回改进建议，复用评分流程与缓存
func (h *ScoreHandler) HandleSuggestionsRequest(ctx context.Context, req *ScoreRequest) (*SuggestionsResponse, error) {
	scoreResp, err := h.HandleScoreRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	return &SuggestionsResponse{
		SubmissionUUID: scoreResp.SubmissionUUID,
		Suggestions:    scoreResp.Suggestions,
	}, nil
}

// persistScoreRecord 将评分结果写入评分记录表
func (h *ScoreHandler) persistScoreRecord(ctx context.Context, submissionUUID, jobID string,
	result *types.ScoreResult, suggestions []types.Suggestion) error {

	detailsJSON, err := models.StructToJSON(result)
	if err != nil {
		return fmt.Errorf("序列化评分详情失败: %w", err)
	}
	suggestionsJSON, err := models.StructToJSON(suggestions)
	if err != nil {
		return fmt.Errorf("序列化建议失败: %w", err)
	}

	record := &models.ResumeScoreRecord{
		SubmissionUUID:   submissionUUID,
		JobID:            jobID,
		OverallScore:     utils.Float64Ptr(result.OverallScore),
		FinalScore:       utils.Float64Ptr(result.OverallScore),
		ScoringMethod:    string(result.ScoringMethod),
		ScoreDetailsJSON: detailsJSON,
		SuggestionsJSON:  suggestionsJSON,
		ScoredAt:         time.Now(),
	}
	return h.storage.MySQL.SaveScoreRecord(ctx, record)
}

// ListJobScores 按岗位列出评分记录
func (h *ScoreHandler) ListJobScores(ctx context.Context, jobID string, limit int) ([]models.ResumeScoreRecord, error) {
	return h.storage.MySQL.ListScoreRecordsByJob(ctx, jobID, limit)
}
