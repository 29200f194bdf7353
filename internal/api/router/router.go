package router

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"
	"gorm.io/gorm"

	"resume-ats-go/internal/api/handler"
	"resume-ats-go/internal/config"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config,
	resumeHandler *handler.ResumeHandler, scoreHandler *handler.ScoreHandler) {

	api := h.Group("/api/v1")

	// 配置了API Key时启用鉴权，健康检查不在分组内不受影响
	if cfg.Server.APIKey != "" {
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
				return key == cfg.Server.APIKey, nil
			}),
		))
	}

	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		// 获取目标岗位ID
		targetJobID := ctx.PostForm("target_job_id")
		// 获取来源渠道
		sourceChannel := ctx.PostForm("source_channel")
		if sourceChannel == "" {
			sourceChannel = "web_upload" // 默认值
		}

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		// 处理上传
		resp, err := resumeHandler.HandleResumeUpload(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
			targetJobID,
			sourceChannel,
		)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/resume/:submission_uuid", func(c context.Context, ctx *app.RequestContext) {
		submissionUUID := ctx.Param("submission_uuid")
		submission, err := resumeHandler.GetSubmission(c, submissionUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": "提交记录不存在"})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, submission)
	})

	api.POST("/jobs", func(c context.Context, ctx *app.RequestContext) {
		var req handler.CreateJobRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		resp, err := scoreHandler.HandleCreateJob(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/jobs/:job_id", func(c context.Context, ctx *app.RequestContext) {
		job, err := scoreHandler.GetJob(c, ctx.Param("job_id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": "岗位不存在"})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, job)
	})

	api.GET("/jobs/:job_id/scores", func(c context.Context, ctx *app.RequestContext) {
		limit := 50
		if v := ctx.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}
		records, err := scoreHandler.ListJobScores(c, ctx.Param("job_id"), limit)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"job_id": ctx.Param("job_id"), "scores": records})
	})

	api.POST("/resume/score", func(c context.Context, ctx *app.RequestContext) {
		var req handler.ScoreRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		resp, err := scoreHandler.HandleScoreRequest(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/suggestions", func(c context.Context, ctx *app.RequestContext) {
		var req handler.ScoreRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		resp, err := scoreHandler.HandleSuggestionsRequest(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/:submission_uuid/reparse", func(c context.Context, ctx *app.RequestContext) {
		resp, err := resumeHandler.ReparseSubmission(c, ctx.Param("submission_uuid"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": "提交记录不存在"})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	// 健康检查不需要鉴权
	h.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
