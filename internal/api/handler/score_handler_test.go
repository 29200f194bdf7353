package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/config"
)

func TestHandleScoreRequestValidation(t *testing.T) {
	h := NewScoreHandler(&config.Config{}, nil, nil)

	t.Run("缺少submission_uuid", func(t *testing.T) {
		_, err := h.HandleScoreRequest(context.Background(), &ScoreRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "submission_uuid")
	})

	t.Run("缺少JD来源", func(t *testing.T) {
		_, err := h.HandleScoreRequest(context.Background(), &ScoreRequest{
			SubmissionUUID: "0190a1b2-0000-7000-8000-000000000001",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "job_id")
	})
}

func TestHandleCreateJobValidation(t *testing.T) {
	h := NewScoreHandler(&config.Config{}, nil, nil)

	cases := []struct {
		name string
		req  CreateJobRequest
	}{
		{"空标题", CreateJobRequest{JobDescription: "负责后端服务开发"}},
		{"空描述", CreateJobRequest{JobTitle: "Go开发工程师"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.HandleCreateJob(context.Background(), &tc.req)
			assert.Error(t, err)
		})
	}
}
