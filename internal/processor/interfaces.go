package processor

import (
	"context"

	"resume-ats-go/internal/types"
)

//
// PDF文本提取相关接口
//

// NativeTextExtractor 原生文本层提取接口
type NativeTextExtractor interface {
	// ExtractFromFile 从PDF文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractTextFromBytes 从字节数组提取文本和元数据
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error)
}

// OCRTextExtractor 图像型PDF的OCR回退提取接口
type OCRTextExtractor interface {
	// ExtractTextFromBytes 对PDF字节流逐页栅格化并OCR
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error)
}

//
// 评分相关接口
//

// ResumeScorer 简历与职位描述的匹配评分接口
type ResumeScorer interface {
	// Score 计算匹配评分
	Score(ctx context.Context, parsed *types.ParsedResume, jobDescription string,
		useSemantic bool, weights types.ScoreWeights) (*types.ScoreResult, error)

	// GenerateSuggestions 从评分结果推导改进建议
	GenerateSuggestions(result *types.ScoreResult, parsed *types.ParsedResume) []types.Suggestion
}
