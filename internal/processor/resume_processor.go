package processor // 简历处理的核心编排逻辑

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/logger"
	parser2 "resume-ats-go/internal/parser"
	"resume-ats-go/internal/scorer"
	"resume-ats-go/internal/tracing"
	"resume-ats-go/internal/types"
)

// ResumeProcessor 简历处理组件聚合类。
// 提取器通过接口注入，切分与字段提取器是无状态的纯函数组件，
// 构造时装配一次后只读共享。
type ResumeProcessor struct {
	Native NativeTextExtractor
	OCR    OCRTextExtractor
	Scorer ResumeScorer

	segmenter  *parser2.SectionSegmenter
	contact    *parser2.ContactExtractor
	education  *parser2.EducationExtractor
	experience *parser2.ExperienceExtractor
	projects   *parser2.ProjectExtractor
	skills     *parser2.SkillExtractor

	logger zerolog.Logger
}

// ProcessorOption 处理器配置选项
type ProcessorOption func(*ResumeProcessor)

// WithNativeExtractor 注入原生文本层提取器
func WithNativeExtractor(extractor NativeTextExtractor) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.Native = extractor
	}
}

// WithOCRExtractor 注入OCR回退提取器
func WithOCRExtractor(extractor OCRTextExtractor) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.OCR = extractor
	}
}

// WithScorer 注入评分器
func WithScorer(s ResumeScorer) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.Scorer = s
	}
}

// WithProcessorLogger 配置自定义日志记录器
func WithProcessorLogger(l zerolog.Logger) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.logger = l
	}
}

// NewResumeProcessor 创建新的简历处理器
func NewResumeProcessor(options ...ProcessorOption) *ResumeProcessor {
	segmenter := parser2.NewSectionSegmenter()

	p := &ResumeProcessor{
		Scorer:     scorer.NewATSScorer(),
		segmenter:  segmenter,
		contact:    parser2.NewContactExtractor(),
		education:  parser2.NewEducationExtractor(segmenter),
		experience: parser2.NewExperienceExtractor(segmenter),
		projects:   parser2.NewProjectExtractor(),
		skills:     parser2.NewSkillExtractor(),
		logger:     logger.Logger.With().Str("component", "resume_processor").Logger(),
	}

	for _, option := range options {
		option(p)
	}

	if p.Native == nil && p.OCR == nil {
		p.logger.Warn().Msg("未注入任何文本提取器, Parse操作将不可用")
	}

	return p
}

// Parse 解析磁盘上的简历文档
func (p *ResumeProcessor) Parse(ctx context.Context, documentPath string, filename string) (*types.ParsedResume, error) {
	data, err := os.ReadFile(documentPath)
	if err != nil {
		return nil, NewExtractionError(filename, fmt.Sprintf("读取文件失败: %v", err))
	}
	return p.ParseBytes(ctx, data, filename)
}

// ParseBytes 解析内存中的简历文档字节流
func (p *ResumeProcessor) ParseBytes(ctx context.Context, data []byte, filename string) (*types.ParsedResume, error) {
	text, err := p.ExtractText(ctx, data, filename)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text, filename), nil
}

// ExtractText 双路径提取: 优先原生文本层，失败或产出过少时回退OCR。
// 原生结果要求超过100个有效字符且含字母; OCR结果要求至少50个非空白字符。
func (p *ResumeProcessor) ExtractText(ctx context.Context, data []byte, uri string) (string, error) {
	if p.Native != nil {
		text, _, err := p.Native.ExtractTextFromBytes(ctx, data, uri, nil)
		if err != nil {
			p.logger.Warn().Err(err).Str("uri", uri).Msg("原生文本提取失败, 尝试OCR回退")
		} else if len(strings.TrimSpace(text)) > constants.NativeTextMinChars && containsLetter(text) {
			p.logger.Debug().Str("uri", uri).Int("chars", len(text)).Msg("原生文本提取成功")
			return parser2.CleanExtractedText(text), nil
		} else {
			p.logger.Info().Str("uri", uri).Int("chars", len(text)).Msg("原生文本过少, 尝试OCR回退")
		}
	}

	if p.OCR != nil {
		text, _, err := p.OCR.ExtractTextFromBytes(ctx, data, uri)
		if err != nil {
			p.logger.Warn().Err(err).Str("uri", uri).Msg("OCR提取失败")
		} else if countNonWhitespace(text) >= constants.OCRTextMinChars {
			p.logger.Debug().Str("uri", uri).Int("chars", len(text)).Msg("OCR提取成功")
			return parser2.CleanExtractedText(text), nil
		}
	}

	return "", NewExtractionError(uri, "两条提取路径都未产出有效文本")
}

// ParseText 将清洗后的纯文本解析为结构化简历。
// 纯函数, 相同输入产出逐字段相同的结果。
func (p *ResumeProcessor) ParseText(text string, filename string) *types.ParsedResume {
	sections := p.segmenter.IdentifySections(text)

	contact := p.contact.Extract(text)
	// 联系方式属于PII, 日志中只输出掩码后的值
	p.logger.Debug().
		Str("filename", filename).
		Str("email", tracing.MaskPII(contact.Email)).
		Str("phone", tracing.MaskPII(contact.Phone)).
		Int("sections", len(sections)).
		Msg("简历结构化解析完成")

	return &types.ParsedResume{
		Contact:    contact,
		Education:  p.education.Extract(sections[types.SectionEducation], text),
		Experience: p.experience.Extract(sections[types.SectionExperience], text),
		Projects:   p.projects.Extract(sections[types.SectionProjects]),
		Skills:     p.skills.Extract(sections[types.SectionSkills], text),
		Sections:   sections,
		RawText:    text,
		Filename:   filename,
	}
}

// Score 对解析结果与职位描述计算匹配评分
func (p *ResumeProcessor) Score(ctx context.Context, parsed *types.ParsedResume, jobDescription string,
	useSemantic bool, weights types.ScoreWeights) (*types.ScoreResult, error) {

	if p.Scorer == nil {
		return nil, NewScoringError("", "评分器未初始化")
	}

	result, err := p.Scorer.Score(ctx, parsed, jobDescription, useSemantic, weights)
	if err != nil {
		identifier := ""
		if parsed != nil {
			identifier = parsed.Filename
		}
		return nil, NewScoringError(identifier, err.Error())
	}
	return result, nil
}

// Suggest 从评分结果推导改进建议
func (p *ResumeProcessor) Suggest(result *types.ScoreResult, parsed *types.ParsedResume) []types.Suggestion {
	if p.Scorer == nil {
		return []types.Suggestion{}
	}
	return p.Scorer.GenerateSuggestions(result, parsed)
}

func containsLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func countNonWhitespace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
