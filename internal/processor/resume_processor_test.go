package processor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

// stubNativeExtractor 原生提取器桩
type stubNativeExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubNativeExtractor) ExtractFromFile(_ context.Context, _ string) (string, map[string]interface{}, error) {
	s.calls++
	return s.text, nil, s.err
}

func (s *stubNativeExtractor) ExtractTextFromBytes(_ context.Context, _ []byte, _ string, _ map[string]interface{}) (string, map[string]interface{}, error) {
	s.calls++
	return s.text, nil, s.err
}

// stubOCRExtractor OCR提取器桩
type stubOCRExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubOCRExtractor) ExtractTextFromBytes(_ context.Context, _ []byte, _ string) (string, map[string]interface{}, error) {
	s.calls++
	return s.text, nil, s.err
}

const sampleResumeText = `John Doe
john.doe@example.com
EDUCATION
BS Computer Science GPA: 3.8
WORK EXPERIENCE
Software Engineer
Acme Corp
SKILLS
Python and Docker`

// TestExtractTextNativePath 原生路径产出充足时不触发OCR
func TestExtractTextNativePath(t *testing.T) {
	native := &stubNativeExtractor{
		text: strings.Repeat("professional summary building backend services ", 4),
	}
	ocr := &stubOCRExtractor{text: "should not be used"}

	p := NewResumeProcessor(WithNativeExtractor(native), WithOCRExtractor(ocr))
	text, err := p.ExtractText(context.Background(), []byte("pdf"), "resume.pdf")

	require.NoError(t, err)
	assert.Contains(t, text, "professional summary")
	assert.Equal(t, 1, native.calls)
	assert.Zero(t, ocr.calls, "原生路径成功时不应调用OCR")
}

// TestExtractTextOCRFallbackOnShortNative 原生文本过少时回退OCR
func TestExtractTextOCRFallbackOnShortNative(t *testing.T) {
	native := &stubNativeExtractor{text: "too short"}
	ocr := &stubOCRExtractor{
		text: strings.Repeat("scanned resume text recovered by ocr ", 3),
	}

	p := NewResumeProcessor(WithNativeExtractor(native), WithOCRExtractor(ocr))
	text, err := p.ExtractText(context.Background(), []byte("pdf"), "resume.pdf")

	require.NoError(t, err)
	assert.Contains(t, text, "scanned resume text")
	assert.Equal(t, 1, ocr.calls)
}

// TestExtractTextOCRFallbackOnNativeError 原生路径报错时回退OCR
func TestExtractTextOCRFallbackOnNativeError(t *testing.T) {
	native := &stubNativeExtractor{err: errors.New("encrypted pdf")}
	ocr := &stubOCRExtractor{
		text: strings.Repeat("scanned resume text recovered by ocr ", 3),
	}

	p := NewResumeProcessor(WithNativeExtractor(native), WithOCRExtractor(ocr))
	_, err := p.ExtractText(context.Background(), []byte("pdf"), "resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, 1, ocr.calls)
}

// TestExtractTextNativeWithoutLetters 纯数字的原生产出不被接受
func TestExtractTextNativeWithoutLetters(t *testing.T) {
	native := &stubNativeExtractor{text: strings.Repeat("0123456789", 20)}
	ocr := &stubOCRExtractor{
		text: strings.Repeat("scanned resume text recovered by ocr ", 3),
	}

	p := NewResumeProcessor(WithNativeExtractor(native), WithOCRExtractor(ocr))
	text, err := p.ExtractText(context.Background(), []byte("pdf"), "resume.pdf")

	require.NoError(t, err)
	assert.Contains(t, text, "scanned resume text")
}

// TestExtractTextBothPathsFail 双路径都失败时报提取错误
func TestExtractTextBothPathsFail(t *testing.T) {
	native := &stubNativeExtractor{err: errors.New("broken pdf")}
	ocr := &stubOCRExtractor{text: "tiny"}

	p := NewResumeProcessor(WithNativeExtractor(native), WithOCRExtractor(ocr))
	_, err := p.ExtractText(context.Background(), []byte("pdf"), "resume.pdf")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))
}

// TestParseTextSections 区段切分与字段提取的整体结果
func TestParseTextSections(t *testing.T) {
	p := NewResumeProcessor()
	parsed := p.ParseText(sampleResumeText, "resume.pdf")

	require.Len(t, parsed.Sections, 3)
	assert.Equal(t, []string{"BS Computer Science GPA: 3.8"}, parsed.Sections[types.SectionEducation])
	assert.Equal(t, []string{"Software Engineer", "Acme Corp"}, parsed.Sections[types.SectionExperience])
	assert.Equal(t, []string{"Python and Docker"}, parsed.Sections[types.SectionSkills])

	assert.Equal(t, "John Doe", parsed.Contact.Name)
	assert.Equal(t, "john.doe@example.com", parsed.Contact.Email)

	require.Len(t, parsed.Education, 1)
	assert.Equal(t, "BS", parsed.Education[0].Degree)
	assert.Equal(t, "3.8", parsed.Education[0].GPA)

	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, "Software Engineer", parsed.Experience[0].Title)
	assert.Equal(t, "Acme Corp", parsed.Experience[0].Company)

	assert.Contains(t, parsed.Skills.Technical, "python")
	assert.Equal(t, "resume.pdf", parsed.Filename)
	assert.Equal(t, sampleResumeText, parsed.RawText)
}

// TestParseTextDeterminism 同一文本解析两次结果逐字段相同
func TestParseTextDeterminism(t *testing.T) {
	p := NewResumeProcessor()

	first := p.ParseText(sampleResumeText, "resume.pdf")
	second := p.ParseText(sampleResumeText, "resume.pdf")

	assert.Equal(t, first, second)
}

// TestParseBytesEndToEnd 字节流到结构化简历的完整流程
func TestParseBytesEndToEnd(t *testing.T) {
	native := &stubNativeExtractor{text: sampleResumeText + "\nAdditional summary line with more context about projects and delivery"}

	p := NewResumeProcessor(WithNativeExtractor(native))
	parsed, err := p.ParseBytes(context.Background(), []byte("pdf"), "resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", parsed.Contact.Email)
	assert.NotEmpty(t, parsed.Sections)
}

// TestScoreWrapsErrors 评分错误被包装为统一错误类型
func TestScoreWrapsErrors(t *testing.T) {
	p := NewResumeProcessor()

	_, err := p.Score(context.Background(), nil, "job description", false, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScoringFailed))
}

// TestScoreAndSuggestFlow 解析、评分、建议的串联流程
func TestScoreAndSuggestFlow(t *testing.T) {
	p := NewResumeProcessor()
	parsed := p.ParseText(sampleResumeText, "resume.pdf")

	result, err := p.Score(context.Background(), parsed, "Looking for a Python engineer with Docker experience", false, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 1.0)

	suggestions := p.Suggest(result, parsed)
	assert.NotEmpty(t, suggestions)
}
