package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractContactInfo 验证各联系方式字段的提取
func TestExtractContactInfo(t *testing.T) {
	text := `John Doe
Seattle, WA 98101
john.doe@example.com | (206) 555-1234
linkedin.com/in/johndoe | github.com/johndoe
`

	c := NewContactExtractor()
	info := c.Extract(text)

	assert.Equal(t, "John Doe", info.Name)
	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "(206) 555-1234", info.Phone)
	assert.Equal(t, "linkedin.com/in/johndoe", info.LinkedIn)
	assert.Equal(t, "github.com/johndoe", info.GitHub)
	assert.Equal(t, "Seattle, WA 98101", info.Location)
}

// TestExtractContactInfoFirstMatchWins 验证同类字段取首个匹配
func TestExtractContactInfoFirstMatchWins(t *testing.T) {
	text := "primary@example.com\nsecondary@example.com\n555-123-4567 and 555-999-8888"

	c := NewContactExtractor()
	info := c.Extract(text)

	assert.Equal(t, "primary@example.com", info.Email)
	assert.Equal(t, "555-123-4567", info.Phone)
}

// TestExtractNameHeuristics 验证姓名启发式的各个闸门
func TestExtractNameHeuristics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "两个首字母大写的单词",
			text: "Jane Smith\nEngineer",
			want: "Jane Smith",
		},
		{
			name: "含@的行被跳过",
			text: "jane@example.com\nJane Smith",
			want: "Jane Smith",
		},
		{
			name: "单个单词不算姓名",
			text: "Jane\nnobody here",
			want: "",
		},
		{
			name: "小写开头的单词不算姓名",
			text: "jane smith\nnothing else",
			want: "",
		},
		{
			name: "超过四个单词不算姓名",
			text: "This Line Has Five Words Here\nnothing",
			want: "",
		},
	}

	c := NewContactExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := c.Extract(tt.text)
			assert.Equal(t, tt.want, info.Name)
		})
	}
}

// TestExtractContactInfoMissingFields 验证缺失字段保持为空
func TestExtractContactInfoMissingFields(t *testing.T) {
	c := NewContactExtractor()
	info := c.Extract("just some plain body copy without anything useful")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}
