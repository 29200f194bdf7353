package tracing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPII(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"空串", "", ""},
		{"单字符", "a", "*"},
		{"两字符姓名", "张三", "张*"},
		{"三字符姓名", "王小明", "王*明"},
		{"手机号", "13812345678", "13*******78"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaskPII(tc.input))
		})
	}
}

func TestMaskPIIEmail(t *testing.T) {
	masked := MaskPII("myemail@example.com")
	assert.True(t, strings.HasPrefix(masked, "my"))
	assert.True(t, strings.HasSuffix(masked, "om"))
	assert.NotContains(t, masked, "@")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))

	long := strings.Repeat("a", 50) + strings.Repeat("b", 50)
	truncated := TruncateString(long, 21)
	assert.Contains(t, truncated, "...")
	assert.Less(t, len(truncated), len(long))

	// 中文按rune截断而不是按字节
	cn := strings.Repeat("简", 30)
	assert.Equal(t, cn, TruncateString(cn, 30))
}

func TestSafeSQL(t *testing.T) {
	sql := "SELECT * FROM resume_submissions WHERE " + strings.Repeat("x = 1 AND ", 100) + "1 = 1"
	safe := SafeSQL(sql)
	assert.LessOrEqual(t, len([]rune(safe)), MaxSQLLength)
}
