package main

import (
	"flag"
	"fmt"
	"os"
)

// 命令行参数定义
var (
	resumeFilePath = flag.String("file", "", "简历文件路径 (必填)")
	maxLen         = flag.Int("maxlen", 1000, "显示的文本最大长度，设为-1显示全部")
	command        = flag.String("cmd", "extract", "执行的命令: extract=仅提取文本, parse=结构化解析, score=对JD评分")
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 根据命令执行不同的功能
	switch *command {
	case "extract":
		handleExtractCommand()
	case "parse":
		handleParseCommand()
	case "score":
		handleScoreCommand()
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, parse, score\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}
