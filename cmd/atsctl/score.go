package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// 定义解析与评分命令的命令行参数
var (
	jdFilePath = flag.String("jd", "", "职位描述文本文件路径 (score命令必填)")
	outputJSON = flag.Bool("json", false, "以JSON格式输出结果")
)

// 处理结构化解析命令
func handleParseCommand() {
	absPath, data := readResumeFile()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p := newLocalProcessor(ctx)

	parsed, err := p.ParseBytes(ctx, data, filepath.Base(absPath))
	if err != nil {
		fmt.Printf("解析简历失败: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			fmt.Printf("序列化解析结果失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("文件: %s\n", parsed.Filename)
	fmt.Printf("识别区段数: %d\n", len(parsed.Sections))
	for name, content := range parsed.Sections {
		display := strings.Join(content, "\n")
		if *maxLen >= 0 && len(display) > *maxLen {
			display = display[:*maxLen] + "..."
		}
		fmt.Printf("\n----- [%s] -----\n%s\n", name, display)
	}
	fmt.Printf("\n技能: %v\n", parsed.Skills)
}

// 处理评分命令
func handleScoreCommand() {
	absPath, data := readResumeFile()

	if *jdFilePath == "" {
		fmt.Println("错误: score命令必须提供JD文件路径。使用 -jd 参数。")
		flag.Usage()
		os.Exit(1)
	}
	jdBytes, err := os.ReadFile(*jdFilePath)
	if err != nil {
		fmt.Printf("无法读取JD文件 %s: %v\n", *jdFilePath, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p := newLocalProcessor(ctx)

	parsed, err := p.ParseBytes(ctx, data, filepath.Base(absPath))
	if err != nil {
		fmt.Printf("解析简历失败: %v\n", err)
		os.Exit(1)
	}

	result, err := p.Score(ctx, parsed, string(jdBytes), false, nil)
	if err != nil {
		fmt.Printf("评分失败: %v\n", err)
		os.Exit(1)
	}
	suggestions := p.Suggest(result, parsed)

	if *outputJSON {
		out, err := json.MarshalIndent(map[string]interface{}{
			"result":      result,
			"suggestions": suggestions,
		}, "", "  ")
		if err != nil {
			fmt.Printf("序列化评分结果失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("综合评分: %.3f (%s)\n", result.OverallScore, result.ScoringMethod)
	for name, section := range result.SectionScores {
		fmt.Printf("  %s: %.3f\n", name, section.Score)
	}
	fmt.Println("\n改进建议:")
	for _, s := range suggestions {
		fmt.Printf("  [%s] %s: %s\n", s.Priority, s.Title, s.Description)
	}
}
