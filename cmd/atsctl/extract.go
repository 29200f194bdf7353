package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-ats-go/internal/parser"
	"resume-ats-go/internal/processor"
)

// 定义提取命令的命令行参数
var (
	extractSaveFile = flag.String("extract-save", "", "保存提取内容到文件")
)

// readResumeFile 校验并读取命令行指定的简历文件
func readResumeFile() (string, []byte) {
	if *resumeFilePath == "" {
		fmt.Println("错误: 必须提供简历文件路径。使用 -file 参数。")
		flag.Usage()
		os.Exit(1)
	}

	absPath, err := filepath.Abs(*resumeFilePath)
	if err != nil {
		fmt.Printf("无法获取文件的绝对路径: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Printf("无法读取文件 %s: %v\n", absPath, err)
		os.Exit(1)
	}
	return absPath, data
}

// newLocalProcessor 构建仅含原生提取路径的处理器，供离线命令使用
func newLocalProcessor(ctx context.Context) *processor.ResumeProcessor {
	extractor, err := parser.NewEinoPDFTextExtractor(ctx)
	if err != nil {
		fmt.Printf("创建PDF提取器失败: %v\n", err)
		os.Exit(1)
	}
	return processor.NewResumeProcessor(processor.WithNativeExtractor(extractor))
}

// 处理提取文本命令
func handleExtractCommand() {
	absPath, data := readResumeFile()
	fmt.Printf("准备处理文件: %s\n", absPath)

	// 创建上下文，添加超时以防止无限等待
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p := newLocalProcessor(ctx)

	fmt.Println("开始提取文本...")
	startTime := time.Now()

	text, err := p.ExtractText(ctx, data, absPath)
	if err != nil {
		fmt.Printf("提取文本失败: %v\n", err)
		os.Exit(1)
	}

	elapsedTime := time.Since(startTime)
	fmt.Printf("提取完成! 耗时: %v\n", elapsedTime)

	// 显示提取结果
	fmt.Printf("\n===== 提取的文本 (总计 %d 字符) =====\n", len(text))

	// 根据maxLen参数决定显示多少文本
	displayText := text
	if *maxLen >= 0 && len(text) > *maxLen {
		displayText = text[:*maxLen] + "...(已截断，使用 -maxlen 参数显示更多)"
	}
	fmt.Println(displayText)

	// 保存到文件
	if *extractSaveFile != "" {
		err = os.WriteFile(*extractSaveFile, []byte(text), 0644)
		if err != nil {
			fmt.Printf("保存到文件失败: %v\n", err)
		} else {
			fmt.Printf("文本已保存到: %s\n", *extractSaveFile)
		}
	}

	fmt.Println("\n处理完成。")
}
