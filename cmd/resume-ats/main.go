package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/spf13/pflag"

	"resume-ats-go/internal/api/handler"
	"resume-ats-go/internal/api/router"
	"resume-ats-go/internal/config"
	applog "resume-ats-go/internal/logger"
	"resume-ats-go/internal/parser"
	"resume-ats-go/internal/processor"
	"resume-ats-go/internal/scorer"
	"resume-ats-go/internal/storage"
	"resume-ats-go/internal/tracing"
	"resume-ats-go/internal/types"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	applog.Init(applog.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	// Hertz框架日志复用zerolog
	glog.SetLogger(hertzadapter.From(applog.Logger))
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		ServiceName:  cfg.Tracing.ServiceName,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		glog.Fatalf("初始化链路追踪失败: %v", err)
	}
	defer func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := shutdownTracing(shutdownCtx); err != nil {
			glog.Warnf("关闭链路追踪失败: %v", err)
		}
	}()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	resumeProcessor, err := buildProcessor(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化简历处理器失败: %v", err)
	}
	glog.Info("简历处理器初始化成功")

	resumeHandler := handler.NewResumeHandler(cfg, storageManager, resumeProcessor)
	scoreHandler := handler.NewScoreHandler(cfg, storageManager, resumeProcessor)

	if storageManager.RabbitMQ != nil {
		go func() {
			prefetchCount := cfg.RabbitMQ.PrefetchCount
			if prefetchCount <= 0 {
				prefetchCount = 10
			}
			if err := resumeHandler.StartResumeUploadConsumer(ctx, prefetchCount); err != nil {
				glog.Fatalf("启动简历上传消费者失败: %v", err)
			}
		}()
	} else {
		glog.Warn("RabbitMQ未初始化，简历解析消费者不会启动")
	}

	tracer, tracingCfg := hertztracing.NewServerTracer()
	h := server.New(
		tracer,
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(hertztracing.ServerMiddleware(tracingCfg))
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, cfg, resumeHandler, scoreHandler)
	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// buildProcessor 组装双路径提取器与评分器
func buildProcessor(ctx context.Context, cfg *config.Config) (*processor.ResumeProcessor, error) {
	nativeExtractor, err := parser.NewEinoPDFTextExtractor(ctx,
		parser.WithEinoLogger(applog.Logger.With().Str("component", "eino_pdf").Logger()),
	)
	if err != nil {
		return nil, err
	}

	options := []processor.ProcessorOption{
		processor.WithNativeExtractor(nativeExtractor),
		processor.WithProcessorLogger(applog.Logger.With().Str("component", "processor").Logger()),
	}

	// OCR兜底路径，未配置Tika时纯靠原生提取
	if cfg.Tika.ServerURL != "" {
		tikaOptions := []parser.TikaOption{
			parser.WithTikaLogger(applog.Logger.With().Str("component", "tika_ocr").Logger()),
		}
		if cfg.Tika.Timeout > 0 {
			tikaOptions = append(tikaOptions, parser.WithTimeout(time.Duration(cfg.Tika.Timeout)*time.Second))
		}
		if cfg.Tika.OCRDPI > 0 {
			tikaOptions = append(tikaOptions, parser.WithOCRDPI(cfg.Tika.OCRDPI))
		}
		if cfg.Tika.Language != "" {
			tikaOptions = append(tikaOptions, parser.WithOCRLanguage(cfg.Tika.Language))
		}
		options = append(options, processor.WithOCRExtractor(parser.NewTikaOCRExtractor(cfg.Tika.ServerURL, tikaOptions...)))
		glog.Info("Tika OCR提取器初始化成功")
	} else {
		glog.Warn("Tika未配置，OCR兜底路径不可用")
	}

	scorerOptions := []scorer.ATSScorerOption{}
	if len(cfg.Scoring.SectionWeights) > 0 {
		scorerOptions = append(scorerOptions, scorer.WithDefaultWeights(types.ScoreWeights(cfg.Scoring.SectionWeights)))
	}

	// 配置了阿里云API Key时启用语义评分后端
	if cfg.Aliyun.APIKey != "" {
		embedder, err := parser.NewAliyunEmbedder(cfg.Aliyun.APIKey, cfg.Aliyun.Embedding)
		if err != nil {
			return nil, err
		}
		scorerOptions = append(scorerOptions, scorer.WithSemanticBackend(scorer.NewSemanticBackend(embedder)))
		glog.Info("语义评分后端初始化成功")
	} else {
		glog.Info("阿里云API Key未配置，评分仅使用词法后端")
	}
	options = append(options, processor.WithScorer(scorer.NewATSScorer(scorerOptions...)))

	return processor.NewResumeProcessor(options...), nil
}
