package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"resume-screening-go/internal/api/handler"
	"resume-screening-go/internal/api/router"
	"resume-screening-go/internal/chatbot"
	"resume-screening-go/internal/config"
	"resume-screening-go/internal/extractor"
	appLogger "resume-screening-go/internal/logger"
	"resume-screening-go/internal/oracle"
	"resume-screening-go/internal/storage"

	resumeAnalyzer "resume-screening-go/internal/analyzer"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	glog.SetLogger(hertzadapter.From(appLogger.Logger))
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 缓存是可选组件，连接失败时降级为每次现算
	cache, err := storage.NewRedisCache(ctx, cfg.Redis)
	if err != nil {
		glog.Warnf("初始化Redis缓存失败，缓存关闭: %v", err)
		cache = nil
	}

	textExtractor, err := extractor.NewTextExtractor(ctx)
	if err != nil {
		glog.Fatalf("初始化文本提取器失败: %v", err)
	}
	glog.Info("文本提取器初始化成功")

	analysisHandler := handler.NewAnalysisHandler(
		textExtractor,
		resumeAnalyzer.NewAnalyzer(),
		oracle.NewClient(cfg.Oracle.BaseURL, oracle.WithTimeout(time.Duration(cfg.Oracle.TimeoutSeconds)*time.Second)),
		cache,
	)
	chatHandler := handler.NewChatHandler(
		chatbot.NewChatbot(chatbot.WithThreshold(cfg.Chatbot.SimilarityThreshold)),
	)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, analysisHandler, chatHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("收到退出信号，开始关闭服务")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("关闭HTTP服务器失败: %v", err)
	}
	if err := cache.Close(); err != nil {
		glog.Errorf("关闭Redis连接失败: %v", err)
	}
	glog.Info("服务已退出")
}
