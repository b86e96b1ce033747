package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-screening-go/internal/api/handler"
	"resume-screening-go/internal/match"
)

// matchRequest 词袋匹配接口请求体
type matchRequest struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
}

// chatRequest 会话接口请求体
type chatRequest struct {
	Message string `json:"message"`
}

// RegisterRoutes 注册API路由
func RegisterRoutes(h *server.Hertz, analysisHandler *handler.AnalysisHandler, chatHandler *handler.ChatHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/analyze", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		params := handler.AnalyzeParams{
			JobTitle:       ctx.PostForm("job_title"),
			JobDescription: ctx.PostForm("job_description"),
			RequiredSkills: ctx.PostForm("required_skills"),
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		resp, err := analysisHandler.HandleResumeAnalyze(c, file, fileHeader.Filename, params)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/match", func(c context.Context, ctx *app.RequestContext) {
		var req matchRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		if req.ResumeText == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "简历文本不能为空"})
			return
		}

		score := match.WordOverlapScore(req.ResumeText, req.JobText)
		ctx.JSON(consts.StatusOK, utils.H{"match_score": score})
	})

	api.POST("/chat", func(c context.Context, ctx *app.RequestContext) {
		var req chatRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		if req.Message == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "消息不能为空"})
			return
		}

		ctx.JSON(consts.StatusOK, chatHandler.HandleChat(c, req.Message))
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
