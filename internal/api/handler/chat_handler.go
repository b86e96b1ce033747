package handler

import (
	"context"

	"resume-screening-go/internal/chatbot"
	"resume-screening-go/internal/logger"
	"resume-screening-go/internal/types"
)

// ChatHandler 会话请求处理器
type ChatHandler struct {
	bot *chatbot.Chatbot
}

// NewChatHandler 创建会话请求处理器
func NewChatHandler(bot *chatbot.Chatbot) *ChatHandler {
	return &ChatHandler{bot: bot}
}

// HandleChat 对一条用户消息生成回复
// 空消息属于边界前置条件，由路由层拦截；应答器本身不会返回错误
func (h *ChatHandler) HandleChat(ctx context.Context, message string) types.ChatReply {
	reply := h.bot.Reply(message)

	logger.Debug().
		Bool("navigation", reply.Navigation).
		Str("destination", reply.Destination).
		Msg("会话回复生成完成")

	return reply
}
