package handler

import (
	"log"

	"github.com/palemoky/el-impostor/internal/game/room"
	"github.com/palemoky/el-impostor/internal/protocol"
	"github.com/palemoky/el-impostor/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server      types.ServerInterface
	RoomManager *room.Manager
}

// Handler 消息处理器：把入站请求分发到房间状态机，
// 并把结果或失败原因以应答消息回给请求方。
type Handler struct {
	server   types.ServerInterface
	rooms    *room.Manager
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server: deps.Server,
		rooms:  deps.RoomManager,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgCreateRoom:   h.handleCreateRoom,
		protocol.MsgJoinRoom:     h.handleJoinRoom,
		protocol.MsgGetRoomState: h.handleGetRoomState,

		// 游戏操作
		protocol.MsgStartGame: h.handleStartGame,
		protocol.MsgNextTurn:  h.handleNextTurn,

		// 信息查询
		protocol.MsgGetOnlineCount: h.handleGetOnlineCount,
	}
}

// Handle 处理消息。单个请求的失败只回给请求方，不影响其他连接。
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (玩家 ID: %s)", msg.Type, client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}
