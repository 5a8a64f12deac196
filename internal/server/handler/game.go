package handler

import (
	"github.com/palemoky/el-impostor/internal/protocol"
	"github.com/palemoky/el-impostor/internal/types"
)

// handleStartGame 处理开局请求。
// 角色私发和 game_started 广播由状态机完成，这里只回执成败。
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.rooms.StartRound(client.GetID(), payload.Room); err != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStartAck, protocol.StartAckPayload{
			Ok:      false,
			Message: err.Error(),
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStartAck, protocol.StartAckPayload{
		Ok: true,
	}))
}

// handleNextTurn 处理下一回合请求
func (h *Handler) handleNextTurn(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.NextTurnPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	current, err := h.rooms.AdvanceTurn(payload.Room)
	if err != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgTurnAck, protocol.TurnAckPayload{
			Ok:      false,
			Message: err.Error(),
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgTurnAck, protocol.TurnAckPayload{
		Ok:            true,
		CurrentTurnID: current,
	}))
}
