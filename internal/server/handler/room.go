package handler

import (
	"github.com/palemoky/el-impostor/internal/protocol"
	"github.com/palemoky/el-impostor/internal/types"
)

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开，保证连接身份在各房间中唯一
	if client.GetRoom() != "" {
		h.rooms.Leave(client)
	}

	room, err := h.rooms.CreateRoom(client, payload.Name)
	if err != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
			Ok:      false,
			Message: err.Error(),
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		Ok:      true,
		Room:    room.Code,
		Players: room.PlayersInfo(),
		IsHost:  true,
	}))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.rooms.Leave(client)
	}

	room, err := h.rooms.JoinRoom(client, payload.Name, payload.Room)
	if err != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
			Ok:      false,
			Message: err.Error(),
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		Ok:      true,
		Room:    room.Code,
		Players: room.PlayersInfo(),
		IsHost:  false,
	}))
}

// handleGetRoomState 处理房间状态查询（断线后的客户端刷新用）
func (h *Handler) handleGetRoomState(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetRoomStatePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	snapshot, err := h.rooms.Snapshot(payload.Room)
	if err != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomState, protocol.RoomStatePayload{
			Ok:      false,
			Message: err.Error(),
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomState, *snapshot))
}
