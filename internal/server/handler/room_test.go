package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/el-impostor/internal/game/room"
	"github.com/palemoky/el-impostor/internal/game/word"
	"github.com/palemoky/el-impostor/internal/protocol"
	"github.com/palemoky/el-impostor/internal/storage"
	"github.com/palemoky/el-impostor/internal/testutil"
)

func newTestHandler(words ...string) (*Handler, *room.Manager) {
	rm := room.NewManager(storage.NewRedisStore(nil), word.FromList(words), 3)
	h := NewHandler(HandlerDeps{
		Server:      &testutil.MockServer{},
		RoomManager: rm,
	})
	return h, rm
}

func request(t *testing.T, msgType protocol.MessageType, payload any) *protocol.Message {
	t.Helper()
	msg, err := protocol.NewMessage(msgType, payload)
	require.NoError(t, err)
	return msg
}

func lastPayload[T any](t *testing.T, client *testutil.SimpleClient, msgType protocol.MessageType) T {
	t.Helper()
	msgs := client.MessagesOfType(msgType)
	require.NotEmpty(t, msgs, "expected at least one %s message", msgType)

	var payload T
	require.NoError(t, json.Unmarshal(msgs[len(msgs)-1].Payload, &payload))
	return payload
}

func TestHandleCreateRoom(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, request(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{Name: "Ana"}))

	ack := lastPayload[protocol.RoomCreatedPayload](t, client, protocol.MsgRoomCreated)
	assert.True(t, ack.Ok)
	assert.Len(t, ack.Room, 4)
	assert.True(t, ack.IsHost)
	require.Len(t, ack.Players, 1)
	assert.Equal(t, "Ana", ack.Players[0].Name)
}

func TestHandleJoinRoom_UnknownCode(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, request(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{Name: "Bob", Room: "ZZZZ"}))

	ack := lastPayload[protocol.RoomJoinedPayload](t, client, protocol.MsgRoomJoined)
	assert.False(t, ack.Ok)
	assert.Equal(t, "房间不存在", ack.Message)
	assert.Empty(t, client.GetRoom())
}

func TestHandleJoinRoom(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	host := testutil.NewSimpleClient("p1", "")
	r, err := rm.CreateRoom(host, "Ana")
	require.NoError(t, err)

	joiner := testutil.NewSimpleClient("p2", "")
	h.Handle(joiner, request(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{Name: "Bob", Room: r.Code}))

	ack := lastPayload[protocol.RoomJoinedPayload](t, joiner, protocol.MsgRoomJoined)
	assert.True(t, ack.Ok)
	assert.Equal(t, r.Code, ack.Room)
	assert.False(t, ack.IsHost)
	assert.Len(t, ack.Players, 2)
}

func TestHandleCreateRoom_LeavesPreviousRoom(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, request(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{Name: "Ana"}))
	first := client.GetRoom()
	require.NotEmpty(t, first)

	h.Handle(client, request(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{Name: "Ana"}))
	second := client.GetRoom()

	assert.NotEqual(t, first, second)
	assert.Nil(t, rm.GetRoom(first), "the emptied first room must be destroyed")
	assert.Equal(t, 1, rm.RoomCount())
}

func TestHandleGetRoomState(t *testing.T) {
	t.Parallel()

	h, rm := newTestHandler()
	host := testutil.NewSimpleClient("p1", "")
	r, err := rm.CreateRoom(host, "Ana")
	require.NoError(t, err)

	h.Handle(host, request(t, protocol.MsgGetRoomState, protocol.GetRoomStatePayload{Room: r.Code}))

	state := lastPayload[protocol.RoomStatePayload](t, host, protocol.MsgRoomState)
	assert.True(t, state.Ok)
	assert.Equal(t, "p1", state.HostID)
	assert.False(t, state.SecretWordLoaded)
	assert.Equal(t, "p1", state.CurrentTurnID)
}

func TestHandleGetRoomState_UnknownCode(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, request(t, protocol.MsgGetRoomState, protocol.GetRoomStatePayload{Room: "ZZZZ"}))

	state := lastPayload[protocol.RoomStatePayload](t, client, protocol.MsgRoomState)
	assert.False(t, state.Ok)
	assert.Equal(t, "房间不存在", state.Message)
}

func TestHandle_UnknownMessageType(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, &protocol.Message{Type: "no_such_type"})

	errPayload := lastPayload[protocol.ErrorPayload](t, client, protocol.MsgError)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, errPayload.Code)
}

func TestHandle_MalformedPayload(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, &protocol.Message{
		Type:    protocol.MsgJoinRoom,
		Payload: json.RawMessage(`{"room": 42}`),
	})

	errPayload := lastPayload[protocol.ErrorPayload](t, client, protocol.MsgError)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, errPayload.Code)
}

func TestHandle_MissingPayloadActsAsEmpty(t *testing.T) {
	t.Parallel()

	// A join with no payload at all degrades to an unknown (empty) room code
	h, _ := newTestHandler()
	client := testutil.NewSimpleClient("p1", "")

	h.Handle(client, &protocol.Message{Type: protocol.MsgJoinRoom})

	ack := lastPayload[protocol.RoomJoinedPayload](t, client, protocol.MsgRoomJoined)
	assert.False(t, ack.Ok)
}
