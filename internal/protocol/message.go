package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom   MessageType = "create_room"    // 创建房间
	MsgJoinRoom     MessageType = "join_room"      // 加入房间
	MsgGetRoomState MessageType = "get_room_state" // 查询房间状态（用于断线后刷新）

	// 游戏操作
	MsgStartGame MessageType = "start_game" // 开始本局（仅房主）
	MsgNextTurn  MessageType = "next_turn"  // 进入下一回合

	// 信息查询
	MsgGetOnlineCount MessageType = "get_online_count" // 获取在线人数
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected   MessageType = "connected"    // 连接成功，下发临时玩家 ID
	MsgPong        MessageType = "pong"         // 心跳 pong
	MsgOnlineCount MessageType = "online_count" // 在线人数

	// 请求应答
	MsgRoomCreated MessageType = "room_created" // create_room 应答
	MsgRoomJoined  MessageType = "room_joined"  // join_room 应答
	MsgStartAck    MessageType = "start_ack"    // start_game 应答
	MsgTurnAck     MessageType = "turn_ack"     // next_turn 应答
	MsgRoomState   MessageType = "room_state"   // get_room_state 应答

	// 房间广播
	MsgUpdateLobby MessageType = "update_lobby" // 玩家列表/房主变更
	MsgGameRole    MessageType = "game_role"    // 私发角色（含词语，卧底除外）
	MsgGameStarted MessageType = "game_started" // 本局开始
	MsgTurnChanged MessageType = "turn_changed" // 回合切换

	// 错误
	MsgError MessageType = "error" // 错误消息
)
