package protocol

// 游戏角色
const (
	RoleImpostor = "impostor" // 卧底，看不到词语
	RoleCitizen  = "citizen"  // 平民，持有秘密词语
)

// PlayerInfo 对外可见的玩家信息
type PlayerInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"is_host"`
}

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	Name string `json:"name"` // 玩家昵称，缺省时使用占位昵称
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	Name string `json:"name"`
	Room string `json:"room"` // 4 位大写字母房间号
}

// StartGamePayload 开始游戏请求
type StartGamePayload struct {
	Room string `json:"room"`
}

// NextTurnPayload 下一回合请求
type NextTurnPayload struct {
	Room string `json:"room"`
}

// GetRoomStatePayload 查询房间状态请求
type GetRoomStatePayload struct {
	Room string `json:"room"`
}

// --- 服务端应答 Payloads ---
// 所有应答都带 ok 标志；失败时 ok=false 且 message 携带可读的错误原因。

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// OnlineCountPayload 在线人数响应
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// RoomCreatedPayload create_room 应答
type RoomCreatedPayload struct {
	Ok      bool         `json:"ok"`
	Message string       `json:"message,omitempty"`
	Room    string       `json:"room,omitempty"`
	Players []PlayerInfo `json:"players,omitempty"`
	IsHost  bool         `json:"is_host,omitempty"`
}

// RoomJoinedPayload join_room 应答
type RoomJoinedPayload struct {
	Ok      bool         `json:"ok"`
	Message string       `json:"message,omitempty"`
	Room    string       `json:"room,omitempty"`
	Players []PlayerInfo `json:"players,omitempty"`
	IsHost  bool         `json:"is_host,omitempty"`
}

// StartAckPayload start_game 应答
type StartAckPayload struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// TurnAckPayload next_turn 应答
type TurnAckPayload struct {
	Ok            bool   `json:"ok"`
	Message       string `json:"message,omitempty"`
	CurrentTurnID string `json:"current_turn_id,omitempty"`
}

// RoomStatePayload get_room_state 应答
type RoomStatePayload struct {
	Ok               bool         `json:"ok"`
	Message          string       `json:"message,omitempty"`
	Players          []PlayerInfo `json:"players,omitempty"`
	HostID           string       `json:"host_id,omitempty"`
	SecretWordLoaded bool         `json:"secret_word_loaded,omitempty"`
	ImpostorID       string       `json:"impostor_id,omitempty"`
	CurrentTurnID    string       `json:"current_turn_id,omitempty"`
}

// --- 服务端广播 Payloads ---

// UpdateLobbyPayload 玩家列表变更广播（加入、离开、房主转移）
type UpdateLobbyPayload struct {
	Room    string       `json:"room"`
	Players []PlayerInfo `json:"players"`
	HostID  string       `json:"host_id"`
}

// GameRolePayload 角色私发消息。卧底收不到 word 字段。
type GameRolePayload struct {
	Role    string `json:"role"`
	Word    string `json:"word,omitempty"`
	Message string `json:"message,omitempty"`
}

// GameStartedPayload 本局开始广播。
// impostor_id 会发给房间内所有人（包括卧底本人），与上游行为保持一致，
// 是否展示由客户端决定。
type GameStartedPayload struct {
	Room          string       `json:"room"`
	Players       []PlayerInfo `json:"players"`
	ImpostorID    string       `json:"impostor_id"`
	CurrentTurnID string       `json:"current_turn_id"`
}

// TurnChangedPayload 回合切换广播
type TurnChangedPayload struct {
	CurrentTurnID string `json:"current_turn_id"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
