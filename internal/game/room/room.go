package room

import (
	"sync"
	"time"

	"github.com/palemoky/el-impostor/internal/game/word"
	"github.com/palemoky/el-impostor/internal/protocol"
	"github.com/palemoky/el-impostor/internal/storage"
	"github.com/palemoky/el-impostor/internal/types"
)

const (
	roomCodeLength  = 4                            // 房间号长度
	roomCodeChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" // 房间号字符集
	maxCodeAttempts = 1000                         // 生成房间号的重试上限
	defaultName     = "匿名"                         // 昵称缺省占位
	maxNameRunes    = 32                           // 昵称长度上限
)

// RoomPlayer 房间中的玩家
type RoomPlayer struct {
	Client types.ClientInterface
	Name   string
	IsHost bool
}

// Room 游戏房间。
// PlayerOrder 按加入顺序记录玩家，HostID 始终指向 IsHost 为 true 的那名玩家。
// TurnOrder 在开局时从 PlayerOrder 重建，玩家离开时同步剔除。
type Room struct {
	Code        string
	State       RoomState
	Players     map[string]*RoomPlayer
	PlayerOrder []string
	HostID      string
	SecretWord  string // 开局后才有值；不随玩家离开清空
	ImpostorID  string // 开局后才有值；卧底离开后保留原值
	TurnOrder   []string
	TurnIndex   int
	CreatedAt   time.Time

	mu sync.RWMutex
}

// Manager 房间管理器：持有房间号到房间的映射，并承载所有状态变更。
// 注册表锁和房间锁按 manager → room 的顺序获取。
type Manager struct {
	store      *storage.RedisStore
	words      *word.Source
	minPlayers int
	intn       func(n int) int // 可注入的均匀随机源
	rooms      map[string]*Room
	mu         sync.RWMutex
}

// broadcastLocked 向房间内所有在线玩家发送消息（需持有房间锁）
func (r *Room) broadcastLocked(msg *protocol.Message) {
	for _, p := range r.Players {
		if p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

// Broadcast 向房间内所有玩家发送消息
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcastLocked(msg)
}

// playersInfoLocked 按加入顺序导出玩家信息（需持有房间锁）
func (r *Room) playersInfoLocked() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.PlayerOrder))
	for _, id := range r.PlayerOrder {
		p, ok := r.Players[id]
		if !ok {
			continue
		}
		infos = append(infos, protocol.PlayerInfo{
			ID:     id,
			Name:   p.Name,
			IsHost: p.IsHost,
		})
	}
	return infos
}

// PlayersInfo 按加入顺序导出玩家信息
func (r *Room) PlayersInfo() []protocol.PlayerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playersInfoLocked()
}

// currentTurnIDLocked 返回当前回合玩家 ID（需持有房间锁）
func (r *Room) currentTurnIDLocked() string {
	if len(r.TurnOrder) == 0 {
		return ""
	}
	return r.TurnOrder[r.TurnIndex]
}

// updateLobbyLocked 广播最新玩家列表和房主（需持有房间锁）
func (r *Room) updateLobbyLocked() {
	r.broadcastLocked(protocol.MustNewMessage(protocol.MsgUpdateLobby, protocol.UpdateLobbyPayload{
		Room:    r.Code,
		Players: r.playersInfoLocked(),
		HostID:  r.HostID,
	}))
}

// sanitizeName 处理缺省或超长昵称
func sanitizeName(name string) string {
	if name == "" {
		return defaultName
	}
	if runes := []rune(name); len(runes) > maxNameRunes {
		return string(runes[:maxNameRunes])
	}
	return name
}
