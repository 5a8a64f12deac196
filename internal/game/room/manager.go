package room

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/palemoky/el-impostor/internal/apperrors"
	"github.com/palemoky/el-impostor/internal/game/word"
	"github.com/palemoky/el-impostor/internal/protocol"
	"github.com/palemoky/el-impostor/internal/storage"
	"github.com/palemoky/el-impostor/internal/types"
)

// NewManager 创建房间管理器
func NewManager(store *storage.RedisStore, words *word.Source, minPlayers int) *Manager {
	if minPlayers <= 0 {
		minPlayers = 3
	}
	return &Manager{
		store:      store,
		words:      words,
		minPlayers: minPlayers,
		intn:       rand.IntN,
		rooms:      make(map[string]*Room),
	}
}

// CreateRoom 创建房间，创建者即房主
func (m *Manager) CreateRoom(client types.ClientInterface, name string) (*Room, error) {
	name = sanitizeName(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	code, err := m.generateRoomCode()
	if err != nil {
		return nil, err
	}

	room := &Room{
		Code:        code,
		State:       RoomStateLobby,
		Players:     make(map[string]*RoomPlayer),
		PlayerOrder: make([]string, 0, 4),
		HostID:      client.GetID(),
		TurnOrder:   []string{client.GetID()},
		TurnIndex:   0,
		CreatedAt:   time.Now(),
	}
	room.Players[client.GetID()] = &RoomPlayer{
		Client: client,
		Name:   name,
		IsHost: true,
	}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())

	client.SetName(name)
	client.SetRoom(code)
	m.rooms[code] = room

	room.mu.Lock()
	room.updateLobbyLocked()
	room.mu.Unlock()

	m.mirror(room)

	log.Printf("🏠 房间 %s 已创建，房主 %s", code, name)

	return room, nil
}

// JoinRoom 加入房间。房间号未知时返回 ErrRoomNotFound，不改变任何状态。
func (m *Manager) JoinRoom(client types.ClientInterface, name, code string) (*Room, error) {
	name = sanitizeName(name)

	m.mu.RLock()
	room, exists := m.rooms[code]
	m.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()

	room.Players[client.GetID()] = &RoomPlayer{
		Client: client,
		Name:   name,
		IsHost: false,
	}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	room.TurnOrder = append(room.TurnOrder, client.GetID())

	client.SetName(name)
	client.SetRoom(code)

	room.updateLobbyLocked()
	room.mu.Unlock()

	m.mirror(room)

	log.Printf("👤 玩家 %s 加入房间 %s", name, code)

	return room, nil
}

// StartRound 开始本局：均匀随机选词和卧底，重建回合顺序，私发角色并广播开局。
// 上游允许在进行中的房间再次开局，此时词语、卧底和回合顺序全部重新分配。
func (m *Manager) StartRound(requesterID, code string) error {
	m.mu.RLock()
	room, exists := m.rooms[code]
	m.mu.RUnlock()
	if !exists {
		return apperrors.ErrRoomNotFound
	}

	room.mu.Lock()

	if room.HostID != requesterID {
		room.mu.Unlock()
		return apperrors.ErrNotHost
	}
	if len(room.PlayerOrder) < m.minPlayers {
		room.mu.Unlock()
		return apperrors.ErrInsufficientPlayers
	}

	secretWord, err := m.words.Pick(m.intn)
	if err != nil {
		room.mu.Unlock()
		return apperrors.ErrNoWords
	}

	// 按下标均匀选卧底
	impostorID := room.PlayerOrder[m.intn(len(room.PlayerOrder))]

	room.SecretWord = secretWord
	room.ImpostorID = impostorID
	// 回合顺序从当前玩家列表重建，吸收中途离开造成的偏差
	room.TurnOrder = append([]string(nil), room.PlayerOrder...)
	room.TurnIndex = 0
	room.State = RoomStateInRound

	// 私发角色：卧底收不到词语
	for _, id := range room.PlayerOrder {
		p := room.Players[id]
		if p.Client == nil {
			continue
		}
		if id == impostorID {
			p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgGameRole, protocol.GameRolePayload{
				Role:    protocol.RoleImpostor,
				Message: "你是卧底，保守秘密。",
			}))
		} else {
			p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgGameRole, protocol.GameRolePayload{
				Role:    protocol.RoleCitizen,
				Word:    secretWord,
				Message: "你是平民，围绕词语描述但不要说破。",
			}))
		}
	}

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
		Room:          code,
		Players:       room.playersInfoLocked(),
		ImpostorID:    impostorID,
		CurrentTurnID: room.currentTurnIDLocked(),
	}))
	room.mu.Unlock()

	m.mirror(room)

	log.Printf("🎭 房间 %s 开局，卧底 %s", code, impostorID)

	return nil
}

// AdvanceTurn 循环推进回合指针并广播。回合顺序为空时不做任何事。
// 上游不校验是否已开局，大厅状态下同样可以调用。
func (m *Manager) AdvanceTurn(code string) (string, error) {
	m.mu.RLock()
	room, exists := m.rooms[code]
	m.mu.RUnlock()
	if !exists {
		return "", apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	if len(room.TurnOrder) == 0 {
		room.mu.Unlock()
		return "", nil
	}

	room.TurnIndex = (room.TurnIndex + 1) % len(room.TurnOrder)
	current := room.TurnOrder[room.TurnIndex]

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgTurnChanged, protocol.TurnChangedPayload{
		CurrentTurnID: current,
	}))
	room.mu.Unlock()

	m.mirror(room)

	return current, nil
}

// Leave 由断线触发：移除玩家，必要时转移房主并修正回合指针。
// 房间空了立即销毁。ImpostorID 和 SecretWord 不做清理，卧底离开后悬空。
func (m *Manager) Leave(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	m.mu.Lock()
	room, exists := m.rooms[code]
	if !exists {
		m.mu.Unlock()
		return
	}

	room.mu.Lock()

	player, exists := room.Players[client.GetID()]
	if !exists {
		room.mu.Unlock()
		m.mu.Unlock()
		return
	}
	wasHost := player.IsHost

	delete(room.Players, client.GetID())
	for i, id := range room.PlayerOrder {
		if id == client.GetID() {
			room.PlayerOrder = append(room.PlayerOrder[:i], room.PlayerOrder[i+1:]...)
			break
		}
	}
	for i, id := range room.TurnOrder {
		if id == client.GetID() {
			room.TurnOrder = append(room.TurnOrder[:i], room.TurnOrder[i+1:]...)
			break
		}
	}
	client.SetRoom("")

	log.Printf("👋 玩家 %s 离开房间 %s", player.Name, code)

	// 没有玩家的房间立即销毁，不再广播
	if len(room.Players) == 0 {
		delete(m.rooms, code)
		room.mu.Unlock()
		m.mu.Unlock()

		go func() { _ = m.store.DeleteRoom(context.Background(), code) }()
		log.Printf("🏠 房间 %s 已解散（无人）", code)
		return
	}
	m.mu.Unlock()

	// 房主离开时由加入顺序中最早的玩家接任
	if wasHost {
		newHostID := room.PlayerOrder[0]
		room.HostID = newHostID
		room.Players[newHostID].IsHost = true
		log.Printf("👑 房间 %s 新房主: %s", code, room.Players[newHostID].Name)
	}

	if len(room.TurnOrder) > 0 {
		room.TurnIndex = room.TurnIndex % len(room.TurnOrder)
	} else {
		room.TurnIndex = 0
	}

	room.updateLobbyLocked()
	room.mu.Unlock()

	m.mirror(room)
}

// Snapshot 返回房间只读状态，供断线后的客户端刷新
func (m *Manager) Snapshot(code string) (*protocol.RoomStatePayload, error) {
	m.mu.RLock()
	room, exists := m.rooms[code]
	m.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.RLock()
	defer room.mu.RUnlock()

	return &protocol.RoomStatePayload{
		Ok:               true,
		Players:          room.playersInfoLocked(),
		HostID:           room.HostID,
		SecretWordLoaded: room.SecretWord != "",
		ImpostorID:       room.ImpostorID,
		CurrentTurnID:    room.currentTurnIDLocked(),
	}, nil
}

// GetRoom 获取房间
func (m *Manager) GetRoom(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

// RoomCount 当前存活房间数
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// generateRoomCode 生成与存活房间不冲突的房间号（需持有注册表锁）。
// 26^4 的空间下碰撞重试几乎不可能耗尽，上限只是防御病态死循环。
func (m *Manager) generateRoomCode() (string, error) {
	for range maxCodeAttempts {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[m.intn(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := m.rooms[codeStr]; !exists {
			return codeStr, nil
		}
	}
	return "", apperrors.ErrCodeExhausted
}

// mirror 异步把房间状态镜像到 Redis（仅用于观察，失败不影响游戏）
func (m *Manager) mirror(room *Room) {
	go func() { _ = m.store.SaveRoom(context.Background(), room.Code, room.ToRoomData()) }()
}
