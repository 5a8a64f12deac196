package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 房间镜像过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间镜像数据（用于 Redis 序列化）。
// 镜像只用于观察和排障，注册表才是唯一数据源，重启后不做恢复。
type RoomData struct {
	Code       string       `json:"code"`
	State      int          `json:"state"`
	Players    []PlayerData `json:"players"`
	HostID     string       `json:"host_id"`
	ImpostorID string       `json:"impostor_id,omitempty"`
	WordSet    bool         `json:"word_set"` // 不镜像词语本身
	TurnOrder  []string     `json:"turn_order"`
	TurnIndex  int          `json:"turn_index"`
	CreatedAt  int64        `json:"created_at"`
}

// PlayerData 玩家镜像数据
type PlayerData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"is_host"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储。client 为 nil 时所有操作都是空操作。
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间镜像到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, roomCode string, data *RoomData) error {
	if rs == nil || rs.client == nil || data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + roomCode
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 加载房间镜像
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*RoomData, error) {
	if rs == nil || rs.client == nil {
		return nil, nil
	}

	key := roomKeyPrefix + code
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间镜像
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	if rs == nil || rs.client == nil {
		return nil
	}
	key := roomKeyPrefix + code
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomCodes 获取所有镜像中的房间号
func (rs *RedisStore) GetAllRoomCodes(ctx context.Context) ([]string, error) {
	if rs == nil || rs.client == nil {
		return nil, nil
	}

	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(keys))
	for i, key := range keys {
		codes[i] = key[len(roomKeyPrefix):]
	}
	return codes, nil
}
