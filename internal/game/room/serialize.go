package room

import (
	"github.com/palemoky/el-impostor/internal/storage"
)

// ToRoomData 将 Room 转换为可镜像的 RoomData。词语本身不镜像。
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		Code:       r.Code,
		State:      int(r.State),
		Players:    make([]storage.PlayerData, 0, len(r.PlayerOrder)),
		HostID:     r.HostID,
		ImpostorID: r.ImpostorID,
		WordSet:    r.SecretWord != "",
		TurnOrder:  append([]string(nil), r.TurnOrder...),
		TurnIndex:  r.TurnIndex,
		CreatedAt:  r.CreatedAt.Unix(),
	}

	for _, id := range r.PlayerOrder {
		p, ok := r.Players[id]
		if !ok {
			continue
		}
		data.Players = append(data.Players, storage.PlayerData{
			ID:     id,
			Name:   p.Name,
			IsHost: p.IsHost,
		})
	}

	return data
}
