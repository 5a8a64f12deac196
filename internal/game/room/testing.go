//go:build !production

package room

// SetIntnForTest 注入确定性的随机源
func (m *Manager) SetIntnForTest(intn func(n int) int) {
	m.intn = intn
}

// AddRoomForTest 添加房间用于测试
func (m *Manager) AddRoomForTest(room *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[room.Code] = room
}

// ScriptedIntn 按脚本返回随机值，耗尽后回落到 0。
// 每个值在使用前对 n 取模，避免越界。
func ScriptedIntn(values ...int) func(n int) int {
	i := 0
	return func(n int) int {
		if i >= len(values) {
			return 0
		}
		v := values[i] % n
		i++
		return v
	}
}
