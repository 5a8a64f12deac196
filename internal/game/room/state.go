package room

// RoomState 房间状态
type RoomState int

const (
	RoomStateLobby   RoomState = iota // 大厅等待，未分配词语
	RoomStateInRound                  // 本局进行中，词语和卧底已分配
)
