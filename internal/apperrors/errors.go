package apperrors

import (
	"github.com/palemoky/el-impostor/internal/protocol"
)

// GameError 游戏错误（注册表和处理器共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound        = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrNotHost             = &GameError{Code: protocol.ErrCodeNotHost, Message: "只有房主才能开始游戏"}
	ErrInsufficientPlayers = &GameError{Code: protocol.ErrCodeInsufficientPlayers, Message: "至少需要 3 名玩家才能开始"}
	ErrNoWords             = &GameError{Code: protocol.ErrCodeNoWords, Message: "服务器没有加载任何词语"}
	ErrCodeExhausted       = &GameError{Code: protocol.ErrCodeUnknown, Message: "无法分配房间号"}
)
