package protocol

// 错误码
const (
	ErrCodeUnknown             = 1000
	ErrCodeInvalidMsg          = 1001
	ErrCodeRoomNotFound        = 2001
	ErrCodeNotHost             = 2002
	ErrCodeInsufficientPlayers = 2003
	ErrCodeNoWords             = 2004
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:             "未知错误",
	ErrCodeInvalidMsg:          "无效的消息格式",
	ErrCodeRoomNotFound:        "房间不存在",
	ErrCodeNotHost:             "只有房主才能开始游戏",
	ErrCodeInsufficientPlayers: "至少需要 3 名玩家才能开始",
	ErrCodeNoWords:             "服务器没有加载任何词语",
}
