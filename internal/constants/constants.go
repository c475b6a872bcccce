package constants

// Session
const (
	SessionCookieName = "intranet_session"
	ContextKeyUserID  = "user_id"
	SessionMaxAge     = 86400 * 7 // 7 days
)

// Validation limits
const (
	MaxUsernameLength = 64
	MaxNicknameLength = 64
	MaxTitleLength    = 255
)

// Overview
const (
	OverviewRecentPostCount = 5
)
