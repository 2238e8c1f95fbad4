// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "VocabProgress"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultAppReviewLimit        = 20
	DefaultTimezone              = "Local"
	DefaultSessionIdleTimeout    = 30 * time.Minute
	DefaultSessionReapInterval   = 5 * time.Minute
	DefaultSessionXPPerCorrect   = 10
	DefaultSessionPerfectBonusXP = 20
)
