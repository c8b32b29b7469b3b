// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "lexiflow"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultPageSize    = 50
	DefaultMaxPageSize = 500
	DefaultAuthEnabled = true
)
