package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// 数据库连接串：postgres:// 走 Postgres，否则按 sqlite 文件路径处理
	DatabaseURL string `envconfig:"DATABASE_URL" default:"data/inventory.db"`
	// 只允许该域名的邮箱注册
	AllowedEmailDomain string `envconfig:"ALLOWED_EMAIL_DOMAIN" default:"gov.bw"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`
	// Network
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// Google Sheet 同步
	SheetSyncEnabled      bool   `envconfig:"SHEET_SYNC_ENABLED" default:"false"`
	GoogleCredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"credentials.json"`
	SpreadsheetID         string `envconfig:"SPREADSHEET_ID"`
	SheetName             string `envconfig:"SHEET_NAME" default:"assets"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
