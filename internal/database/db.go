package database

import (
	"asset-inventory-system/internal/model"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB 初始化数据库连接并建表，必须在任何其它操作之前调用
func InitDB(databaseURL string) {
	var err error

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		// sqlite 文件路径，目录不存在则创建
		if dir := filepath.Dir(databaseURL); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatal("创建数据目录失败:", err)
			}
		}
		DB, err = gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("数据库连接失败:", err)
	}

	// 自动迁移模型（create if not exists，幂等）
	err = DB.AutoMigrate(&model.User{}, &model.Asset{}, &model.OperationLog{}, &model.LoginLog{})
	if err != nil {
		log.Fatal("数据库迁移失败:", err)
	}
}
