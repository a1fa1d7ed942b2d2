package main

import (
	"asset-inventory-system/internal/config"
	"asset-inventory-system/internal/database"
	"asset-inventory-system/internal/handler"
	"asset-inventory-system/internal/middleware"
	"asset-inventory-system/internal/util"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("加载配置失败:", err)
	}

	// 初始化数据库
	database.InitDB(cfg.DatabaseURL)

	// 初始化令牌签名和注册域名
	util.InitToken(cfg.JWTSecret, cfg.JWTExpireMin)
	handler.InitAuth(cfg.AllowedEmailDomain)

	// 初始化 Google Sheet 同步（未启用时为 no-op）
	if _, err := handler.InitSheetSync(cfg.SheetSyncEnabled, cfg.GoogleCredentialsFile, cfg.SpreadsheetID, cfg.SheetName); err != nil {
		log.Fatal("初始化Sheet同步失败:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// 中间件
	app.Use(logger.New())
	app.Use(cors.New())

	// 路由组
	api := app.Group("/api/v1")

	// 认证路由
	auth := api.Group("/auth")
	auth.Post("/register", handler.HandleUserRegister)
	auth.Post("/login", handler.HandleUserLogin)
	auth.Get("/info", middleware.Auth(), handler.HandleUserInfo)
	auth.Get("/login-logs", middleware.Auth(), handler.HandleGetLoginLogs)

	// 资产路由
	assets := api.Group("/assets")
	assets.Use(middleware.Auth())
	assets.Get("/", handler.HandleGetAllAssets)
	assets.Get("/statistics", handler.HandleInventoryStatistics)
	assets.Get("/export", handler.HandleAssetExport)
	assets.Get("/:id", handler.HandleGetAsset)
	assets.Post("/", handler.HandleAssetAdd)
	assets.Put("/:id", handler.HandleAssetUpdate)
	assets.Delete("/:id", handler.HandleAssetDelete)

	// 操作日志路由
	logs := api.Group("/logs")
	logs.Use(middleware.Auth())
	logs.Get("/", handler.HandleGetLogs)
	logs.Get("/mine", handler.HandleGetUserLogs)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
