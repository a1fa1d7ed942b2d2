package handler

import (
	"asset-inventory-system/internal/database"
	"asset-inventory-system/internal/model"
	"asset-inventory-system/internal/service"
	"asset-inventory-system/internal/util"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// 注册校验用的邮箱域名，启动时由配置注入
var allowedEmailDomain = "gov.bw"

func InitAuth(domain string) {
	if domain != "" {
		allowedEmailDomain = domain
	}
}

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func HandleUserRegister(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	user, err := service.RegisterUser(database.DB, allowedEmailDomain, input.Email, input.Password, input.ConfirmPassword)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Error(),
			})
		}
		if errors.Is(err, service.ErrDuplicateUser) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User already exists.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "用户创建失败",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func HandleUserLogin(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	user, err := service.AuthenticateUser(database.DB, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Please fill in all fields.",
			})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 邮箱不存在和密码错误给同一个提示
			loginLog := &model.LoginLog{
				IP:        c.IP(),
				UserAgent: c.Get("User-Agent"),
				Status:    "failed",
				CreatedAt: time.Now(),
			}
			database.DB.Create(loginLog)

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "登录失败",
		})
	}

	// 记录登录日志
	loginLog := &model.LoginLog{
		UserID:    user.ID,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Status:    "success",
		CreatedAt: time.Now(),
	}
	database.DB.Create(loginLog)
	// 更新用户最后登录时间
	user.LastLogin = time.Now()
	database.DB.Save(user)

	// 生成JWT令牌
	token, err := util.GenerateToken(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "令牌生成失败",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"createdat": user.CreatedAt,
			"lastlogin": user.LastLogin,
		},
	})
}

func HandleUserInfo(c *fiber.Ctx) error {
	// 从上下文中获取用户ID（需要认证中间件支持）
	userID := c.Locals("userID").(uint)

	var user model.User
	result := database.DB.First(&user, userID)
	if result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "用户不存在",
		})
	}

	return c.JSON(user)
}

func HandleGetLoginLogs(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))

	// 限制页面大小
	if pageSize > 100 {
		pageSize = 100
	}

	var logs []model.LoginLog
	var total int64

	db := database.DB.Model(&model.LoginLog{}).Where("user_id = ?", userID)

	// 获取总数
	if err := db.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取登录日志总数失败",
		})
	}

	// 获取分页数据
	offset := (page - 1) * pageSize
	if err := db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取登录日志失败",
		})
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
		"page":  page,
		"size":  pageSize,
	})
}
