package handler

import (
	"asset-inventory-system/internal/database"
	"asset-inventory-system/internal/model"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleInventoryStatistics 处理库存统计信息请求
func HandleInventoryStatistics(c *fiber.Ctx) error {
	// 获取查询参数
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	// 解析日期
	var start, end time.Time
	var err error

	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    400,
				"message": "开始日期格式错误",
				"errors": []fiber.Map{
					{"field": "start_date", "message": "日期格式应为 YYYY-MM-DD"},
				},
			})
		}
	} else {
		// 默认为一年前
		start = time.Now().AddDate(-1, 0, 0)
	}

	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    400,
				"message": "结束日期格式错误",
				"errors": []fiber.Map{
					{"field": "end_date", "message": "日期格式应为 YYYY-MM-DD"},
				},
			})
		}
	} else {
		// 默认为当前时间
		end = time.Now()
	}

	// 获取数据库连接
	db := database.DB

	// 构建统计信息
	stats := &model.InventoryStatistics{
		AssetsByLocation: make(map[string]int),
		AssetsByItem:     make(map[string]int),
		DailyPurchases:   make([]model.DailyPurchases, 0),
	}

	// 统计资产总数
	if err := db.Model(&model.Asset{}).Count(&stats.TotalAssets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    500,
			"message": "获取资产总数失败",
		})
	}

	// 按状态统计
	statusCounts := []struct {
		status string
		dest   *int64
	}{
		{model.StatusWorking, &stats.WorkingAssets},
		{model.StatusNotWorking, &stats.NotWorkingAssets},
		{model.StatusRepair, &stats.RepairAssets},
		{model.StatusFair, &stats.FairAssets},
	}
	for _, sc := range statusCounts {
		if err := db.Model(&model.Asset{}).Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    500,
				"message": "获取状态统计失败",
			})
		}
	}

	// 统计总数量（quantity 求和）
	if err := db.Model(&model.Asset{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&stats.TotalQuantity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    500,
			"message": "获取数量统计失败",
		})
	}

	// 按地点统计资产数量
	var locationStats []struct {
		Location string
		Count    int
	}
	if err := db.Model(&model.Asset{}).
		Select("location, count(*) as count").
		Group("location").
		Scan(&locationStats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    500,
			"message": "获取地点统计失败",
		})
	}
	for _, ls := range locationStats {
		stats.AssetsByLocation[ls.Location] = ls.Count
	}

	// 按资产类型统计
	var itemStats []struct {
		Item  string
		Count int
	}
	if err := db.Model(&model.Asset{}).
		Select("item, count(*) as count").
		Group("item").
		Scan(&itemStats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    500,
			"message": "获取类型统计失败",
		})
	}
	for _, is := range itemStats {
		stats.AssetsByItem[is.Item] = is.Count
	}

	// 获取区间内每日采购统计。date_of_purchase 是 YYYY-MM-DD 文本，
	// 字典序比较等价于日期比较
	var dailyStats []model.DailyPurchases
	if err := db.Model(&model.Asset{}).
		Select("date_of_purchase as date, COUNT(*) as assets, COALESCE(SUM(quantity), 0) as items").
		Where("date_of_purchase BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("date_of_purchase").
		Order("date ASC").
		Scan(&dailyStats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    500,
			"message": "获取每日采购统计失败",
		})
	}
	stats.DailyPurchases = dailyStats

	return c.JSON(fiber.Map{
		"code":    200,
		"message": "success",
		"data":    stats,
	})
}
