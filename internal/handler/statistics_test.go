package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"asset-inventory-system/internal/database"
	"asset-inventory-system/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupStatsApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Post("/api/v1/assets", HandleAssetAdd)
	app.Get("/api/v1/assets/statistics", HandleInventoryStatistics)
	return app
}

func TestHandleInventoryStatistics(t *testing.T) {
	app := setupStatsApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	a := testInput()
	postAsset(t, app, a)

	b := testInput()
	b.Item = "Printer"
	b.Location = "Francistown"
	b.Status = model.StatusRepair
	b.DateOfPurchase = "2023-06-15"
	b.Quantity = 2
	postAsset(t, app, b)

	type statsResp struct {
		Code int                       `json:"code"`
		Data model.InventoryStatistics `json:"data"`
	}

	get := func(query string) (int, statsResp) {
		req, _ := http.NewRequest("GET", "/api/v1/assets/statistics"+query, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		var out statsResp
		if resp.StatusCode == fiber.StatusOK {
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		}
		return resp.StatusCode, out
	}

	// 总量和各状态计数不受日期区间影响
	status, out := get("")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int64(2), out.Data.TotalAssets)
	assert.Equal(t, int64(1), out.Data.WorkingAssets)
	assert.Equal(t, int64(1), out.Data.RepairAssets)
	assert.Equal(t, int64(0), out.Data.NotWorkingAssets)
	assert.Equal(t, int64(3), out.Data.TotalQuantity)
	assert.Equal(t, 1, out.Data.GetAssetsByLocation("Francistown"))
	assert.Equal(t, 1, out.Data.GetAssetsByItem("Printer"))

	// 每日采购统计只计入区间内的采购
	status, out = get("?start_date=2024-01-01&end_date=2024-01-01")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, out.Data.DailyPurchases, 1)
	assert.Equal(t, "2024-01-01", out.Data.DailyPurchases[0].Date)
	assert.Equal(t, 1, out.Data.DailyPurchases[0].Assets)
	assert.Equal(t, 1, out.Data.DailyPurchases[0].Items)

	status, out = get("?start_date=2023-01-01&end_date=2024-12-31")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, out.Data.DailyPurchases, 2)

	// 日期格式错误
	status, _ = get("?start_date=junk")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
