package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"asset-inventory-system/internal/database"
	"asset-inventory-system/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// 资产路由要求上下文里有登录用户，测试里直接注入
func setupAssetApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Get("/api/v1/assets", HandleGetAllAssets)
	app.Get("/api/v1/assets/export", HandleAssetExport)
	app.Get("/api/v1/assets/:id", HandleGetAsset)
	app.Post("/api/v1/assets", HandleAssetAdd)
	app.Put("/api/v1/assets/:id", HandleAssetUpdate)
	app.Delete("/api/v1/assets/:id", HandleAssetDelete)
	return app
}

func postAsset(t *testing.T, app *fiber.App, input model.AssetInput) (*http.Response, model.Asset) {
	t.Helper()
	body, _ := json.Marshal(input)
	req, _ := http.NewRequest("POST", "/api/v1/assets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)

	var asset model.Asset
	if resp.StatusCode == fiber.StatusCreated {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&asset))
	}
	return resp, asset
}

func testInput() model.AssetInput {
	return model.AssetInput{
		Username:       "tmodise",
		Item:           "Laptop",
		Location:       "Gaborone HQ",
		Status:         model.StatusWorking,
		DateOfPurchase: "2024-01-01",
		Cost:           "8500.00",
		Quantity:       1,
	}
}

func TestHandleAssetAdd(t *testing.T) {
	app := setupAssetApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	resp, asset := postAsset(t, app, testInput())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotZero(t, asset.ID)

	// accumulate 模式：三条错误一起返回
	bad := model.AssetInput{Username: "", Item: "", Cost: "abc"}
	body, _ := json.Marshal(bad)
	req, _ := http.NewRequest("POST", "/api/v1/assets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	badResp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, badResp.StatusCode)

	var out struct {
		Errors []string `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(badResp.Body).Decode(&out))
	assert.Len(t, out.Errors, 3)
}

func TestHandleGetAllAssetsFilters(t *testing.T) {
	app := setupAssetApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	a := testInput()
	postAsset(t, app, a)

	b := testInput()
	b.Username = "kmolefe"
	b.Item = "Printer"
	b.Location = "Francistown"
	b.Status = model.StatusRepair
	b.DateOfPurchase = "2023-06-15"
	postAsset(t, app, b)

	type listResp struct {
		Assets []struct {
			model.Asset
			DisplayCost string `json:"display_cost"`
		} `json:"assets"`
		Total int `json:"total"`
	}

	list := func(query string) listResp {
		req, _ := http.NewRequest("GET", "/api/v1/assets"+query, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out listResp
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	// 不带筛选返回全部，成本带上展示前缀
	all := list("")
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, "P 8500.00", all.Assets[0].DisplayCost)

	// 搜索 username/item/location
	assert.Equal(t, 1, list("?search=printer").Total)
	assert.Equal(t, 1, list("?search=GABORONE").Total)

	// 状态筛选，All 不过滤
	assert.Equal(t, 1, list("?status=Repair").Total)
	assert.Equal(t, 2, list("?status=All").Total)

	// 日期区间两端闭合
	assert.Equal(t, 1, list("?start_date=2024-01-01&end_date=2024-01-01").Total)
	assert.Equal(t, 0, list("?start_date=2024-01-02&end_date=2024-12-31").Total)
	assert.Equal(t, 2, list("?start_date=2023-01-01&end_date=2024-12-31").Total)

	// 日期格式错误
	req, _ := http.NewRequest("GET", "/api/v1/assets?start_date=junk", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAssetUpdateAndDelete(t *testing.T) {
	app := setupAssetApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	_, asset := postAsset(t, app, testInput())
	id := strconv.FormatUint(uint64(asset.ID), 10)

	edit := testInput()
	edit.Username = "kmolefe"
	edit.Status = model.StatusFair
	body, _ := json.Marshal(edit)
	req, _ := http.NewRequest("PUT", "/api/v1/assets/"+id, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// 枚举外的状态在编辑接口同样被拒绝
	badEdit := testInput()
	badEdit.Status = "Exploded"
	badBody, _ := json.Marshal(badEdit)
	req, _ = http.NewRequest("PUT", "/api/v1/assets/"+id, bytes.NewBuffer(badBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// 删除
	req, _ = http.NewRequest("DELETE", "/api/v1/assets/"+id, nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// 删除之后更新和再次删除都是 404
	req, _ = http.NewRequest("PUT", "/api/v1/assets/"+id, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req, _ = http.NewRequest("DELETE", "/api/v1/assets/"+id, nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req, _ = http.NewRequest("GET", "/api/v1/assets/"+id, nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleAssetExport(t *testing.T) {
	app := setupAssetApp()
	database.InitTestDB()
	defer database.CleanTestDB()

	postAsset(t, app, testInput())

	req, _ := http.NewRequest("GET", "/api/v1/assets/export", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	data, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	// 首列固定是 username
	assert.True(t, strings.HasPrefix(lines[0], "username,item,"))
	assert.True(t, strings.HasPrefix(lines[1], "tmodise,Laptop,"))
}
