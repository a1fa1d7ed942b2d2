package handler

import (
	"asset-inventory-system/internal/database"
	"asset-inventory-system/internal/model"
	"asset-inventory-system/internal/service"
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

var sheetSync *service.SheetSyncService

func InitSheetSync(enableSync bool, credentialPath, spreadsheetID, sheetName string) (*service.SheetSyncService, error) {
	var err error
	sheetSync, err = service.NewSheetSyncService(enableSync, credentialPath, spreadsheetID, sheetName)
	return sheetSync, err
}

// assetView 列表展示用的行：原始字段加上带币种前缀的成本
type assetView struct {
	model.Asset
	DisplayCost string `json:"display_cost"`
}

// HandleGetAllAssets 获取资产列表，支持 search / status / start_date / end_date 筛选
func HandleGetAllAssets(c *fiber.Ctx) error {
	assets, err := service.ListAssets(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取资产数据失败",
		})
	}

	// 筛选都在内存中做，和数据库里的存储格式无关
	if search := c.Query("search"); search != "" {
		assets = service.SearchAssets(assets, search)
	}

	status := c.Query("status", "All")
	assets = service.FilterByStatus(assets, status)

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" || endDate != "" {
		start := time.Time{}
		end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		var err error

		if startDate != "" {
			start, err = time.Parse("2006-01-02", startDate)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "开始日期格式应为 YYYY-MM-DD",
				})
			}
		}
		if endDate != "" {
			end, err = time.Parse("2006-01-02", endDate)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "结束日期格式应为 YYYY-MM-DD",
				})
			}
		}

		assets = service.FilterByDateRange(assets, start, end)
	}

	views := make([]assetView, 0, len(assets))
	for _, a := range assets {
		views = append(views, assetView{Asset: a, DisplayCost: service.FormatCost(a.Cost)})
	}

	return c.JSON(fiber.Map{
		"assets": views,
		"total":  len(views),
	})
}

// HandleGetAsset 获取单个资产详情
func HandleGetAsset(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的资产ID",
		})
	}

	asset, err := service.GetAsset(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Asset not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取资产数据失败",
		})
	}

	return c.JSON(asset)
}

func HandleAssetAdd(c *fiber.Ctx) error {
	input := new(model.AssetInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	asset, err := service.AddAsset(database.DB, input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			// accumulate 模式：所有违反的规则一起返回
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": verr.Messages,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "资产创建失败",
		})
	}

	userID := c.Locals("userID").(uint)
	service.LogOperation(userID, "add", "asset", strconv.FormatUint(uint64(asset.ID), 10), input)

	if sheetSync != nil {
		go sheetSync.SyncAsset(asset)
	}

	return c.Status(fiber.StatusCreated).JSON(asset)
}

func HandleAssetUpdate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的资产ID",
		})
	}

	input := new(model.AssetInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	asset, err := service.UpdateAsset(database.DB, uint(id), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": verr.Messages,
			})
		}
		if errors.Is(err, service.ErrAssetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Asset not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "更新资产失败",
		})
	}

	userID := c.Locals("userID").(uint)
	service.LogOperation(userID, "update", "asset", strconv.Itoa(id), input)

	if sheetSync != nil {
		go sheetSync.SyncAsset(asset)
	}

	return c.JSON(fiber.Map{
		"message": "资产更新成功",
		"asset":   asset,
	})
}

func HandleAssetDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的资产ID",
		})
	}

	if err := service.DeleteAsset(database.DB, uint(id)); err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Asset not found.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "删除资产失败",
		})
	}

	userID := c.Locals("userID").(uint)
	service.LogOperation(userID, "delete", "asset", strconv.Itoa(id), nil)

	return c.JSON(fiber.Map{
		"message": "资产删除成功",
	})
}

// HandleAssetExport 导出CSV，列顺序由 model.RowHeader 固定
func HandleAssetExport(c *fiber.Ctx) error {
	assets, err := service.ListAssets(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取资产数据失败",
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(model.RowHeader); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "导出失败",
		})
	}
	for i := range assets {
		if err := w.Write(assets[i].Row()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "导出失败",
			})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "导出失败",
		})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="assets.csv"`)
	return c.Send(buf.Bytes())
}
