package model

import "time"

// DailyPurchases 按采购日期统计
type DailyPurchases struct {
	Date   string `json:"date"`
	Assets int    `json:"assets"`
	Items  int    `json:"items"`
}

// InventoryStatistics 库存统计信息
type InventoryStatistics struct {
	TotalAssets      int64            `json:"total_assets"`
	WorkingAssets    int64            `json:"working_assets"`
	NotWorkingAssets int64            `json:"not_working_assets"`
	RepairAssets     int64            `json:"repair_assets"`
	FairAssets       int64            `json:"fair_assets"`
	TotalQuantity    int64            `json:"total_quantity"`
	AssetsByLocation map[string]int   `json:"assets_by_location"`
	AssetsByItem     map[string]int   `json:"assets_by_item"`
	DailyPurchases   []DailyPurchases `json:"daily_purchases"`
}

// GetBrokenRate 计算故障率
func (is *InventoryStatistics) GetBrokenRate() float64 {
	if is.TotalAssets == 0 {
		return 0
	}
	return float64(is.NotWorkingAssets+is.RepairAssets) / float64(is.TotalAssets)
}

// GetAssetsByLocation 获取指定地点的资产数量
func (is *InventoryStatistics) GetAssetsByLocation(location string) int {
	if count, ok := is.AssetsByLocation[location]; ok {
		return count
	}
	return 0
}

// GetAssetsByItem 获取指定类型的资产数量
func (is *InventoryStatistics) GetAssetsByItem(item string) int {
	if count, ok := is.AssetsByItem[item]; ok {
		return count
	}
	return 0
}

// GetDailyPurchasesByDate 获取指定日期的采购统计
func (is *InventoryStatistics) GetDailyPurchasesByDate(date time.Time) *DailyPurchases {
	day := date.Format("2006-01-02")
	for _, p := range is.DailyPurchases {
		if p.Date == day {
			return &p
		}
	}
	return nil
}
