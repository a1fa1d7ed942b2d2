package service

import (
	"asset-inventory-system/internal/model"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	// 成本：非负数字，最多两位小数
	costPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	// IP：只检查点分四段的形状，不检查每段范围（沿用原系统的宽松校验）
	ipPattern = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
)

// ListAssets 全表扫描，按主键顺序返回
func ListAssets(db *gorm.DB) ([]model.Asset, error) {
	var assets []model.Asset
	if err := db.Order("id").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// GetAsset 按ID查找单个资产
func GetAsset(db *gorm.DB, id uint) (*model.Asset, error) {
	var asset model.Asset
	result := db.First(&asset, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, result.Error
	}
	return &asset, nil
}

// validateAssetInput 新增路径的校验是 accumulate 模式：
// 所有违反的规则一起收集后统一报告，和注册的 fail-fast 不是一套策略。
func validateAssetInput(input *model.AssetInput) []string {
	var errs []string
	if input.Username == "" {
		errs = append(errs, "Username is required.")
	}
	if input.Item == "" {
		errs = append(errs, "Item is required.")
	}
	if input.Cost == "" {
		errs = append(errs, "Cost is required.")
	} else if !costPattern.MatchString(input.Cost) {
		errs = append(errs, "Cost must be a valid number.")
	}
	if input.IPAddress != "" && !ipPattern.MatchString(input.IPAddress) {
		errs = append(errs, "IP Address format is invalid.")
	}
	if input.Status != "" && !isValidStatus(input.Status) {
		errs = append(errs, "Status must be one of Working, Not Working, Repair, Fair.")
	}
	return errs
}

func isValidStatus(status string) bool {
	for _, s := range model.AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// AddAsset 校验通过后持久化一条新资产
func AddAsset(db *gorm.DB, input *model.AssetInput) (*model.Asset, error) {
	if errs := validateAssetInput(input); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	asset := &model.Asset{
		Username:        input.Username,
		Item:            input.Item,
		ComputerName:    input.ComputerName,
		IPAddress:       input.IPAddress,
		MACAddress:      input.MACAddress,
		Make:            input.Make,
		Model:           input.Model,
		ScreenSize:      input.ScreenSize,
		ManSerialNo:     input.ManSerialNo,
		GSerialNumber:   input.GSerialNumber,
		OperatingSystem: input.OperatingSystem,
		OSVersion:       input.OSVersion,
		OSBuild:         input.OSBuild,
		SystemType:      input.SystemType,
		StorageSize:     input.StorageSize,
		MemorySize:      input.MemorySize,
		ProcessorSpeed:  input.ProcessorSpeed,
		OfficeSuite:     input.OfficeSuite,
		Comments:        input.Comments,
		Recommendations: input.Recommendations,
		Location:        input.Location,
		Status:          input.Status,
		DateOfPurchase:  normalizeDate(input.DateOfPurchase),
		Cost:            input.Cost,
		Supplier:        input.Supplier,
		GPONo:           input.GPONo,
		WarrantyPeriod:  input.WarrantyPeriod,
		Quantity:        input.Quantity,
		StorageType:     input.StorageType,
	}

	// 表单默认值：状态默认 Working，数量最小为 1
	if asset.Status == "" {
		asset.Status = model.StatusWorking
	}
	if asset.Quantity < 1 {
		asset.Quantity = 1
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(asset).Error
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// UpdateAsset 覆盖编辑表单暴露的那部分字段，其余字段保留原值。
// 编辑路径不重新校验 cost/ip 格式，沿用原系统的行为（见 DESIGN.md）。
// 状态枚举照样要守住：原表单的下拉框提交不了枚举外的值，HTTP API 可以。
func UpdateAsset(db *gorm.DB, id uint, input *model.AssetInput) (*model.Asset, error) {
	if input.Status != "" && !isValidStatus(input.Status) {
		return nil, newValidationError("Status must be one of Working, Not Working, Repair, Fair.")
	}

	var asset model.Asset
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.First(&asset, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return result.Error
		}

		asset.Username = input.Username
		asset.Item = input.Item
		asset.Location = input.Location
		// 状态为空保留原值，不把合法状态覆盖成空串
		if input.Status != "" {
			asset.Status = input.Status
		}
		asset.Cost = input.Cost
		asset.DateOfPurchase = normalizeDate(input.DateOfPurchase)
		asset.ComputerName = input.ComputerName
		asset.IPAddress = input.IPAddress
		asset.MACAddress = input.MACAddress
		asset.ManSerialNo = input.ManSerialNo

		return tx.Save(&asset).Error
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteAsset 按ID删除，不存在则返回 ErrAssetNotFound
func DeleteAsset(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var asset model.Asset
		result := tx.First(&asset, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return result.Error
		}
		return tx.Delete(&asset).Error
	})
}

// normalizeDate 能解析的日期统一成 ISO-8601（YYYY-MM-DD），解析不了的原样保留
func normalizeDate(value string) string {
	if value == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Format("2006-01-02")
	}
	return value
}

// SearchAssets 在 username、item、location 三个字段上做大小写不敏感的
// 子串匹配，空字段永远不算命中
func SearchAssets(assets []model.Asset, term string) []model.Asset {
	if term == "" {
		return assets
	}
	lower := strings.ToLower(term)
	var filtered []model.Asset
	for _, a := range assets {
		if containsFold(a.Username, lower) || containsFold(a.Item, lower) || containsFold(a.Location, lower) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func containsFold(value, lowerTerm string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

// FilterByStatus 状态精确匹配，"All" 表示不过滤
func FilterByStatus(assets []model.Asset, status string) []model.Asset {
	if status == "" || status == "All" {
		return assets
	}
	var filtered []model.Asset
	for _, a := range assets {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterByDateRange 按采购日期过滤，两端闭区间。
// 日期缺失或解析失败的行在过滤生效后被排除，不报错。
func FilterByDateRange(assets []model.Asset, start, end time.Time) []model.Asset {
	var filtered []model.Asset
	for _, a := range assets {
		d, err := time.Parse("2006-01-02", a.DateOfPurchase)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// FormatCost 纯数字（至多一个小数点）的成本加上普拉币种前缀，其余原样返回。
// 只用于展示，存储的 cost 始终是原始文本。
func FormatCost(cost string) string {
	stripped := strings.Replace(cost, ".", "", 1)
	if stripped == "" {
		return cost
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return cost
		}
	}
	return "P " + cost
}
