package model

import "strconv"

// 资产状态枚举值
const (
	StatusWorking    = "Working"
	StatusNotWorking = "Not Working"
	StatusRepair     = "Repair"
	StatusFair       = "Fair"
)

// AssetStatuses 合法的资产状态集合
var AssetStatuses = []string{StatusWorking, StatusNotWorking, StatusRepair, StatusFair}

type Asset struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Username        string `json:"username"`
	Item            string `json:"item"`
	ComputerName    string `json:"computer_name"`
	IPAddress       string `json:"ip_address"`
	MACAddress      string `json:"mac_address"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	ScreenSize      string `json:"screen_size"`
	ManSerialNo     string `json:"man_serial_no"`
	GSerialNumber   string `json:"g_serial_number"`
	OperatingSystem string `json:"operating_system"`
	OSVersion       string `json:"os_version"`
	OSBuild         string `json:"os_build"`
	SystemType      string `json:"system_type"`
	StorageSize     string `json:"storage_size"`
	MemorySize      string `json:"memory_size"`
	ProcessorSpeed  string `json:"processor_speed"`
	OfficeSuite     string `json:"office_suite"`
	Comments        string `json:"comments"`
	Recommendations string `json:"recommendations"`
	Location        string `json:"location"`
	Status          string `json:"status"`
	// 采购日期以 YYYY-MM-DD 文本存储
	DateOfPurchase string `json:"date_of_purchase"`
	// 成本按原样存文本，展示时再加币种前缀
	Cost           string `json:"cost"`
	Supplier       string `json:"supplier"`
	GPONo          string `json:"gpo_no"`
	WarrantyPeriod string `json:"warranty_period"`
	Quantity       int    `json:"quantity"`
	StorageType    string `json:"storage_type"`
}

// RowHeader 导出表格的列名，与 Row 顺序一致
var RowHeader = []string{
	"username", "item", "computer_name", "ip_address", "mac_address",
	"make", "model", "screen_size", "man_serial_no", "g_serial_number",
	"operating_system", "os_version", "os_build", "system_type",
	"storage_size", "memory_size", "processor_speed", "office_suite",
	"comments", "recommendations", "location", "status",
	"date_of_purchase", "cost", "supplier", "gpo_no", "warranty_period",
	"quantity", "storage_type", "id",
}

// Row 返回固定顺序的字段列表（username 在首列），用于CSV导出和Sheet同步
func (a *Asset) Row() []string {
	return []string{
		a.Username, a.Item, a.ComputerName, a.IPAddress, a.MACAddress,
		a.Make, a.Model, a.ScreenSize, a.ManSerialNo, a.GSerialNumber,
		a.OperatingSystem, a.OSVersion, a.OSBuild, a.SystemType,
		a.StorageSize, a.MemorySize, a.ProcessorSpeed, a.OfficeSuite,
		a.Comments, a.Recommendations, a.Location, a.Status,
		a.DateOfPurchase, a.Cost, a.Supplier, a.GPONo, a.WarrantyPeriod,
		strconv.Itoa(a.Quantity), a.StorageType, strconv.FormatUint(uint64(a.ID), 10),
	}
}
