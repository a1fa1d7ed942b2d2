package model

type AssetInput struct {
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
	DateOfPurchase  string `json:"date_of_purchase"`
	Cost            string `json:"cost"`
	Supplier        string `json:"supplier"`
	GPONo           string `json:"gpo_no"`
	WarrantyPeriod  string `json:"warranty_period"`
	Quantity        int    `json:"quantity"`
	StorageType     string `json:"storage_type"`
}
