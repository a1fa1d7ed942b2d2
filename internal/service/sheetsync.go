package service

import (
	"context"
	"fmt"
	"log"
	"os"

	"asset-inventory-system/internal/model"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetSyncService 把资产表同步到 Google Sheet，供台账在线查看。
// 数据库始终是唯一数据源，同步只往 Sheet 写，不回写数据库。
type SheetSyncService struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSheetSyncService(enableSync bool, credentialPath, spreadsheetID, sheetName string) (*SheetSyncService, error) {
	if !enableSync {
		return nil, nil
	}

	ctx := context.Background()

	// 读取凭证文件
	b, err := os.ReadFile(credentialPath)
	if err != nil {
		return nil, err
	}

	// 使用服务账号授权
	creds, err := google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("无法加载凭证: %v", err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, err
	}

	return &SheetSyncService{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// 列布局和 model.RowHeader 一致：A=username ... AD=id，共30列，ID在AD列
const sheetIDColumn = "AD"

func rowValues(asset *model.Asset) []interface{} {
	row := asset.Row()
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	return values
}

// SyncAsset 按资产ID在 Sheet 中做 upsert：找到就更新该行，找不到就追加
func (s *SheetSyncService) SyncAsset(asset *model.Asset) error {
	if s == nil {
		return nil
	}

	// 在ID列里找现有行
	rangeToSearch := fmt.Sprintf("%s!%s2:%s", s.sheetName, sheetIDColumn, sheetIDColumn)
	idResp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, rangeToSearch).Do()
	if err != nil {
		log.Printf("查询Sheet数据失败: %v", err)
		return fmt.Errorf("查询Sheet数据失败: %v", err)
	}

	assetID := fmt.Sprintf("%d", asset.ID)
	var rowIndex int
	found := false
	for i, row := range idResp.Values {
		if len(row) > 0 && row[0] == assetID {
			found = true
			rowIndex = i + 2 // +2因为A2开始且数组从0开始
			break
		}
	}

	values := [][]interface{}{rowValues(asset)}

	// 根据是否找到决定更新还是追加
	if found {
		rangeData := fmt.Sprintf("%s!A%d:%s%d", s.sheetName, rowIndex, sheetIDColumn, rowIndex)
		_, err = s.service.Spreadsheets.Values.Update(
			s.spreadsheetID,
			rangeData,
			&sheets.ValueRange{Values: values},
		).ValueInputOption("USER_ENTERED").Do()
	} else {
		_, err = s.service.Spreadsheets.Values.Append(
			s.spreadsheetID,
			fmt.Sprintf("%s!A2:%s", s.sheetName, sheetIDColumn),
			&sheets.ValueRange{Values: values},
		).ValueInputOption("USER_ENTERED").Do()
	}

	if err != nil {
		log.Printf("同步到Google Sheet失败: %v", err)
		return fmt.Errorf("同步到Google Sheet失败: %v", err)
	}

	log.Printf("成功同步资产 %d 到Google Sheet", asset.ID)
	return nil
}

// BatchSyncAssets 批量追加资产行，用于全量导出
func (s *SheetSyncService) BatchSyncAssets(assets []model.Asset) error {
	if s == nil {
		return nil
	}

	var values [][]interface{}
	for i := range assets {
		values = append(values, rowValues(&assets[i]))
	}

	rangeData := fmt.Sprintf("%s!A2:%s", s.sheetName, sheetIDColumn)
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := s.service.Spreadsheets.Values.Append(
		s.spreadsheetID,
		rangeData,
		valueRange,
	).ValueInputOption("USER_ENTERED").Do()

	if err != nil {
		log.Printf("Failed to batch sync assets: %v", err)
		return err
	}

	return nil
}
