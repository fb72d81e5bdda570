package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"marathon-backend/config"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const reportDir = "./public/files"

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateExcel writes a slice of structs into a workbook under
// ./public/files. Headers must match exported field names; the cell value
// for each row is read by reflection. Returns the public path of the file.
func GenerateExcel(data interface{}, taskName string, headers []string) (string, error) {
	if err := EnsureDirectoryExists(reportDir + "/"); err != nil {
		return "", fmt.Errorf("failed to ensure directory exists: %v", err)
	}

	f := excelize.NewFile()
	sheetName := "Sheet1"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error computing header cell: %v", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	dataSlice := reflect.ValueOf(data)
	if dataSlice.Kind() != reflect.Slice {
		return "", fmt.Errorf("expected data to be a slice, got %v", dataSlice.Kind())
	}

	for row := 0; row < dataSlice.Len(); row++ {
		item := dataSlice.Index(row)
		for col, header := range headers {
			field := item.FieldByName(header)
			if !field.IsValid() {
				config.Logger.Warn("Field not found while writing report",
					zap.String("field", header),
					zap.Int("row", row+2),
				)
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("error computing cell name: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, fmt.Sprintf("%v", field.Interface())); err != nil {
				return "", fmt.Errorf("error setting value for field %s (row %d): %v", header, row+2, err)
			}
		}
	}

	f.SetActiveSheet(index)

	fileName := fmt.Sprintf("%s_%s.xlsx", taskName, time.Now().Format("2006-01-02_15-04-05"))
	publicPath := fmt.Sprintf("/public/files/%s", fileName)
	savePath := filepath.Join(reportDir, fileName)

	if err := f.SaveAs(savePath); err != nil {
		return "", err
	}

	config.Logger.Info("Saved report workbook", zap.String("path", savePath))
	return publicPath, nil
}
