package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/aqualims/aqualims/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportTimestampLayout = time.RFC3339

var ExportHeaders = []string{
	"Date",
	"Sample Point",
	"Attribute",
	"Limit",
	"24 Hours",
	"48 Hours",
	"72 Hours",
	"Negative Control",
	"Remarks",
	"Entered By",
	"Created At",
	"Last Modified By",
	"Last Modified At",
	"Admin Remark",
}

// ExportService renders a filtered record set as CSV or XLSX downloads.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (service *ExportService) BuildCSV(records []models.LabRecord) (*bytes.Buffer, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(ExportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(exportRow(record)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buffer, nil
}

func (service *ExportService) BuildXLSX(records []models.LabRecord) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheetName = "Lab Records"
	sheetIndex, err := file.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(sheetIndex)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for column, header := range ExportHeaders {
		cellName, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return nil, fmt.Errorf("resolve header cell: %w", err)
		}
		if err := file.SetCellValue(sheetName, cellName, header); err != nil {
			return nil, fmt.Errorf("write header cell: %w", err)
		}
		if err := file.SetCellStyle(sheetName, cellName, cellName, headerStyle); err != nil {
			return nil, fmt.Errorf("style header cell: %w", err)
		}
	}

	for rowIndex, record := range records {
		for column, value := range exportRow(record) {
			cellName, err := excelize.CoordinatesToCellName(column+1, rowIndex+2)
			if err != nil {
				return nil, fmt.Errorf("resolve data cell: %w", err)
			}
			if err := file.SetCellValue(sheetName, cellName, value); err != nil {
				return nil, fmt.Errorf("write data cell: %w", err)
			}
		}
	}

	if err := file.SetColWidth(sheetName, "A", "A", 12); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := file.SetColWidth(sheetName, "B", "C", 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buffer, nil
}

func exportRow(record models.LabRecord) []string {
	lastModifiedAt := ""
	if record.LastModifiedAt != nil {
		lastModifiedAt = record.LastModifiedAt.Format(exportTimestampLayout)
	}
	return []string{
		record.Date,
		record.SamplePoint,
		record.Attribute,
		record.Limit,
		record.Observation24h,
		record.Observation48h,
		record.Observation72h,
		record.NegativeControl,
		record.Remarks,
		record.CreatedBy,
		record.CreatedAt.Format(exportTimestampLayout),
		record.LastModifiedBy,
		lastModifiedAt,
		record.AdminRemark,
	}
}
