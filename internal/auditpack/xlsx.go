package auditpack

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const registerSheet = "Certificate Register"

var registerHeaders = []string{
	"Certificate ID", "Supplier", "Material", "Cert Body", "Cert No",
	"Country", "Issue Date", "Expiry Date", "Days Until Expiry", "Status", "File",
}

var registerColumnWidths = map[string]float64{
	"A": 14, "B": 22, "C": 26, "D": 32, "E": 16,
	"F": 10, "G": 12, "H": 12, "I": 16, "J": 12, "K": 30,
}

// RegisterRow 台账行，在 Row 基础上带过期天数
type RegisterRow struct {
	Row
	DaysUntilExpiry int
}

// BuildRegister 生成 XLSX 证书台账
func BuildRegister(rows []RegisterRow) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(registerSheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create register sheet failed: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("drop default sheet failed: %w", err)
	}

	for col, width := range registerColumnWidths {
		if err := f.SetColWidth(registerSheet, col, col, width); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("set column width failed: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style failed: %w", err)
	}

	for i, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(registerSheet, cell, h); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write header %s failed: %w", h, err)
		}
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(registerHeaders), 1)
	if err := f.SetCellStyle(registerSheet, "A1", lastHeaderCell, headerStyle); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("style header row failed: %w", err)
	}

	for i, r := range rows {
		c := r.Certificate
		values := []interface{}{
			c.ID, c.Supplier, c.Material, c.CertBody, c.CertNo,
			c.Country, c.IssueDate, c.ExpiryDate, r.DaysUntilExpiry, string(r.Status), c.FileName,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(registerSheet, cell, v); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("write register row %d failed: %w", i+2, err)
			}
		}
	}

	return f, nil
}
