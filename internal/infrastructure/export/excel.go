// Package export renders report data as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"stockroom/internal/domain/reports"
)

var ledgerHeaders = []string{
	"ID", "Date", "Part Number", "Product Name", "Source",
	"Stock In", "Stock Out", "Destination", "Stock", "Remarks",
}

// WriteLedger renders the stock movement ledger into an xlsx workbook
// and writes it to w.
func WriteLedger(w io.Writer, rows []reports.LedgerRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Stock Movement"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(ledgerHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		values := []any{
			row.ID, row.Date, row.PartNumber, row.ProductName, row.Source,
			row.StockIn, row.StockOut, row.Destination, row.Stock, row.Remarks,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "J", 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
