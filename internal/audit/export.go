// Package audit produces spreadsheet exports for the salon back office.
package audit

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

var clientColumns = []string{"Email", "Name", "Phone", "Visits", "First Visit", "Last Update"}

// WriteClients renders the client records as an xlsx workbook.
func WriteClients(w io.Writer, clients []models.Client) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Clients"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range clientColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	// Bold header row
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(clientColumns), 1)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}

	for rowIdx, c := range clients {
		values := []interface{}{
			c.Email,
			c.Name,
			c.Phone,
			c.Visits,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
			c.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, val := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
