package group

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportRoster renders the group's pilgrim roster as an xlsx workbook.
// Returns (nil, "", nil) when the group does not exist.
func (s *GroupServiceImpl) ExportRoster(ctx context.Context, id string) ([]byte, string, error) {
	group, err := s.GroupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if group == nil {
		return nil, "", nil
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Roster"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	columns := []string{"ID", "Name", "Email"}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, pilgrim := range group.Pilgrims {
		values := []string{pilgrim.ID, pilgrim.Name, pilgrim.Email}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("roster_%s.xlsx", group.ID)
	return buf.Bytes(), filename, nil
}
