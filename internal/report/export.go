// Package report renders revenue and attendance figures into XLSX
// workbooks for the people who want spreadsheets.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// Data is everything one exported workbook contains.
type Data struct {
	OfficeTitle string
	From, To    time.Time
	Revenue     []db.RevenueLine
	Expenses    float64
	Attendance  []models.Attendance
}

// Write creates a workbook with a revenue sheet and an attendance sheet
// at the given path.
func Write(path string, data Data) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const revenueSheet = "Revenue"
	const attendanceSheet = "Attendance"

	if err := f.SetSheetName("Sheet1", revenueSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(attendanceSheet); err != nil {
		return err
	}

	if err := writeRevenueSheet(f, revenueSheet, data); err != nil {
		return err
	}
	if err := writeAttendanceSheet(f, attendanceSheet, data); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRevenueSheet(f *excelize.File, sheet string, data Data) error {
	title := fmt.Sprintf("%s — revenue %s to %s",
		data.OfficeTitle, timeutil.WorkDate(data.From), timeutil.WorkDate(data.To))
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}

	headers := []string{"Service", "Orders", "Quantity", "Revenue"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 4
	total := 0.0
	for _, line := range data.Revenue {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.ServiceName)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Orders)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Quantity)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.Revenue)
		total += line.Revenue
		row++
	}

	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total revenue")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), total)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total expenses")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), data.Expenses)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Net")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), total-data.Expenses)

	return nil
}

func writeAttendanceSheet(f *excelize.File, sheet string, data Data) error {
	headers := []string{"Employee", "Work date", "Check in", "Check out", "Minutes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, a := range data.Attendance {
		name := a.User.Name
		if name == "" {
			name = a.UserID
		}

		checkOut := "" // still open
		if a.CheckOut != nil {
			checkOut = a.CheckOut.Format("15:04:05")
		}
		minutes := ""
		if a.SessionDuration != nil {
			minutes = fmt.Sprintf("%d", *a.SessionDuration)
		}

		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), a.WorkDate)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), a.CheckIn.Format("15:04:05"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), checkOut)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), minutes)
		row++
	}

	return nil
}
