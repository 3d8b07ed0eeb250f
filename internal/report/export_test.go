package report_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/report"
)

func TestWriteWorkbook(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	checkIn := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	minutes := 480

	path := filepath.Join(t.TempDir(), "report.xlsx")
	err := report.Write(path, report.Data{
		OfficeTitle: "Test Shop",
		From:        from,
		To:          to,
		Revenue: []db.RevenueLine{
			{ServiceName: "Haircut", Orders: 3, Quantity: 3, Revenue: 150},
			{ServiceName: "Coloring", Orders: 1, Quantity: 1, Revenue: 120},
		},
		Expenses: 40,
		Attendance: []models.Attendance{
			{
				UserID:          "u1",
				User:            models.User{Name: "Sara"},
				WorkDate:        "2026-08-15",
				CheckIn:         checkIn,
				CheckOut:        &checkOut,
				SessionDuration: &minutes,
			},
		},
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Revenue", "A4"); got != "Haircut" {
		t.Errorf("Revenue!A4 = %q, want Haircut", got)
	}
	if got, _ := f.GetCellValue("Revenue", "D4"); got != "150" {
		t.Errorf("Revenue!D4 = %q, want 150", got)
	}

	if got, _ := f.GetCellValue("Attendance", "A2"); got != "Sara" {
		t.Errorf("Attendance!A2 = %q, want Sara", got)
	}
	if got, _ := f.GetCellValue("Attendance", "E2"); got != "480" {
		t.Errorf("Attendance!E2 = %q, want 480", got)
	}
}
