package db

import (
	"testing"
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	openTestDB(t)
	user := seedUser(t, "sara@shop.local", models.RoleEmployee)
	service, err := CreateService("Haircut", "Styling", 50, "")
	if err != nil {
		t.Fatal(err)
	}

	order, err := CreateOrder(CreateOrderRequest{
		UserID:      user.ID,
		ServiceID:   service.ID,
		ClientName:  "Alice Johnson",
		ClientPhone: "123-456-7890",
		Quantity:    2,
		Discount:    10,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Total != 90 {
		t.Errorf("total = %.2f, want 90.00", order.Total)
	}
	if order.Price != 50 {
		t.Errorf("price snapshot = %.2f, want 50.00", order.Price)
	}
	if order.Client.Name != "Alice Johnson" {
		t.Errorf("client = %q", order.Client.Name)
	}
}

func TestCreateOrderReusesClient(t *testing.T) {
	openTestDB(t)
	user := seedUser(t, "sara@shop.local", models.RoleEmployee)
	service, err := CreateService("Manicure", "Nails", 35, "")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		_, err := CreateOrder(CreateOrderRequest{
			UserID:      user.ID,
			ServiceID:   service.ID,
			ClientName:  "Bob Williams",
			ClientPhone: "123-456-7891",
		})
		if err != nil {
			t.Fatalf("order %d: %v", i, err)
		}
	}

	var clients int64
	DB.Model(&models.Client{}).Count(&clients)
	if clients != 1 {
		t.Errorf("clients = %d, want 1 (found-or-created)", clients)
	}
}

func TestCreateOrderRejectsExcessiveDiscount(t *testing.T) {
	openTestDB(t)
	user := seedUser(t, "sara@shop.local", models.RoleEmployee)
	service, err := CreateService("Facial", "Skincare", 80, "")
	if err != nil {
		t.Fatal(err)
	}

	_, err = CreateOrder(CreateOrderRequest{
		UserID:     user.ID,
		ServiceID:  service.ID,
		ClientName: "Charlie",
		Discount:   100,
	})
	if err == nil {
		t.Fatal("expected an error when the discount exceeds the price")
	}
}

func TestRevenueSummary(t *testing.T) {
	openTestDB(t)
	user := seedUser(t, "sara@shop.local", models.RoleEmployee)
	haircut, _ := CreateService("Haircut", "Styling", 50, "")
	coloring, _ := CreateService("Coloring", "Color", 120, "")

	orders := []CreateOrderRequest{
		{UserID: user.ID, ServiceID: haircut.ID, ClientName: "A"},
		{UserID: user.ID, ServiceID: haircut.ID, ClientName: "B", Discount: 5},
		{UserID: user.ID, ServiceID: coloring.ID, ClientName: "C"},
	}
	for _, req := range orders {
		if _, err := CreateOrder(req); err != nil {
			t.Fatal(err)
		}
	}

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	lines, err := RevenueSummary(from, to)
	if err != nil {
		t.Fatalf("revenue summary: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}

	// Ordered by revenue, coloring first.
	if lines[0].ServiceName != "Coloring" || lines[0].Revenue != 120 {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].ServiceName != "Haircut" || lines[1].Revenue != 95 || lines[1].Orders != 2 {
		t.Errorf("line 1 = %+v", lines[1])
	}
}

func TestExpenseTotal(t *testing.T) {
	openTestDB(t)
	user := seedUser(t, "sara@shop.local", models.RoleEmployee)

	if _, err := AddExpense(user.ID, "Shampoo stock", 120.50); err != nil {
		t.Fatal(err)
	}
	if _, err := AddExpense(user.ID, "New dryer", 300); err != nil {
		t.Fatal(err)
	}
	if _, err := AddExpense(user.ID, "", 10); err == nil {
		t.Error("expense without a name must be rejected")
	}

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	total, err := ExpenseTotal(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if total != 420.50 {
		t.Errorf("total = %.2f, want 420.50", total)
	}
}

func TestSettingsSingleRow(t *testing.T) {
	openTestDB(t)

	first, err := GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if first.OfficeTitle != "Shopdesk" {
		t.Errorf("default title = %q", first.OfficeTitle)
	}

	if _, err := UpdateSettings("Alhamshary Salon", ""); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	again, err := GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if again.OfficeTitle != "Alhamshary Salon" || again.AppTheme != "dark" {
		t.Errorf("settings = %+v", again)
	}

	var rows int64
	DB.Model(&models.AppSettings{}).Count(&rows)
	if rows != 1 {
		t.Errorf("settings rows = %d, want exactly 1", rows)
	}
}
